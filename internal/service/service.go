//go:generate mockgen -destination=mock_runner.go -package=service radtui/internal/service CommandRunner

package service

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"radtui/internal/logger"
)

var ErrNoCommand = errors.New("no restart command configured")

// CommandRunner is an interface for running external commands.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error)
}

// DefaultRunner implements CommandRunner using os/exec.
type DefaultRunner struct{}

func (DefaultRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, arg...).CombinedOutput()
}

// Restarter restarts the RADIUS daemon by running a fixed command line.
type Restarter struct {
	Name    string
	Command []string
	Timeout time.Duration

	runner CommandRunner
}

// NewRestarter creates a Restarter. A nil runner uses DefaultRunner.
func NewRestarter(name string, command []string, timeout time.Duration, runner CommandRunner) *Restarter {
	if runner == nil {
		runner = DefaultRunner{}
	}
	return &Restarter{
		Name:    name,
		Command: command,
		Timeout: timeout,
		runner:  runner,
	}
}

// Restart runs the restart command and waits for it to finish. The error
// carries the command's combined output when it fails.
func (r *Restarter) Restart(ctx context.Context) error {
	if len(r.Command) == 0 {
		return ErrNoCommand
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	log := logger.WithComponent("service")
	log.Info().Str("service", r.Name).Strs("command", r.Command).Msg("restarting service")

	output, err := r.runner.CombinedOutput(ctx, r.Command[0], r.Command[1:]...)
	if err != nil {
		out := strings.TrimSpace(string(output))
		log.Error().Err(err).Str("service", r.Name).Str("output", out).Msg("service restart failed")
		if out == "" {
			return fmt.Errorf("failed to restart %s: %w", r.Name, err)
		}
		return fmt.Errorf("failed to restart %s: %w, output: %s", r.Name, err, out)
	}

	log.Info().Str("service", r.Name).Msg("service restarted")
	return nil
}
