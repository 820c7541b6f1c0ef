// Package logger provides structured logging using zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	OutputStdout  = "stdout"
	OutputStderr  = "stderr"
	OutputDiscard = "discard"
)

// Config selects the log level and destination. Output is one of the Output*
// constants or a file path that is opened for appending.
type Config struct {
	Level  string `yaml:"level"`
	Debug  bool   `yaml:"debug"`
	Output string `yaml:"output"`
}

var (
	globalLogger = defaultLogger()
	logFile      *os.File
)

// defaultLogger is used until Init runs and matches DefaultConfig.
func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// DefaultConfig logs info and above to stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Output: OutputStderr}
}

// Init replaces the global logger according to config.
func Init(config Config) error {
	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", config.Level, err)
		}
	}

	output, err := openOutput(config.Output)
	if err != nil {
		return err
	}

	globalLogger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", OutputStderr:
		return os.Stderr, nil
	case OutputStdout:
		return os.Stdout, nil
	case OutputDiscard:
		return io.Discard, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", output, err)
	}
	Close()
	logFile = f
	return f, nil
}

// IsTerminalOutput reports whether output would write to the process's
// standard streams.
func IsTerminalOutput(output string) bool {
	return output == "" || output == OutputStdout || output == OutputStderr
}

// Close releases the log file opened by Init, if any.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func SetLevel(level zerolog.Level) {
	globalLogger = globalLogger.Level(level)
}

func SetDebug(debug bool) {
	if debug {
		SetLevel(zerolog.DebugLevel)
	} else {
		SetLevel(zerolog.InfoLevel)
	}
}

func GetLogger() zerolog.Logger {
	return globalLogger
}

func Debug() *zerolog.Event {
	return globalLogger.Debug()
}

func Info() *zerolog.Event {
	return globalLogger.Info()
}

func Warn() *zerolog.Event {
	return globalLogger.Warn()
}

func Error() *zerolog.Event {
	return globalLogger.Error()
}

// WithComponent returns a child logger tagged with the component name.
func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}
