package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRestart(t *testing.T) {
	tests := []struct {
		name       string
		mockOutput string
		mockError  error
		wantErr    bool
		wantInErr  string
	}{
		{
			name: "successful restart",
		},
		{
			name:       "command fails with output",
			mockOutput: "Failed to restart radiusd.service: Unit not found.\n",
			mockError:  errors.New("exit status 5"),
			wantErr:    true,
			wantInErr:  "Unit not found.",
		},
		{
			name:      "command fails silently",
			mockError: errors.New("exit status 1"),
			wantErr:   true,
			wantInErr: "exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			runner := NewMockCommandRunner(ctrl)
			runner.EXPECT().
				CombinedOutput(gomock.Any(), "sudo", "systemctl", "restart", "radiusd").
				Return([]byte(tt.mockOutput), tt.mockError)

			r := NewRestarter("radiusd", []string{"sudo", "systemctl", "restart", "radiusd"}, time.Second, runner)
			err := r.Restart(context.Background())
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantInErr)
			assert.ErrorIs(t, err, tt.mockError)
		})
	}
}

func TestRestartAppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := NewMockCommandRunner(ctrl)
	runner.EXPECT().
		CombinedOutput(gomock.Any(), "true").
		DoAndReturn(func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok, "context should carry a deadline")
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return nil, nil
		})

	r := NewRestarter("radiusd", []string{"true"}, time.Minute, runner)
	require.NoError(t, r.Restart(context.Background()))
}

func TestRestartWithoutCommand(t *testing.T) {
	r := NewRestarter("radiusd", nil, time.Second, nil)
	assert.ErrorIs(t, r.Restart(context.Background()), ErrNoCommand)
}

func TestDefaultRunner(t *testing.T) {
	out, err := DefaultRunner{}.CombinedOutput(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}
