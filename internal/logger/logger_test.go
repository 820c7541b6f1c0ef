package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	err := Init(Config{Level: "debug", Output: OutputDiscard})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())

	err = Init(Config{Level: "warn", Debug: true, Output: OutputDiscard})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel(), "Debug overrides Level")
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := Init(Config{Level: "loud", Output: OutputDiscard})
	require.Error(t, err)
}

func TestSetDebug(t *testing.T) {
	require.NoError(t, Init(Config{Output: OutputDiscard}))

	SetDebug(true)
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())

	SetDebug(false)
	assert.Equal(t, zerolog.InfoLevel, GetLogger().GetLevel())
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radtui.log")
	require.NoError(t, Init(Config{Level: "info", Output: path}))
	defer Close()

	l := WithComponent("test")
	l.Info().Str("mac", "aa:bb:cc:dd:ee:ff").Msg("hello")
	Debug().Msg("filtered")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `"component":"test"`), out)
	assert.True(t, strings.Contains(out, `"message":"hello"`), out)
	assert.False(t, strings.Contains(out, "filtered"), out)
}

func TestIsTerminalOutput(t *testing.T) {
	assert.True(t, IsTerminalOutput(""))
	assert.True(t, IsTerminalOutput(OutputStderr))
	assert.True(t, IsTerminalOutput(OutputStdout))
	assert.False(t, IsTerminalOutput(OutputDiscard))
	assert.False(t, IsTerminalOutput("/var/log/radtui.log"))
}

func TestDefaultLoggerSkipsDebug(t *testing.T) {
	l := defaultLogger()
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
	assert.Nil(t, l.Debug(), "debug events are disabled before Init")

	level, err := zerolog.ParseLevel(DefaultConfig().Level)
	require.NoError(t, err)
	assert.Equal(t, level, l.GetLevel())
}
