package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, logLevel())
}

func TestDebugFlagTakesEffectAfterParse(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	require.NoError(t, flags.Parse([]string{"--debug"}))
	t.Cleanup(func() {
		require.NoError(t, flags.Set("debug", "false"))
	})

	assert.Equal(t, slog.LevelDebug, logLevel())
}

func TestLoggingConfiguredAfterFlagParsing(t *testing.T) {
	// the handler must be installed by the pre-run hook, not before
	// Execute, or a --debug on the command line would be ignored
	require.NotNil(t, rootCmd.PersistentPreRun)
}
