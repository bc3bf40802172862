package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	require.NoError(t, Setup(false, "treecat", "test"))
	require.NotNil(t, Logger)
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Setup(true, "treecat", "test"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
