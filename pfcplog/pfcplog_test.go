package pfcplog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestL_DefaultsToNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, L())
	// A nop logger must not panic and must not record anything observable.
	L().Debug("unreachable")
}

func TestSetLogger_RoutesThroughCaller(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	L().Debug("unknown IE stored in catch-all", zap.Uint16("type", 999))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "unknown IE stored in catch-all", entries[0].Message)
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	core, _ := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	SetLogger(nil)

	L().Debug("should not panic and should not reach the observer core")
}
