package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/zxtm"
)

func diagnosticsLogged(t *testing.T, floor level.Option) string {
	t.Helper()
	var buf bytes.Buffer
	data, err := os.ReadFile("../testdata/zxtm/snapshot.json")
	require.NoError(t, err)
	snap, err := zxtm.Load(data, zxtm.WithLogger(newLoggerTo(&buf, floor)))
	require.NoError(t, err)

	inst, err := snap.Instance("lb1 east")
	require.NoError(t, err)
	require.Len(t, inst.Diagnostics(), 2)
	return buf.String()
}

func TestLoggerWarnFloorShowsDiagnostics(t *testing.T) {
	out := diagnosticsLogged(t, level.AllowWarn())
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, "ref=missing-tig")
}

func TestValidateLoggerDoesNotRepeatDiagnostics(t *testing.T) {
	assert.Empty(t, diagnosticsLogged(t, level.AllowError()))
}

func TestVerboseLowersFloor(t *testing.T) {
	verbose = true
	t.Cleanup(func() { verbose = false })

	assert.Contains(t, diagnosticsLogged(t, level.AllowError()), "level=warn")
}
