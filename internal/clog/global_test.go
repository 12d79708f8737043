package clog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFunctions(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	ReplaceGlobal(TestLogger(&buf))

	Debug("debug %s", "msg")
	Info("info %s", "msg")
	Warn("warn %s", "msg")
	Error("error %s", "msg")

	out := buf.String()
	for _, want := range []string{"[DEBUG] debug msg", "[INFO] info msg", "[WARN] warn msg", "[ERROR] error msg"} {
		assert.Contains(t, out, want)
	}
}

func TestConfigure(t *testing.T) {
	defer Reset()

	logPath := filepath.Join(t.TempDir(), "vmctl.log")
	require.NoError(t, Configure(logPath, LevelDebug))
	defer func() { _ = Close() }()
	Default().SetErrOutput(nil)

	Debug("configured")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[DEBUG] configured")
}

func TestConfigure_EmptyPath(t *testing.T) {
	defer Reset()

	require.NoError(t, Configure("", LevelError))
	Discard()
	Info("not logged")
}

func TestReplaceGlobal(t *testing.T) {
	defer Reset()

	replacement := NewLogger()
	old := ReplaceGlobal(replacement)
	assert.NotNil(t, old)
	assert.Same(t, replacement, Default())
}
