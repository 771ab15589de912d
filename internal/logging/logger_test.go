package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFileName)

	log, done := New(path, "info")
	log.Infow("first run", "n", 1)
	log.Debug("hidden")
	done()

	log, done = New(path, "info")
	log.Errorf("Failure (%d): %s", 500, "internal error")
	done()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "INFO first run")
	assert.Contains(t, lines[1], "ERROR Failure (500): internal error")
	assert.NotContains(t, string(b), "hidden")
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	log, done := New(path, "loud")
	log.Debug("dbg")
	log.Info("inf")
	done()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "dbg")
	assert.Contains(t, string(b), "inf")
}

func TestNew_UnopenableFileDoesNotFail(t *testing.T) {
	log, done := New(filepath.Join(blockedDir(t), "x.log"), "info")
	defer done()
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info("to stderr") })
}
