// Package testutil provides the shared test harness: temp-dir project
// fixtures, a full load-compile-emit run, and a thread-safe log buffer.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/scenegridgo/internal/app"
	"github.com/vk/scenegridgo/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteProjectFiles materializes the given relative-path to content map in a
// fresh temp dir and returns its root.
func WriteProjectFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// HarnessResult holds the outcomes of a full compile run.
type HarnessResult struct {
	LogOutput string
	Err       error
	OutputDir string
}

// RunCompileTest writes the project files, runs the full application pipeline
// (load, compile, emit) over them with debug logging, and returns the result.
// The mutate hook, when non-nil, adjusts the config before the run.
func RunCompileTest(t *testing.T, files map[string]string, mutate func(cfg *config.Config)) *HarnessResult {
	t.Helper()

	root := WriteProjectFiles(t, files)
	cfg := config.Default()
	cfg.ProjectPath = root
	cfg.OutputDir = filepath.Join(root, "out")
	cfg.LogLevel = "debug"
	if mutate != nil {
		mutate(&cfg)
	}

	var logBuf SafeBuffer
	err := app.New(&logBuf, &cfg).Run(context.Background())

	return &HarnessResult{
		LogOutput: logBuf.String(),
		Err:       err,
		OutputDir: cfg.OutputDir,
	}
}
