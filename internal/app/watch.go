package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vk/scenegridgo/internal/ctxlog"
)

// watch stays resident, recompiling the project whenever a scene file under
// the project path changes. Bursts of events for the same file within 100ms
// are collapsed into one recompile; editors tend to produce several.
func (a *App) watch(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watchPath := a.config.ProjectPath
	if info, err := os.Stat(watchPath); err == nil && !info.IsDir() {
		watchPath = filepath.Dir(watchPath)
	}
	if err := watcher.Add(watchPath); err != nil {
		return err
	}
	logger.Info("Watching for changes.", "path", watchPath)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSceneFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now

			logger.Info("Project changed, recompiling.", "file", event.Name)
			if _, _, err := a.compile(ctx); err != nil {
				// A broken edit must not kill the watch loop.
				logger.Error("Recompilation failed.", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error.", "error", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".hcl" || ext == ".xml"
}
