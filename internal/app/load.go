package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vk/scenegridgo/internal/ctxlog"
	"github.com/vk/scenegridgo/internal/hclscene"
	"github.com/vk/scenegridgo/internal/scene"
	"github.com/vk/scenegridgo/internal/w3dxml"
)

// loadProject loads the configured project in whichever authoring format it
// uses: a .xml path is a persisted project document, anything else is treated
// as HCL scene files.
func (a *App) loadProject(ctx context.Context) (*scene.Scene, error) {
	logger := ctxlog.FromContext(ctx)
	path := a.config.ProjectPath

	if strings.EqualFold(filepath.Ext(path), ".xml") {
		logger.Debug("Loading project document.", "path", path)
		return w3dxml.LoadFile(path)
	}
	logger.Debug("Loading HCL scene files.", "path", path)
	return hclscene.NewLoader().Load(ctx, path)
}
