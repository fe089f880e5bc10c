package hclscene

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/scenegridgo/internal/ctxlog"
	"github.com/vk/scenegridgo/internal/fsutil"
	"github.com/vk/scenegridgo/internal/scene"
)

// Loader parses HCL scene files into a scene.
type Loader struct{}

// NewLoader creates a new HCL scene loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges their blocks
// into one scene. Records are added in a fixed phase order — objects, groups,
// timelines, triggers — so a group may reference objects from another file
// regardless of discovery order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*scene.Scene, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered scene files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := evalContext()
	var roots []*fileRoot
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse scene file %s: %s", file, diags.Error())
		}
		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode scene file %s: %s", file, diags.Error())
		}
		roots = append(roots, &root)
	}

	s := scene.New()
	for _, root := range roots {
		for _, o := range root.Objects {
			obj, err := translateObject(o)
			if err != nil {
				return nil, err
			}
			if err := s.AddObject(obj); err != nil {
				return nil, err
			}
		}
	}
	for _, root := range roots {
		for _, g := range root.Groups {
			if err := s.AddGroup(g.Name, g.Members); err != nil {
				return nil, err
			}
		}
	}
	for _, root := range roots {
		for _, t := range root.Timelines {
			tl, err := translateTimeline(t)
			if err != nil {
				return nil, err
			}
			if err := s.AddTimeline(tl); err != nil {
				return nil, err
			}
		}
	}
	for _, root := range roots {
		for _, t := range root.Triggers {
			rt, err := translateTrigger(t)
			if err != nil {
				return nil, err
			}
			if err := s.AddTrigger(rt); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Scene loading complete.",
		"objects", len(s.Objects()), "groups", len(s.Groups()),
		"timelines", len(s.Timelines()), "triggers", len(s.Triggers()))
	return s, nil
}
