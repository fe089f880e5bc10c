package app

import (
	"context"
	"fmt"

	"github.com/vk/scenegridgo/internal/activator"
	"github.com/vk/scenegridgo/internal/ctxlog"
	"github.com/vk/scenegridgo/internal/evaluator"
	"github.com/vk/scenegridgo/internal/names"
	"github.com/vk/scenegridgo/internal/scene"
)

// Run executes the main application logic: load, compile, emit, then
// optionally preview the result or stay resident watching for edits.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	s, graphs, err := a.compile(ctx)
	if err != nil {
		return err
	}

	if a.config.Preview {
		a.preview(ctx, s, graphs)
	}
	if a.config.Watch {
		return a.watch(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// compile loads the project, compiles every record and writes the output.
func (a *App) compile(ctx context.Context) (*scene.Scene, []*activator.Graph, error) {
	s, err := a.loadProject(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load project: %w", err)
	}
	a.logger.Info("Project loaded.",
		"objects", len(s.Objects()), "timelines", len(s.Timelines()), "triggers", len(s.Triggers()))

	graphs, err := s.CompileAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("compilation failed: %w", err)
	}
	a.logger.Info("Scene compiled.", "graphs", len(graphs))

	if err := a.emit(ctx, graphs); err != nil {
		return nil, nil, err
	}
	return s, graphs, nil
}

// preview interprets the compiled graphs for the configured number of frames,
// seeding object positions from their authored placements, and reports every
// dispatched action.
func (a *App) preview(ctx context.Context, s *scene.Scene, graphs []*activator.Graph) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Preview starting.", "ticks", a.config.PreviewTicks, "tick_rate", a.config.TickRate)

	sim := evaluator.New(graphs, evaluator.WithTickRate(a.config.TickRate))
	for _, o := range s.Objects() {
		p := o.Placement.Position
		sim.SetPosition(names.ForObject(o.Name), p.X, p.Y, p.Z)
	}
	sim.Run(a.config.PreviewTicks)

	for _, d := range sim.Journal() {
		logger.Info("Dispatched action.",
			"tick", d.Tick, "graph", d.Graph, "node", d.Node,
			"kind", d.Action.Kind().String(), "target", d.Action.Target())
	}
	logger.Info("Preview finished.", "dispatches", len(sim.Journal()), "simulated_seconds", sim.Elapsed())
}
