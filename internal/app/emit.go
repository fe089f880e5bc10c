package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/scenegridgo/internal/activator"
	"github.com/vk/scenegridgo/internal/ctxlog"
)

// manifest is the compiled-output index the host engine consumes: every
// graph's state holder, nodes and wiring, plus the generated script files.
type manifest struct {
	Graphs []graphManifest `json:"graphs"`
}

type graphManifest struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	BaseObject string         `json:"base_object"`
	Target     string         `json:"target"`
	State      stateManifest  `json:"state"`
	Nodes      []nodeManifest `json:"nodes"`
	Links      []linkManifest `json:"links"`
	ScriptFile string         `json:"script_file,omitempty"`
}

type stateManifest struct {
	Enabled bool   `json:"enabled"`
	Status  string `json:"status"`
	Clicks  int    `json:"clicks"`
}

type nodeManifest struct {
	Name  string         `json:"name"`
	Role  string         `json:"role"`
	Kind  string         `json:"kind"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

type linkManifest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// emit writes the graph manifest and every generated script to the output
// directory.
func (a *App) emit(ctx context.Context, graphs []*activator.Graph) error {
	logger := ctxlog.FromContext(ctx)
	outDir := a.config.OutputDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	m := manifest{Graphs: make([]graphManifest, 0, len(graphs))}
	scripts := 0
	for _, g := range graphs {
		gm := graphManifest{
			ID:         g.ID.String(),
			Name:       g.Name,
			BaseObject: g.BaseObjectName,
			Target:     g.Target,
			State: stateManifest{
				Enabled: g.State.Enabled,
				Status:  g.State.Status.String(),
				Clicks:  g.State.Clicks,
			},
		}
		for _, s := range g.Sensors() {
			gm.Nodes = append(gm.Nodes, describeNode(s, "sensor"))
		}
		for _, c := range g.Controllers() {
			gm.Nodes = append(gm.Nodes, describeNode(c, "controller"))
		}
		for _, act := range g.Actuators() {
			gm.Nodes = append(gm.Nodes, describeNode(act, "actuator"))
		}
		for _, l := range g.Links() {
			gm.Links = append(gm.Links, linkManifest{From: l.From, To: l.To})
		}

		if logic := g.Logic(); logic != "" {
			scriptFile := g.BaseObjectName + ".tengo"
			if err := os.WriteFile(filepath.Join(outDir, scriptFile), []byte(logic), 0o644); err != nil {
				return fmt.Errorf("failed to write script %s: %w", scriptFile, err)
			}
			gm.ScriptFile = scriptFile
			scripts++
		}
		m.Graphs = append(m.Graphs, gm)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	manifestPath := filepath.Join(outDir, "manifest.json")
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	logger.Info("Compiled output written.", "dir", outDir, "graphs", len(graphs), "scripts", scripts)
	return nil
}

func describeNode(n activator.Node, role string) nodeManifest {
	nm := nodeManifest{Name: n.NodeName(), Role: role}
	switch node := n.(type) {
	case *activator.PropertySensor:
		nm.Kind = "property_sensor"
		nm.Attrs = map[string]any{"property": node.Property, "value": node.Value, "pulse": node.Pulse}
	case *activator.ClickSensor:
		nm.Kind = "click_sensor"
		nm.Attrs = map[string]any{"target": node.Target}
	case *activator.DelaySensor:
		nm.Kind = "delay_sensor"
		nm.Attrs = map[string]any{"ticks": node.Ticks}
	case *activator.ClockSensor:
		nm.Kind = "clock_sensor"
	case *activator.TimeSensor:
		nm.Kind = "time_sensor"
		nm.Attrs = map[string]any{"at": node.At}
	case *activator.LogicController:
		op := "and"
		if node.Op == activator.OpOr {
			op = "or"
		}
		nm.Kind = "logic_controller"
		nm.Attrs = map[string]any{"op": op}
		if node.Sustain > 0 {
			nm.Attrs["sustain"] = node.Sustain
		}
	case *activator.ScriptController:
		nm.Kind = "script_controller"
		nm.Attrs = map[string]any{"module": node.Module}
	case *activator.PropertyActuator:
		nm.Kind = "property_actuator"
		nm.Attrs = map[string]any{"property": node.Property, "value": node.Value}
	case *activator.ActionActuator:
		actions := make([]map[string]any, 0, len(node.Actions))
		for _, action := range node.Actions {
			actions = append(actions, map[string]any{
				"kind":   action.Kind().String(),
				"target": action.Target(),
			})
		}
		nm.Kind = "action_actuator"
		nm.Attrs = map[string]any{"actions": actions}
	}
	return nm
}
