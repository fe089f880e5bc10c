package hclscene

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
)

func translateObject(s *objectSchema) (*model.Object, error) {
	o := model.NewObject(s.Name)
	placement, err := translatePlacement(s.Position, s.Rotation, s.Relative)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", s.Name, err)
	}
	o.Placement = placement
	if s.Visible != nil {
		o.Visible = *s.Visible
	}
	if s.Scale != nil {
		o.Scale = *s.Scale
	}
	if s.Color != nil {
		color, err := translateColor("color", s.Color)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", s.Name, err)
		}
		o.Color = color
	}
	if s.Link != nil {
		link, err := translateLink(s.Link)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", s.Name, err)
		}
		o.Link = link
	}
	return o, nil
}

func translateLink(s *linkSchema) (*model.ClickLink, error) {
	link := model.NewClickLink()
	if s.Enabled != nil {
		link.Enabled = *s.Enabled
	}
	if s.RemainEnabled != nil {
		link.RemainEnabled = *s.RemainEnabled
	}
	if s.Reset != nil {
		link.Reset = *s.Reset
	}
	if s.EnabledColor != nil {
		color, err := translateColor("enabled_color", s.EnabledColor)
		if err != nil {
			return nil, err
		}
		link.EnabledColor = color
	}
	if s.SelectedColor != nil {
		color, err := translateColor("selected_color", s.SelectedColor)
		if err != nil {
			return nil, err
		}
		link.SelectedColor = color
	}
	for _, onClick := range s.OnClick {
		count := model.AnyClick
		if onClick.Count != nil {
			count = *onClick.Count
		}
		actions, err := translateActions(onClick.Actions)
		if err != nil {
			return nil, err
		}
		if err := link.Bind(count, actions...); err != nil {
			return nil, err
		}
	}
	return link, nil
}

func translateTimeline(s *timelineSchema) (*model.Timeline, error) {
	start := false
	if s.StartImmediately != nil {
		start = *s.StartImmediately
	}
	tl := model.NewTimeline(s.Name, start)
	for _, entry := range s.Entries {
		actions, err := translateActions(entry.Actions)
		if err != nil {
			return nil, fmt.Errorf("timeline %q: %w", s.Name, err)
		}
		for _, action := range actions {
			if err := tl.Insert(entry.Time, action); err != nil {
				return nil, fmt.Errorf("timeline %q: %w", s.Name, err)
			}
		}
	}
	return tl, nil
}

func translateTrigger(s *triggerSchema) (*model.RegionTrigger, error) {
	rt := model.NewRegionTrigger(s.Name)
	if s.Enabled != nil {
		rt.Enabled = *s.Enabled
	}
	if s.RemainEnabled != nil {
		rt.RemainEnabled = *s.RemainEnabled
	}
	if s.Duration != nil {
		rt.Duration = *s.Duration
	}
	corner1, err := translateVec("corner1", s.Corner1)
	if err != nil {
		return nil, fmt.Errorf("region_trigger %q: %w", s.Name, err)
	}
	corner2, err := translateVec("corner2", s.Corner2)
	if err != nil {
		return nil, fmt.Errorf("region_trigger %q: %w", s.Name, err)
	}
	rt.Box = model.RegionBox{Corner1: corner1, Corner2: corner2}
	if s.Mode != nil {
		mode, ok := model.ParseContainmentMode(*s.Mode)
		if !ok {
			return nil, errs.NewValidation("mode", "expected Inside or Outside, got %q", *s.Mode)
		}
		rt.Box.Mode = mode
	}
	rt.Tracked = s.Track
	if s.DetectAny != nil {
		rt.DetectAny = *s.DetectAny
	}
	actions, err := translateActions(s.Actions)
	if err != nil {
		return nil, fmt.Errorf("region_trigger %q: %w", s.Name, err)
	}
	rt.Actions = actions
	return rt, nil
}

func translateActions(schemas []*actionSchema) ([]model.Action, error) {
	var out []model.Action
	for _, s := range schemas {
		action, err := translateAction(s)
		if err != nil {
			return nil, err
		}
		out = append(out, action)
	}
	return out, nil
}

func translateAction(s *actionSchema) (model.Action, error) {
	variants := 0
	var action model.Action

	if s.Move != nil {
		variants++
		destination, err := translatePlacement(s.Move.Position, s.Move.Rotation, s.Move.Relative)
		if err != nil {
			return nil, err
		}
		duration := 0.0
		if s.Move.Duration != nil {
			duration = *s.Move.Duration
		}
		action = model.MoveAction{Object: s.Move.Object, Destination: destination, Duration: duration}
	}
	if s.Sound != nil {
		variants++
		op := model.SoundStart
		if s.Sound.Operation != nil && *s.Sound.Operation == "Stop" {
			op = model.SoundStop
		}
		action = model.SoundAction{Sound: s.Sound.Name, Operation: op}
	}
	if s.Group != nil {
		variants++
		duration := 0.0
		if s.Group.Duration != nil {
			duration = *s.Group.Duration
		}
		action = model.GroupVisibilityAction{Group: s.Group.Name, Visible: s.Group.Visible, Duration: duration}
	}
	if s.Timeline != nil {
		variants++
		op := model.TimelineStart
		if s.Timeline.Operation != nil && *s.Timeline.Operation == "stop" {
			op = model.TimelineStop
		}
		action = model.TimelineAction{Timeline: s.Timeline.Name, Operation: op}
	}
	if s.Event != nil {
		variants++
		action = model.EventTriggerAction{Trigger: s.Event.Trigger, Enable: s.Event.Enable}
	}
	if s.Reset != nil {
		variants++
		action = model.ResetAction{Object: s.Reset.Object}
	}

	if variants != 1 {
		return nil, errs.NewValidation("action", "expected exactly one variant block, got %d", variants)
	}
	return action, nil
}

func translatePlacement(position []float64, rotation *rotationSchema, relative *bool) (model.Placement, error) {
	var p model.Placement
	if position != nil {
		v, err := translateVec("position", position)
		if err != nil {
			return model.Placement{}, err
		}
		p.Position = v
	}
	if rotation != nil {
		mode, ok := model.ParseRotationMode(rotation.Mode)
		if !ok {
			return model.Placement{}, errs.NewValidation("rotation", "unknown mode %q", rotation.Mode)
		}
		p.RotationMode = mode
		if rotation.Vector != nil {
			v, err := translateVec("rotation vector", rotation.Vector)
			if err != nil {
				return model.Placement{}, err
			}
			p.RotationVector = v
		}
		p.Angle = rotation.Angle
	}
	if relative != nil {
		p.Relative = *relative
	}
	return p, nil
}

func translateVec(field string, components []float64) (math32.Vector3, error) {
	if len(components) != 3 {
		return math32.Vector3{}, errs.NewValidation(field, "expected 3 components, got %d", len(components))
	}
	return math32.Vec3(float32(components[0]), float32(components[1]), float32(components[2])), nil
}

func translateColor(field string, components []int) (model.Color, error) {
	if len(components) != 3 {
		return model.Color{}, errs.NewValidation(field, "expected r, g, b components, got %d", len(components))
	}
	return model.Color{components[0], components[1], components[2]}, nil
}
