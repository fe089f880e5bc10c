package w3dxml

import (
	"github.com/beevik/etree"

	"github.com/vk/scenegridgo/internal/model"
)

// encodeAction appends one action element to parent, named by the action's
// document element name.
func encodeAction(parent *etree.Element, action model.Action) {
	el := parent.CreateElement(action.Kind().String())
	switch a := action.(type) {
	case model.MoveAction:
		el.CreateAttr("name", a.Object)
		el.CreateAttr("duration", formatFloat(a.Duration))
		encodePlacement(el, a.Destination)
	case model.SoundAction:
		el.CreateAttr("name", a.Sound)
		el.CreateAttr("operation", a.Operation.String())
	case model.GroupVisibilityAction:
		el.CreateAttr("name", a.Group)
		el.CreateAttr("visible", formatBool(a.Visible))
		el.CreateAttr("duration", formatFloat(a.Duration))
	case model.TimelineAction:
		el.CreateAttr("name", a.Timeline)
		el.CreateAttr("change", a.Operation.String())
	case model.EventTriggerAction:
		el.CreateAttr("name", a.Trigger)
		el.CreateAttr("enable", formatBool(a.Enable))
	case model.ResetAction:
		el.CreateAttr("name", a.Object)
	}
}

// decodeAction maps one action element back to its model variant. An element
// that is not one of the known action names is a document error.
func decodeAction(el *etree.Element) (model.Action, error) {
	name := el.SelectAttrValue("name", "")
	if name == "" {
		return nil, malformed(el.Tag, "missing name attribute")
	}
	switch el.Tag {
	case "ObjectChange":
		duration, err := parseFloat(el.Tag, "duration", el.SelectAttrValue("duration", "0"))
		if err != nil {
			return nil, err
		}
		destination, err := decodePlacement(el)
		if err != nil {
			return nil, err
		}
		return model.MoveAction{Object: name, Destination: destination, Duration: duration}, nil
	case "SoundRef":
		op := model.SoundStart
		if el.SelectAttrValue("operation", "Start") == "Stop" {
			op = model.SoundStop
		}
		return model.SoundAction{Sound: name, Operation: op}, nil
	case "GroupRef":
		visible, err := parseBool(el.Tag, "visible", el.SelectAttrValue("visible", "true"))
		if err != nil {
			return nil, err
		}
		duration, err := parseFloat(el.Tag, "duration", el.SelectAttrValue("duration", "0"))
		if err != nil {
			return nil, err
		}
		return model.GroupVisibilityAction{Group: name, Visible: visible, Duration: duration}, nil
	case "TimerChange":
		op := model.TimelineStart
		if el.SelectAttrValue("change", "start") == "stop" {
			op = model.TimelineStop
		}
		return model.TimelineAction{Timeline: name, Operation: op}, nil
	case "Event":
		enable, err := parseBool(el.Tag, "enable", el.SelectAttrValue("enable", "true"))
		if err != nil {
			return nil, err
		}
		return model.EventTriggerAction{Trigger: name, Enable: enable}, nil
	case "Restart":
		return model.ResetAction{Object: name}, nil
	}
	return nil, malformed(el.Tag, "unknown action element")
}

// singleAction finds the one action child of parent, skipping the named
// non-action siblings.
func singleAction(parent *etree.Element, skip ...string) (model.Action, error) {
	skipped := make(map[string]bool, len(skip))
	for _, tag := range skip {
		skipped[tag] = true
	}
	var action model.Action
	for _, child := range parent.ChildElements() {
		if skipped[child.Tag] {
			continue
		}
		if action != nil {
			return nil, malformed(parent.Tag, "expected exactly one action element")
		}
		decoded, err := decodeAction(child)
		if err != nil {
			return nil, err
		}
		action = decoded
	}
	if action == nil {
		return nil, malformed(parent.Tag, "missing action element")
	}
	return action, nil
}

func encodePlacement(parent *etree.Element, p model.Placement) {
	el := parent.CreateElement("Placement")
	if p.Relative {
		el.CreateAttr("relative", "true")
	}
	el.CreateElement("Position").SetText(formatVec(p.Position))
	if p.RotationMode != model.RotateNone {
		rot := el.CreateElement("Rotation")
		rot.CreateAttr("mode", p.RotationMode.String())
		rot.CreateAttr("vector", formatVec(p.RotationVector))
		rot.CreateAttr("angle", formatFloat(p.Angle))
	}
}

func decodePlacement(parent *etree.Element) (model.Placement, error) {
	el := parent.SelectElement("Placement")
	if el == nil {
		return model.Placement{}, nil
	}
	var p model.Placement
	relative, err := parseBool("Placement", "relative", el.SelectAttrValue("relative", "false"))
	if err != nil {
		return model.Placement{}, err
	}
	p.Relative = relative
	if pos := el.SelectElement("Position"); pos != nil {
		v, err := parseVec("Position", pos.Text())
		if err != nil {
			return model.Placement{}, err
		}
		p.Position = v
	}
	if rot := el.SelectElement("Rotation"); rot != nil {
		mode, ok := model.ParseRotationMode(rot.SelectAttrValue("mode", ""))
		if !ok {
			return model.Placement{}, malformed("Rotation", "unknown mode %q", rot.SelectAttrValue("mode", ""))
		}
		p.RotationMode = mode
		v, err := parseVec("Rotation", rot.SelectAttrValue("vector", "(0, 0, 0)"))
		if err != nil {
			return model.Placement{}, err
		}
		p.RotationVector = v
		angle, err := parseFloat("Rotation", "angle", rot.SelectAttrValue("angle", "0"))
		if err != nil {
			return model.Placement{}, err
		}
		p.Angle = angle
	}
	return p, nil
}
