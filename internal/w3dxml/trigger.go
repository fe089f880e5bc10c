package w3dxml

import (
	"github.com/beevik/etree"

	"github.com/vk/scenegridgo/internal/model"
)

// EncodeTrigger appends an EventTrigger element to parent.
func EncodeTrigger(parent *etree.Element, rt *model.RegionTrigger) {
	el := parent.CreateElement("EventTrigger")
	el.CreateAttr("name", rt.Name)
	el.CreateAttr("enabled", formatBool(rt.Enabled))
	el.CreateAttr("remain-enabled", formatBool(rt.RemainEnabled))
	el.CreateAttr("duration", formatFloat(rt.Duration))

	box := el.CreateElement("Box")
	box.CreateAttr("corner1", formatVec(rt.Box.Corner1))
	box.CreateAttr("corner2", formatVec(rt.Box.Corner2))
	box.CreateElement(rt.Box.Mode.String())

	tracked := el.CreateElement("TrackObjects")
	tracked.CreateAttr("detect-any", formatBool(rt.DetectAny))
	for _, name := range rt.Tracked {
		tracked.CreateElement("ObjectRef").CreateAttr("name", name)
	}

	for _, action := range rt.Actions {
		encodeAction(el.CreateElement("Actions"), action)
	}
}

// DecodeTrigger rebuilds a region trigger from its EventTrigger element.
func DecodeTrigger(el *etree.Element) (*model.RegionTrigger, error) {
	name := el.SelectAttrValue("name", "")
	if name == "" {
		return nil, malformed("EventTrigger", "missing name attribute")
	}
	rt := model.NewRegionTrigger(name)

	enabled, err := parseBool("EventTrigger", "enabled", el.SelectAttrValue("enabled", "true"))
	if err != nil {
		return nil, err
	}
	rt.Enabled = enabled
	remain, err := parseBool("EventTrigger", "remain-enabled", el.SelectAttrValue("remain-enabled", "true"))
	if err != nil {
		return nil, err
	}
	rt.RemainEnabled = remain
	duration, err := parseFloat("EventTrigger", "duration", el.SelectAttrValue("duration", "0"))
	if err != nil {
		return nil, err
	}
	rt.Duration = duration

	box := el.SelectElement("Box")
	if box == nil {
		return nil, malformed("EventTrigger", "missing Box child")
	}
	corner1, err := parseVec("Box", box.SelectAttrValue("corner1", ""))
	if err != nil {
		return nil, err
	}
	corner2, err := parseVec("Box", box.SelectAttrValue("corner2", ""))
	if err != nil {
		return nil, err
	}
	rt.Box = model.RegionBox{Corner1: corner1, Corner2: corner2}
	if box.SelectElement("Outside") != nil {
		rt.Box.Mode = model.ModeOutside
	} else if box.SelectElement("Inside") == nil {
		return nil, malformed("Box", "expected Inside or Outside child")
	}

	if tracked := el.SelectElement("TrackObjects"); tracked != nil {
		detectAny, err := parseBool("TrackObjects", "detect-any", tracked.SelectAttrValue("detect-any", "true"))
		if err != nil {
			return nil, err
		}
		rt.DetectAny = detectAny
		for _, ref := range tracked.SelectElements("ObjectRef") {
			refName := ref.SelectAttrValue("name", "")
			if refName == "" {
				return nil, malformed("ObjectRef", "missing name attribute")
			}
			rt.Tracked = append(rt.Tracked, refName)
		}
	}

	for _, actions := range el.SelectElements("Actions") {
		action, err := singleAction(actions)
		if err != nil {
			return nil, err
		}
		rt.Actions = append(rt.Actions, action)
	}
	return rt, nil
}
