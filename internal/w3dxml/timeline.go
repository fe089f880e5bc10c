package w3dxml

import (
	"github.com/beevik/etree"

	"github.com/vk/scenegridgo/internal/model"
)

// EncodeTimeline appends a Timeline element to parent.
func EncodeTimeline(parent *etree.Element, tl *model.Timeline) {
	el := parent.CreateElement("Timeline")
	el.CreateAttr("name", tl.Name)
	el.CreateAttr("start-immediately", formatBool(tl.StartImmediately))
	for _, entry := range tl.Actions() {
		timed := el.CreateElement("TimedActions")
		timed.CreateAttr("seconds-time", formatFloat(entry.Time))
		encodeAction(timed, entry.Action)
	}
}

// DecodeTimeline rebuilds a timeline from its element. Entries are re-sorted
// on insertion, so hand-edited documents with out-of-order times still load.
func DecodeTimeline(el *etree.Element) (*model.Timeline, error) {
	name := el.SelectAttrValue("name", "")
	if name == "" {
		return nil, malformed("Timeline", "missing name attribute")
	}
	startImmediately, err := parseBool("Timeline", "start-immediately", el.SelectAttrValue("start-immediately", "false"))
	if err != nil {
		return nil, err
	}
	tl := model.NewTimeline(name, startImmediately)
	for _, timed := range el.SelectElements("TimedActions") {
		at, err := parseFloat("TimedActions", "seconds-time", timed.SelectAttrValue("seconds-time", ""))
		if err != nil {
			return nil, err
		}
		action, err := singleAction(timed)
		if err != nil {
			return nil, err
		}
		if err := tl.Insert(at, action); err != nil {
			return nil, err
		}
	}
	return tl, nil
}
