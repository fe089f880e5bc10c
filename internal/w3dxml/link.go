package w3dxml

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/vk/scenegridgo/internal/model"
)

// EncodeLink appends a LinkRoot element to parent. Each bound count becomes
// one Actions node per action, tagged with its Clicks condition; the count
// equal to the link's reset value carries reset="true".
func EncodeLink(parent *etree.Element, link *model.ClickLink) {
	root := parent.CreateElement("LinkRoot")
	el := root.CreateElement("Link")
	el.CreateElement("Enabled").SetText(formatBool(link.Enabled))
	el.CreateElement("RemainEnabled").SetText(formatBool(link.RemainEnabled))
	el.CreateElement("EnabledColor").SetText(formatColor(link.EnabledColor))
	el.CreateElement("SelectedColor").SetText(formatColor(link.SelectedColor))

	for _, count := range link.BoundCounts() {
		for _, action := range link.OnClick[count] {
			actions := el.CreateElement("Actions")
			encodeAction(actions, action)
			clicks := actions.CreateElement("Clicks")
			num := clicks.CreateElement("NumClicks")
			num.CreateAttr("num_clicks", strconv.Itoa(count))
			num.CreateAttr("reset", formatBool(link.Reset == count))
		}
	}
	for _, action := range link.OnClick[model.AnyClick] {
		actions := el.CreateElement("Actions")
		encodeAction(actions, action)
		actions.CreateElement("Clicks").CreateElement("Any")
	}
}

// DecodeLink rebuilds a link from its LinkRoot element. The effective reset
// value is inferred as the minimum count tagged reset="true", -1 when none is.
func DecodeLink(root *etree.Element) (*model.ClickLink, error) {
	el := root.SelectElement("Link")
	if el == nil {
		return nil, malformed("LinkRoot", "missing Link child")
	}

	link := model.NewClickLink()
	if enabled := el.SelectElement("Enabled"); enabled != nil {
		v, err := parseBool("Enabled", "text", enabled.Text())
		if err != nil {
			return nil, err
		}
		link.Enabled = v
	}
	if remain := el.SelectElement("RemainEnabled"); remain != nil {
		v, err := parseBool("RemainEnabled", "text", remain.Text())
		if err != nil {
			return nil, err
		}
		link.RemainEnabled = v
	}
	if color := el.SelectElement("EnabledColor"); color != nil {
		c, err := parseColor("EnabledColor", color.Text())
		if err != nil {
			return nil, err
		}
		link.EnabledColor = c
	}
	if color := el.SelectElement("SelectedColor"); color != nil {
		c, err := parseColor("SelectedColor", color.Text())
		if err != nil {
			return nil, err
		}
		link.SelectedColor = c
	}

	reset := -1
	for _, actions := range el.SelectElements("Actions") {
		clicks := actions.SelectElement("Clicks")
		if clicks == nil {
			return nil, malformed("Actions", "missing Clicks child")
		}
		action, err := singleAction(actions, "Clicks")
		if err != nil {
			return nil, err
		}
		switch {
		case clicks.SelectElement("Any") != nil:
			if err := link.Bind(model.AnyClick, action); err != nil {
				return nil, err
			}
		case clicks.SelectElement("NumClicks") != nil:
			num := clicks.SelectElement("NumClicks")
			count, err := strconv.Atoi(num.SelectAttrValue("num_clicks", ""))
			if err != nil {
				return nil, malformed("NumClicks", "bad num_clicks value %q", num.SelectAttrValue("num_clicks", ""))
			}
			tagged, err := parseBool("NumClicks", "reset", num.SelectAttrValue("reset", "false"))
			if err != nil {
				return nil, err
			}
			if tagged && (reset < 0 || count < reset) {
				reset = count
			}
			if err := link.Bind(count, action); err != nil {
				return nil, err
			}
		default:
			return nil, malformed("Clicks", "expected NumClicks or Any child")
		}
	}
	link.Reset = reset
	return link, nil
}
