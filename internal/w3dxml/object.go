package w3dxml

import (
	"github.com/beevik/etree"

	"github.com/vk/scenegridgo/internal/model"
)

// EncodeObject appends an Object element to parent.
func EncodeObject(parent *etree.Element, o *model.Object) {
	el := parent.CreateElement("Object")
	el.CreateAttr("name", o.Name)
	el.CreateElement("Visible").SetText(formatBool(o.Visible))
	el.CreateElement("Scale").SetText(formatFloat(o.Scale))
	el.CreateElement("Color").SetText(formatColor(o.Color))
	encodePlacement(el, o.Placement)
	if o.Link != nil {
		EncodeLink(el, o.Link)
	}
}

// DecodeObject rebuilds an object from its element.
func DecodeObject(el *etree.Element) (*model.Object, error) {
	name := el.SelectAttrValue("name", "")
	if name == "" {
		return nil, malformed("Object", "missing name attribute")
	}
	o := model.NewObject(name)

	if visible := el.SelectElement("Visible"); visible != nil {
		v, err := parseBool("Visible", "text", visible.Text())
		if err != nil {
			return nil, err
		}
		o.Visible = v
	}
	if scale := el.SelectElement("Scale"); scale != nil {
		f, err := parseFloat("Scale", "text", scale.Text())
		if err != nil {
			return nil, err
		}
		o.Scale = f
	}
	if color := el.SelectElement("Color"); color != nil {
		c, err := parseColor("Color", color.Text())
		if err != nil {
			return nil, err
		}
		o.Color = c
	}
	placement, err := decodePlacement(el)
	if err != nil {
		return nil, err
	}
	o.Placement = placement

	if root := el.SelectElement("LinkRoot"); root != nil {
		link, err := DecodeLink(root)
		if err != nil {
			return nil, err
		}
		o.Link = link
	}
	return o, nil
}
