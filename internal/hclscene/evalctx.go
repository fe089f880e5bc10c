package hclscene

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// evalContext exposes the authoring constants scene files may reference:
// named colors, the unit axes for rotation vectors, and the containment mode
// spellings. Everything here is a plain value; scene files stay declarative.
func evalContext() *hcl.EvalContext {
	rgb := func(r, g, b int64) cty.Value {
		return cty.TupleVal([]cty.Value{
			cty.NumberIntVal(r), cty.NumberIntVal(g), cty.NumberIntVal(b),
		})
	}
	axis := func(x, y, z int64) cty.Value {
		return cty.TupleVal([]cty.Value{
			cty.NumberIntVal(x), cty.NumberIntVal(y), cty.NumberIntVal(z),
		})
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"colors": cty.ObjectVal(map[string]cty.Value{
				"white":   rgb(255, 255, 255),
				"black":   rgb(0, 0, 0),
				"red":     rgb(255, 0, 0),
				"green":   rgb(0, 255, 0),
				"blue":    rgb(0, 0, 255),
				"yellow":  rgb(255, 255, 0),
				"cyan":    rgb(0, 255, 255),
				"magenta": rgb(255, 0, 255),
			}),
			"axes": cty.ObjectVal(map[string]cty.Value{
				"x": axis(1, 0, 0),
				"y": axis(0, 1, 0),
				"z": axis(0, 0, 1),
			}),
			"inside":  cty.StringVal("Inside"),
			"outside": cty.StringVal("Outside"),
		},
	}
}
