package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/d5/tengo/v2/parser"

	"github.com/vk/scenegridgo/internal/model"
)

// EmitRegionDetect lowers a spatial detect condition to host-script source.
// The emitted entry point is called once per tick with the host binding and
// flips the state holder's status from Stop to Start when the aggregate
// containment predicate holds while the graph is enabled.
func EmitRegionDetect(d *RegionDescriptor) (string, error) {
	bounds := d.Box.Bounds()
	lo, hi := bounds.Min, bounds.Max

	var b strings.Builder
	fmt.Fprintf(&b, "// %s: generated detection logic\n", d.Module)
	b.WriteString("detect_event := func(host) {\n")

	if len(d.Objects) == 0 {
		// Nothing to track: the predicate is constantly false and the
		// trigger can only re-arm.
		b.WriteString("\tin_region := false\n")
	} else {
		fmt.Fprintf(&b, "\tlo := [%s, %s, %s]\n", num(lo.X), num(lo.Y), num(lo.Z))
		fmt.Fprintf(&b, "\thi := [%s, %s, %s]\n", num(hi.X), num(hi.Y), num(hi.Z))
		seed, combine := "false", "||"
		if !d.DetectAny {
			seed, combine = "true", "&&"
		}
		contained := "!outside"
		if d.Box.Mode == model.ModeOutside {
			contained = "outside"
		}
		fmt.Fprintf(&b, "\tin_region := %s\n", seed)
		fmt.Fprintf(&b, "\tfor name in %s {\n", strList(d.Objects))
		b.WriteString("\t\tp := host.position(name)\n")
		b.WriteString("\t\toutside := p[0] < lo[0] || p[0] > hi[0] ||\n")
		b.WriteString("\t\t\tp[1] < lo[1] || p[1] > hi[1] ||\n")
		b.WriteString("\t\t\tp[2] < lo[2] || p[2] > hi[2]\n")
		fmt.Fprintf(&b, "\t\tin_region = in_region %s %s\n", combine, contained)
		b.WriteString("\t}\n")
	}

	b.WriteString("\tif !in_region {\n")
	if d.Duration > 0 {
		b.WriteString("\t\thost.set(\"held\", 0)\n")
	}
	b.WriteString("\t\tif host.get(\"status\") == \"Start\" {\n")
	b.WriteString("\t\t\thost.set(\"status\", \"Stop\")\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t\treturn\n")
	b.WriteString("\t}\n")

	if d.Duration > 0 {
		b.WriteString("\theld := host.get(\"held\") + host.dt()\n")
		b.WriteString("\thost.set(\"held\", held)\n")
		fmt.Fprintf(&b, "\tif held < %s {\n", num64(d.Duration))
		b.WriteString("\t\treturn\n")
		b.WriteString("\t}\n")
	}

	b.WriteString("\tif host.get(\"enabled\") && host.get(\"status\") == \"Stop\" {\n")
	b.WriteString("\t\thost.set(\"status\", \"Start\")\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n")

	src := b.String()
	if err := parseCheck(d.Module, src); err != nil {
		return "", err
	}
	return src, nil
}

// EmitClickDispatch lowers a click link's bookkeeping to host-script source.
// The emitted entry point is called once per recognized click: it advances
// the click counter, wraps it at the reset value, routes dispatch to the
// action list bound to the new count (falling back to the any-count binding)
// and disables the link after the first dispatch when configured to.
func EmitClickDispatch(d *ClickDescriptor) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s: generated click logic\n", d.Module)
	b.WriteString("handle_click := func(host) {\n")
	b.WriteString("\tif !host.get(\"enabled\") {\n")
	b.WriteString("\t\treturn\n")
	b.WriteString("\t}\n")
	b.WriteString("\tcount := host.get(\"clicks\") + 1\n")
	if d.Reset >= 0 {
		fmt.Fprintf(&b, "\tif count == %d {\n", d.Reset)
		b.WriteString("\t\tcount = 0\n")
		b.WriteString("\t}\n")
	}
	b.WriteString("\thost.set(\"clicks\", count)\n")

	track := !d.RemainEnabled
	if track {
		b.WriteString("\tdispatched := false\n")
	}
	dispatch := func(indent string, count int) {
		fmt.Fprintf(&b, "%shost.dispatch(%d)\n", indent, count)
		if track {
			fmt.Fprintf(&b, "%sdispatched = true\n", indent)
		}
	}
	for i, count := range d.Counts {
		keyword := "if"
		if i > 0 {
			keyword = "} else if"
		}
		fmt.Fprintf(&b, "\t%s count == %d {\n", keyword, count)
		dispatch("\t\t", count)
	}
	switch {
	case d.HasAny && len(d.Counts) > 0:
		b.WriteString("\t} else {\n")
		dispatch("\t\t", -1)
		b.WriteString("\t}\n")
	case d.HasAny:
		dispatch("\t", -1)
	case len(d.Counts) > 0:
		b.WriteString("\t}\n")
	}
	if track {
		b.WriteString("\tif dispatched {\n")
		b.WriteString("\t\thost.set(\"enabled\", false)\n")
		b.WriteString("\t}\n")
	}
	b.WriteString("}\n")

	src := b.String()
	if err := parseCheck(d.Module, src); err != nil {
		return "", err
	}
	return src, nil
}

// parseCheck runs the emitted source through the tengo parser. Generated
// text that does not parse never leaves this package.
func parseCheck(module, src string) error {
	fileSet := parser.NewFileSet()
	file := fileSet.AddFile(module, -1, len(src))
	p := parser.NewParser(file, []byte(src), nil)
	if _, err := p.ParseFile(); err != nil {
		return fmt.Errorf("generated script for %s does not parse: %w", module, err)
	}
	return nil
}

func num(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func num64(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func strList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
