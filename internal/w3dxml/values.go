package w3dxml

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
)

func malformed(element, format string, args ...any) error {
	return errs.NewMalformedDocument(element, format, args...)
}

// formatVec renders a vector in the document tuple spelling: "(x, y, z)".
func formatVec(v math32.Vector3) string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(float64(v.X)), formatFloat(float64(v.Y)), formatFloat(float64(v.Z)))
}

func parseVec(element, s string) (math32.Vector3, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return math32.Vector3{}, malformed(element, "expected 3-component tuple, got %q", s)
	}
	var out [3]float32
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return math32.Vector3{}, malformed(element, "bad tuple component %q", part)
		}
		out[i] = float32(f)
	}
	return math32.Vec3(out[0], out[1], out[2]), nil
}

// formatColor renders a color in the document spelling: "r,g,b".
func formatColor(c model.Color) string {
	return fmt.Sprintf("%d,%d,%d", c[0], c[1], c[2])
}

func parseColor(element, s string) (model.Color, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return model.Color{}, malformed(element, "expected r,g,b color, got %q", s)
	}
	var c model.Color
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return model.Color{}, malformed(element, "bad color component %q", part)
		}
		c[i] = n
	}
	return c, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parseFloat(element, attr, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, malformed(element, "bad %s value %q", attr, s)
	}
	return f, nil
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func parseBool(element, attr, s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, nil
	case "false", "0", "":
		return false, nil
	}
	return false, malformed(element, "bad %s value %q", attr, s)
}
