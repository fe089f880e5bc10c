package script_test

import (
	"testing"

	"github.com/d5/tengo/v2/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/core/math32"

	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/script"
)

func mustParse(t *testing.T, src string) {
	t.Helper()
	fileSet := parser.NewFileSet()
	file := fileSet.AddFile("test", -1, len(src))
	_, err := parser.NewParser(file, []byte(src), nil).ParseFile()
	require.NoError(t, err, "emitted source must parse:\n%s", src)
}

func regionDescriptor() *script.RegionDescriptor {
	return &script.RegionDescriptor{
		Module: "trigger_goal.detect_event",
		Box: model.RegionBox{
			Corner1: math32.Vec3(0, 0, 0),
			Corner2: math32.Vec3(10, 10, 10),
		},
		DetectAny: true,
		Objects:   []string{"object_ball", "object_cube"},
	}
}

func TestEmitRegionDetect_ParsesAndTestsBounds(t *testing.T) {
	t.Parallel()

	// Act
	src, err := script.EmitRegionDetect(regionDescriptor())

	// Assert
	require.NoError(t, err)
	mustParse(t, src)
	assert.Contains(t, src, "lo := [0, 0, 0]")
	assert.Contains(t, src, "hi := [10, 10, 10]")
	assert.Contains(t, src, `["object_ball", "object_cube"]`)
	assert.Contains(t, src, "in_region := false", "any-mode aggregation seeds false")
	assert.Contains(t, src, "in_region = in_region || !outside")
	assert.Contains(t, src, `host.set("status", "Start")`)
	assert.Contains(t, src, `host.set("status", "Stop")`, "a false detect re-arms the trigger")
	assert.NotContains(t, src, "held", "no sustain bookkeeping without a duration")
}

func TestEmitRegionDetect_AllModeOutside(t *testing.T) {
	t.Parallel()

	// Arrange
	d := regionDescriptor()
	d.DetectAny = false
	d.Box.Mode = model.ModeOutside

	// Act
	src, err := script.EmitRegionDetect(d)

	// Assert
	require.NoError(t, err)
	mustParse(t, src)
	assert.Contains(t, src, "in_region := true", "all-mode aggregation seeds true")
	assert.Contains(t, src, "in_region = in_region && outside")
}

func TestEmitRegionDetect_SustainedWindow(t *testing.T) {
	t.Parallel()

	// Arrange
	d := regionDescriptor()
	d.Duration = 1.5

	// Act
	src, err := script.EmitRegionDetect(d)

	// Assert
	require.NoError(t, err)
	mustParse(t, src)
	assert.Contains(t, src, `held := host.get("held") + host.dt()`)
	assert.Contains(t, src, "if held < 1.5 {")
	assert.Contains(t, src, `host.set("held", 0)`, "leaving the region rewinds the hold counter")
}

func TestEmitRegionDetect_EmptyTrackedSetOnlyReArms(t *testing.T) {
	t.Parallel()

	// Act
	d := regionDescriptor()
	d.Objects = nil
	src, err := script.EmitRegionDetect(d)

	// Assert
	require.NoError(t, err)
	mustParse(t, src)
	assert.Contains(t, src, "in_region := false")
	assert.NotContains(t, src, "for name in")
}

func TestEmitClickDispatch_RoutesCountsWithFallback(t *testing.T) {
	t.Parallel()

	// Arrange
	d := &script.ClickDescriptor{
		Module:        "trigger_button_link.handle_click",
		Target:        "object_button",
		Counts:        []int{1, 3},
		HasAny:        true,
		Reset:         4,
		RemainEnabled: true,
	}

	// Act
	src, err := script.EmitClickDispatch(d)

	// Assert
	require.NoError(t, err)
	mustParse(t, src)
	assert.Contains(t, src, `count := host.get("clicks") + 1`)
	assert.Contains(t, src, "if count == 4 {", "counter wraps at the reset value")
	assert.Contains(t, src, "if count == 1 {")
	assert.Contains(t, src, "} else if count == 3 {")
	assert.Contains(t, src, "host.dispatch(-1)", "unbound counts take the any-count fallback")
	assert.NotContains(t, src, "dispatched", "a link that stays enabled needs no dispatch tracking")
}

func TestEmitClickDispatch_DisableAfterFirstDispatch(t *testing.T) {
	t.Parallel()

	// Arrange
	d := &script.ClickDescriptor{
		Module: "trigger_fuse_link.handle_click",
		Target: "object_fuse",
		Counts: []int{1},
		Reset:  -1,
	}

	// Act
	src, err := script.EmitClickDispatch(d)

	// Assert
	require.NoError(t, err)
	mustParse(t, src)
	assert.NotContains(t, src, "count = 0", "no reset wrap is emitted for a never-resetting link")
	assert.Contains(t, src, "dispatched := false")
	assert.Contains(t, src, `host.set("enabled", false)`)
	assert.Contains(t, src, "if !host.get(\"enabled\") {", "a disabled link ignores clicks")
}
