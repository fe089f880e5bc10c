package w3dxml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/core/math32"

	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/scene"
	"github.com/vk/scenegridgo/internal/w3dxml"
)

func buildProject(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New()

	button := model.NewObject("button")
	button.Placement.Position = math32.Vec3(1, 2, 3)
	button.Link = model.NewClickLink()
	button.Link.Reset = 2
	require.NoError(t, button.Link.Bind(1, model.SoundAction{Sound: "press", Operation: model.SoundStart}))
	require.NoError(t, button.Link.Bind(model.AnyClick, model.ResetAction{Object: "button"}))
	require.NoError(t, s.AddObject(button))

	door := model.NewObject("door")
	door.Visible = false
	require.NoError(t, s.AddObject(door))
	require.NoError(t, s.AddGroup("doors", []string{"door"}))

	tl := model.NewTimeline("intro", true)
	require.NoError(t, tl.Insert(0.5, model.GroupVisibilityAction{Group: "doors", Visible: true, Duration: 1}))
	require.NoError(t, tl.Insert(0, model.TimelineAction{Timeline: "intro", Operation: model.TimelineStop}))
	require.NoError(t, s.AddTimeline(tl))

	rt := model.NewRegionTrigger("entry")
	rt.Box = model.RegionBox{Corner1: math32.Vec3(0, 0, 0), Corner2: math32.Vec3(10, 10, 10), Mode: model.ModeOutside}
	rt.Tracked = []string{"doors"}
	rt.DetectAny = false
	rt.Duration = 1.5
	rt.RemainEnabled = false
	rt.Actions = []model.Action{model.EventTriggerAction{Trigger: "entry", Enable: false}}
	require.NoError(t, s.AddTrigger(rt))

	return s
}

func TestProject_RoundTripPreservesRecords(t *testing.T) {
	t.Parallel()

	// Arrange
	original := buildProject(t)

	// Act
	var buf bytes.Buffer
	require.NoError(t, w3dxml.Write(original, &buf))
	loaded, err := w3dxml.Read(&buf)
	require.NoError(t, err)

	// Assert
	button := loaded.Object("button")
	require.NotNil(t, button)
	assert.Equal(t, math32.Vec3(1, 2, 3), button.Placement.Position)
	require.NotNil(t, button.Link)
	assert.Equal(t, 2, button.Link.Reset)
	assert.Equal(t,
		[]model.Action{model.SoundAction{Sound: "press", Operation: model.SoundStart}},
		button.Link.OnClick[1])
	assert.Equal(t, []model.Action{model.ResetAction{Object: "button"}}, button.Link.OnClick[model.AnyClick])

	assert.Equal(t, []string{"door"}, loaded.GroupMembers("doors"))

	tl := loaded.Timeline("intro")
	require.NotNil(t, tl)
	assert.True(t, tl.StartImmediately)
	entries := tl.Actions()
	require.Len(t, entries, 2)
	assert.Equal(t, 0.0, entries[0].Time)
	assert.Equal(t, 0.5, entries[1].Time)

	triggers := loaded.Triggers()
	require.Len(t, triggers, 1)
	rt := triggers[0]
	assert.Equal(t, model.ModeOutside, rt.Box.Mode)
	assert.Equal(t, math32.Vec3(10, 10, 10), rt.Box.Corner2)
	assert.False(t, rt.DetectAny)
	assert.False(t, rt.RemainEnabled)
	assert.Equal(t, 1.5, rt.Duration)
	assert.Equal(t, []string{"doors"}, rt.Tracked)
}

func TestDecodeLink_ResetIsMinimumTaggedCount(t *testing.T) {
	t.Parallel()

	// Arrange: two counts tagged as reset points; the effective value is the
	// smaller one.
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`
		<LinkRoot>
		  <Link>
		    <Actions>
		      <SoundRef name="a" operation="Start"/>
		      <Clicks><NumClicks num_clicks="5" reset="true"/></Clicks>
		    </Actions>
		    <Actions>
		      <SoundRef name="b" operation="Start"/>
		      <Clicks><NumClicks num_clicks="3" reset="true"/></Clicks>
		    </Actions>
		    <Actions>
		      <SoundRef name="c" operation="Start"/>
		      <Clicks><NumClicks num_clicks="1" reset="false"/></Clicks>
		    </Actions>
		  </Link>
		</LinkRoot>`))

	// Act
	link, err := w3dxml.DecodeLink(doc.SelectElement("LinkRoot"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, link.Reset)
	assert.Equal(t, []int{1, 3, 5}, link.BoundCounts())
}

func TestDecodeLink_UntaggedDocumentNeverResets(t *testing.T) {
	t.Parallel()

	// Arrange
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`
		<LinkRoot>
		  <Link>
		    <Actions>
		      <SoundRef name="a" operation="Start"/>
		      <Clicks><NumClicks num_clicks="1" reset="false"/></Clicks>
		    </Actions>
		  </Link>
		</LinkRoot>`))

	// Act
	link, err := w3dxml.DecodeLink(doc.SelectElement("LinkRoot"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, -1, link.Reset)
}

func TestDecodeLink_MissingLinkChildFails(t *testing.T) {
	t.Parallel()

	// Arrange
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<LinkRoot></LinkRoot>`))

	// Act
	_, err := w3dxml.DecodeLink(doc.SelectElement("LinkRoot"))

	// Assert
	var malformed *errs.MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "LinkRoot", malformed.Element)
}

func TestDecodeTimeline_MissingNameFails(t *testing.T) {
	t.Parallel()

	// Arrange
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<Timeline start-immediately="true"/>`))

	// Act
	_, err := w3dxml.DecodeTimeline(doc.SelectElement("Timeline"))

	// Assert
	var malformed *errs.MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
}

func TestDecodeTimeline_OutOfOrderEntriesAreSorted(t *testing.T) {
	t.Parallel()

	// Arrange: hand-edited documents are not guaranteed sorted.
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`
		<Timeline name="shuffled">
		  <TimedActions seconds-time="2"><SoundRef name="late"/></TimedActions>
		  <TimedActions seconds-time="1"><SoundRef name="early"/></TimedActions>
		</Timeline>`))

	// Act
	tl, err := w3dxml.DecodeTimeline(doc.SelectElement("Timeline"))

	// Assert
	require.NoError(t, err)
	entries := tl.Actions()
	require.Len(t, entries, 2)
	assert.Equal(t, 1.0, entries[0].Time)
	assert.Equal(t, 2.0, entries[1].Time)
}

func TestDecodeTrigger_BadCornerTupleFails(t *testing.T) {
	t.Parallel()

	// Arrange
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`
		<EventTrigger name="broken">
		  <Box corner1="(0, 0)" corner2="(1, 1, 1)"><Inside/></Box>
		</EventTrigger>`))

	// Act
	_, err := w3dxml.DecodeTrigger(doc.SelectElement("EventTrigger"))

	// Assert
	var malformed *errs.MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "tuple")
}

func TestDecodeAction_UnknownElementFails(t *testing.T) {
	t.Parallel()

	// Arrange
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`
		<Timeline name="bad">
		  <TimedActions seconds-time="0"><Teleport name="x"/></TimedActions>
		</Timeline>`))

	// Act
	_, err := w3dxml.DecodeTimeline(doc.SelectElement("Timeline"))

	// Assert
	var malformed *errs.MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "Teleport", malformed.Element)
}

func TestDecodeScene_MissingRootFails(t *testing.T) {
	t.Parallel()

	// Arrange
	_, err := w3dxml.Read(strings.NewReader(`<NotAProject/>`))

	// Assert
	var malformed *errs.MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
}
