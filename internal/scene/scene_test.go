package scene_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/core/math32"

	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/scene"
)

func addObject(t *testing.T, s *scene.Scene, name string) {
	t.Helper()
	require.NoError(t, s.AddObject(model.NewObject(name)))
}

func TestScene_AddObject(t *testing.T) {
	t.Parallel()

	s := scene.New()
	addObject(t, s, "ball")

	assert.NotNil(t, s.Object("ball"))
	assert.True(t, s.Namespace().Claimed("object_ball"))
}

func TestScene_AddObjectRejectsDuplicates(t *testing.T) {
	t.Parallel()

	s := scene.New()
	addObject(t, s, "ball")

	err := s.AddObject(model.NewObject("ball"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}

func TestScene_AddObjectRejectsBadNames(t *testing.T) {
	t.Parallel()

	s := scene.New()

	require.Error(t, s.AddObject(model.NewObject("")))
	require.Error(t, s.AddObject(model.NewObject("bad name")))
	require.Error(t, s.AddObject(model.NewObject("2fast")))
}

func TestScene_AddGroupRequiresDefinedMembers(t *testing.T) {
	t.Parallel()

	// Arrange
	s := scene.New()
	addObject(t, s, "red")

	// Act
	err := s.AddGroup("balls", []string{"red", "ghost"})

	// Assert
	var unresolved *errs.UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "ghost", unresolved.Name)
	assert.Empty(t, s.Groups(), "a failed definition leaves no trace")
}

func TestScene_GroupAndObjectShareTheNamespaceByKind(t *testing.T) {
	t.Parallel()

	// An object and a group may carry the same authored name because their
	// host names differ by prefix.
	s := scene.New()
	addObject(t, s, "ball")

	require.NoError(t, s.AddGroup("ball", []string{"ball"}))
	assert.True(t, s.Namespace().Claimed("group_ball"))
}

func TestScene_ResolveObjects(t *testing.T) {
	t.Parallel()

	// Arrange
	s := scene.New()
	addObject(t, s, "red")
	addObject(t, s, "blue")
	require.NoError(t, s.AddGroup("balls", []string{"red", "blue", "red"}))

	// Act / Assert: groups expand deduplicated, in authored order.
	resolved, err := s.ResolveObjects("balls")
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, resolved)

	// A plain object name resolves to itself.
	resolved, err = s.ResolveObjects("blue")
	require.NoError(t, err)
	assert.Equal(t, []string{"blue"}, resolved)

	// Unknown names fail typed.
	_, err = s.ResolveObjects("ghost")
	var unresolved *errs.UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
}

func TestScene_GetPosition(t *testing.T) {
	t.Parallel()

	// Arrange
	s := scene.New()
	o := model.NewObject("ball")
	o.Placement.Position = math32.Vec3(1, 2, 3)
	require.NoError(t, s.AddObject(o))

	// Assert
	pos, ok := s.GetPosition("ball")
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(1, 2, 3), pos)

	_, ok = s.GetPosition("ghost")
	assert.False(t, ok)
}

func TestScene_CompileAllKeepsAuthoringOrder(t *testing.T) {
	t.Parallel()

	// Arrange: a timeline, a trigger and a clickable object, added in an
	// order that differs from compilation phase order.
	s := scene.New()
	button := model.NewObject("button")
	button.Link = model.NewClickLink()
	require.NoError(t, button.Link.Bind(1, model.SoundAction{Sound: "beep"}))
	require.NoError(t, s.AddObject(button))
	addObject(t, s, "ball")

	rt := model.NewRegionTrigger("goal")
	rt.Box = model.RegionBox{Corner1: math32.Vec3(0, 0, 0), Corner2: math32.Vec3(1, 1, 1)}
	rt.Tracked = []string{"ball"}
	rt.Actions = []model.Action{model.SoundAction{Sound: "cheer"}}
	require.NoError(t, s.AddTrigger(rt))

	require.NoError(t, s.AddTimeline(model.NewTimeline("intro", true)))

	// Act
	graphs, err := s.CompileAll(context.Background())

	// Assert: timelines first, then triggers, then links.
	require.NoError(t, err)
	require.Len(t, graphs, 3)
	assert.Equal(t, "timeline_intro", graphs[0].BaseObjectName)
	assert.Equal(t, "trigger_goal", graphs[1].BaseObjectName)
	assert.Equal(t, "trigger_button_link", graphs[2].BaseObjectName)
}

func TestScene_CompileAllFailsOnUnresolvedTrackedName(t *testing.T) {
	t.Parallel()

	// Arrange
	s := scene.New()
	rt := model.NewRegionTrigger("goal")
	rt.Tracked = []string{"ghost"}
	rt.Actions = []model.Action{model.SoundAction{Sound: "cheer"}}
	require.NoError(t, s.AddTrigger(rt))

	// Act
	graphs, err := s.CompileAll(context.Background())

	// Assert
	var unresolved *errs.UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
	assert.Nil(t, graphs, "a partially compiled scene is not returned")
}

func TestScene_CompileAllRejectsCollidingLogicCarriers(t *testing.T) {
	t.Parallel()

	// Arrange: a timeline and a trigger whose derived host names collide is
	// impossible by prefix, but two compile passes over the same scene reuse
	// claimed names and must fail loudly rather than double-register.
	s := scene.New()
	require.NoError(t, s.AddTimeline(model.NewTimeline("intro", true)))
	_, err := s.CompileAll(context.Background())
	require.NoError(t, err)

	// Act
	_, err = s.CompileAll(context.Background())

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")
}
