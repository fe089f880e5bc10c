package evaluator_test

import (
	"context"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/scenegridgo/internal/activator"
	"github.com/vk/scenegridgo/internal/evaluator"
	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/names"
	"github.com/vk/scenegridgo/internal/scene"
)

// compile builds a scene, compiles it and wraps the graphs in an evaluator
// ticking ten times per simulated second.
func compile(t *testing.T, build func(s *scene.Scene)) *evaluator.Evaluator {
	t.Helper()
	s := scene.New()
	build(s)
	graphs, err := s.CompileAll(context.Background())
	require.NoError(t, err)
	return evaluator.New(graphs, evaluator.WithTickRate(0.1))
}

func vec(x, y, z float32) math32.Vector3 {
	return math32.Vec3(x, y, z)
}

func addObject(t *testing.T, s *scene.Scene, name string) {
	t.Helper()
	require.NoError(t, s.AddObject(model.NewObject(name)))
}

func TestEvaluator_TimelineDispatchesOnceAtScheduledTime(t *testing.T) {
	t.Parallel()

	// Arrange
	e := compile(t, func(s *scene.Scene) {
		tl := model.NewTimeline("intro", true)
		require.NoError(t, tl.Insert(0.2, model.SoundAction{Sound: "chime", Operation: model.SoundStart}))
		require.NoError(t, s.AddTimeline(tl))
	})

	// Act
	e.Run(2)
	before := len(e.Journal())
	e.Run(5)

	// Assert
	assert.Equal(t, 0, before, "nothing should dispatch before the scheduled time")
	journal := e.Journal()
	require.Len(t, journal, 1, "a time sensor fires once per run, not on every later tick")
	assert.Equal(t, 2, journal[0].Tick)
	assert.Equal(t, model.SoundAction{Sound: "chime", Operation: model.SoundStart}, journal[0].Action)
}

func TestEvaluator_TimelineWithoutStartImmediatelyStaysSilent(t *testing.T) {
	t.Parallel()

	// Arrange
	e := compile(t, func(s *scene.Scene) {
		tl := model.NewTimeline("later", false)
		require.NoError(t, tl.Insert(0, model.SoundAction{Sound: "chime"}))
		require.NoError(t, s.AddTimeline(tl))
	})

	// Act
	e.Run(10)

	// Assert
	assert.Empty(t, e.Journal())
	state, ok := e.State(names.ForTimeline("later"))
	require.True(t, ok)
	assert.Equal(t, activator.StatusStop, state.Status)
}

func TestEvaluator_RegionTriggerDispatchesOnEntryAndDisables(t *testing.T) {
	t.Parallel()

	// Arrange
	e := compile(t, func(s *scene.Scene) {
		addObject(t, s, "ball")
		rt := model.NewRegionTrigger("goal")
		rt.Box = model.RegionBox{Corner1: vec(0, 0, 0), Corner2: vec(10, 10, 10)}
		rt.Tracked = []string{"ball"}
		rt.RemainEnabled = false
		rt.Actions = []model.Action{model.SoundAction{Sound: "cheer"}}
		require.NoError(t, s.AddTrigger(rt))
	})
	e.SetPosition(names.ForObject("ball"), 5, 5, 5)

	// Act
	e.Run(3)
	e.SetPosition(names.ForObject("ball"), 50, 0, 0)
	e.Run(2)
	e.SetPosition(names.ForObject("ball"), 5, 5, 5)
	e.Run(3)

	// Assert
	journal := e.Journal()
	require.Len(t, journal, 1, "a one-shot trigger must not re-fire after re-entry")
	assert.Equal(t, model.SoundAction{Sound: "cheer"}, journal[0].Action)
	state, ok := e.State(names.ForTrigger("goal"))
	require.True(t, ok)
	assert.False(t, state.Enabled)
}

func TestEvaluator_RegionTriggerReArmsWhenRemainEnabled(t *testing.T) {
	t.Parallel()

	// Arrange
	e := compile(t, func(s *scene.Scene) {
		addObject(t, s, "ball")
		rt := model.NewRegionTrigger("checkpoint")
		rt.Box = model.RegionBox{Corner1: vec(0, 0, 0), Corner2: vec(10, 10, 10)}
		rt.Tracked = []string{"ball"}
		rt.Actions = []model.Action{model.SoundAction{Sound: "ding"}}
		require.NoError(t, s.AddTrigger(rt))
	})

	// Act: enter, leave, enter again.
	e.SetPosition(names.ForObject("ball"), 5, 5, 5)
	e.Run(3)
	e.SetPosition(names.ForObject("ball"), 50, 0, 0)
	e.Run(2)
	e.SetPosition(names.ForObject("ball"), 5, 5, 5)
	e.Run(3)

	// Assert
	assert.Len(t, e.Journal(), 2, "leaving the region re-arms the trigger")
}

func TestEvaluator_RegionTriggerSustainedWindowResetsOnExit(t *testing.T) {
	t.Parallel()

	// Arrange: containment must hold 0.3s continuously; ticks are 0.1s.
	build := func(s *scene.Scene) {
		addObject(t, s, "ball")
		rt := model.NewRegionTrigger("dwell")
		rt.Box = model.RegionBox{Corner1: vec(0, 0, 0), Corner2: vec(10, 10, 10)}
		rt.Tracked = []string{"ball"}
		rt.Duration = 0.3
		rt.Actions = []model.Action{model.SoundAction{Sound: "unlock"}}
		require.NoError(t, s.AddTrigger(rt))
	}

	// Act: a stay interrupted before the window elapses never fires.
	interrupted := compile(t, build)
	interrupted.SetPosition(names.ForObject("ball"), 5, 5, 5)
	interrupted.Run(2)
	interrupted.SetPosition(names.ForObject("ball"), 50, 0, 0)
	interrupted.Run(1)
	interrupted.SetPosition(names.ForObject("ball"), 5, 5, 5)
	interrupted.Run(2)

	// Act: an uninterrupted stay fires once the window elapses.
	sustained := compile(t, build)
	sustained.SetPosition(names.ForObject("ball"), 5, 5, 5)
	sustained.Run(6)

	// Assert
	assert.Empty(t, interrupted.Journal(), "the hold counter rewinds on the first tick outside")
	assert.Len(t, sustained.Journal(), 1)
}

func TestEvaluator_RegionTriggerEmptyTrackedSetNeverFires(t *testing.T) {
	t.Parallel()

	// Arrange
	e := compile(t, func(s *scene.Scene) {
		rt := model.NewRegionTrigger("vacant")
		rt.Box = model.RegionBox{Corner1: vec(0, 0, 0), Corner2: vec(10, 10, 10), Mode: model.ModeOutside}
		rt.Actions = []model.Action{model.SoundAction{Sound: "never"}}
		require.NoError(t, s.AddTrigger(rt))
	})

	// Act
	e.Run(5)

	// Assert
	assert.Empty(t, e.Journal())
}

func TestEvaluator_ClickCounterRoutesAndWraps(t *testing.T) {
	t.Parallel()

	// Arrange: bindings on counts 1 and 2, wrapping the instant the counter
	// would reach 3.
	e := compile(t, func(s *scene.Scene) {
		o := model.NewObject("button")
		o.Link = model.NewClickLink()
		o.Link.Reset = 3
		require.NoError(t, o.Link.Bind(1, model.SoundAction{Sound: "first"}))
		require.NoError(t, o.Link.Bind(2, model.SoundAction{Sound: "second"}))
		require.NoError(t, s.AddObject(o))
	})

	// Act: four clicks, one per tick.
	for i := 0; i < 4; i++ {
		e.Click(names.ForObject("button"))
		e.Tick()
	}

	// Assert: counts run 1, 2, 0 (wrapped), 1.
	journal := e.Journal()
	require.Len(t, journal, 3)
	assert.Equal(t, model.SoundAction{Sound: "first"}, journal[0].Action)
	assert.Equal(t, model.SoundAction{Sound: "second"}, journal[1].Action)
	assert.Equal(t, model.SoundAction{Sound: "first"}, journal[2].Action)
	state, ok := e.State(names.ForTrigger("button_link"))
	require.True(t, ok)
	assert.Equal(t, 1, state.Clicks)
}

func TestEvaluator_ClickFallsBackToAnyBinding(t *testing.T) {
	t.Parallel()

	// Arrange
	e := compile(t, func(s *scene.Scene) {
		o := model.NewObject("lever")
		o.Link = model.NewClickLink()
		require.NoError(t, o.Link.Bind(2, model.SoundAction{Sound: "exact"}))
		require.NoError(t, o.Link.Bind(model.AnyClick, model.SoundAction{Sound: "fallback"}))
		require.NoError(t, s.AddObject(o))
	})

	// Act
	for i := 0; i < 3; i++ {
		e.Click(names.ForObject("lever"))
		e.Tick()
	}

	// Assert: counts 1 and 3 take the fallback, count 2 the exact binding.
	journal := e.Journal()
	require.Len(t, journal, 3)
	assert.Equal(t, model.SoundAction{Sound: "fallback"}, journal[0].Action)
	assert.Equal(t, model.SoundAction{Sound: "exact"}, journal[1].Action)
	assert.Equal(t, model.SoundAction{Sound: "fallback"}, journal[2].Action)
}

func TestEvaluator_ClickDisablesAfterFirstDispatch(t *testing.T) {
	t.Parallel()

	// Arrange
	e := compile(t, func(s *scene.Scene) {
		o := model.NewObject("fuse")
		o.Link = model.NewClickLink()
		o.Link.RemainEnabled = false
		require.NoError(t, o.Link.Bind(1, model.SoundAction{Sound: "boom"}))
		require.NoError(t, s.AddObject(o))
	})

	// Act
	e.Click(names.ForObject("fuse"))
	e.Tick()
	e.Click(names.ForObject("fuse"))
	e.Tick()

	// Assert
	assert.Len(t, e.Journal(), 1)
	state, ok := e.State(names.ForTrigger("fuse_link"))
	require.True(t, ok)
	assert.False(t, state.Enabled)
	assert.Equal(t, 1, state.Clicks, "a click on a disabled link is not counted")
}

func TestEvaluator_ClickStartsTimelineAcrossGraphs(t *testing.T) {
	t.Parallel()

	// Arrange: the click's TimerChange lands after the tick, so the timeline's
	// clock seeds on the following one.
	e := compile(t, func(s *scene.Scene) {
		tl := model.NewTimeline("reveal", false)
		require.NoError(t, tl.Insert(0, model.SoundAction{Sound: "tada"}))
		require.NoError(t, s.AddTimeline(tl))

		o := model.NewObject("switch_")
		o.Link = model.NewClickLink()
		require.NoError(t, o.Link.Bind(1, model.TimelineAction{Timeline: "reveal", Operation: model.TimelineStart}))
		require.NoError(t, s.AddObject(o))
	})

	// Act
	e.Click(names.ForObject("switch_"))
	e.Run(3)

	// Assert
	journal := e.Journal()
	require.Len(t, journal, 2)
	assert.Equal(t, model.TimelineAction{Timeline: "reveal", Operation: model.TimelineStart}, journal[0].Action)
	assert.Equal(t, model.SoundAction{Sound: "tada"}, journal[1].Action)
	assert.Greater(t, journal[1].Tick, journal[0].Tick)
}

func TestEvaluator_TriggerEnablesAnotherTrigger(t *testing.T) {
	t.Parallel()

	// Arrange: the gate trigger starts disabled and is switched on by the key
	// trigger's Event action.
	e := compile(t, func(s *scene.Scene) {
		addObject(t, s, "player")

		gate := model.NewRegionTrigger("gate")
		gate.Enabled = false
		gate.Box = model.RegionBox{Corner1: vec(0, 0, 0), Corner2: vec(10, 10, 10)}
		gate.Tracked = []string{"player"}
		gate.Actions = []model.Action{model.SoundAction{Sound: "open"}}
		require.NoError(t, s.AddTrigger(gate))

		key := model.NewRegionTrigger("key")
		key.Box = model.RegionBox{Corner1: vec(20, 0, 0), Corner2: vec(30, 10, 10)}
		key.Tracked = []string{"player"}
		key.RemainEnabled = false
		key.Actions = []model.Action{model.EventTriggerAction{Trigger: "gate", Enable: true}}
		require.NoError(t, s.AddTrigger(key))
	})

	// Act: the gate region alone does nothing while disabled.
	e.SetPosition(names.ForObject("player"), 5, 5, 5)
	e.Run(3)
	silent := len(e.Journal())

	// Pick up the key, then return to the gate.
	e.SetPosition(names.ForObject("player"), 25, 5, 5)
	e.Run(3)
	e.SetPosition(names.ForObject("player"), 5, 5, 5)
	e.Run(3)

	// Assert
	assert.Equal(t, 0, silent)
	journal := e.Journal()
	require.Len(t, journal, 2)
	assert.Equal(t, model.EventTriggerAction{Trigger: "gate", Enable: true}, journal[0].Action)
	assert.Equal(t, model.SoundAction{Sound: "open"}, journal[1].Action)
}
