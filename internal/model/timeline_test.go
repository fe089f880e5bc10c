package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
)

func TestTimeline_InsertKeepsTimeOrder(t *testing.T) {
	t.Parallel()

	// Arrange
	tl := model.NewTimeline("shuffled", false)

	// Act
	require.NoError(t, tl.Insert(2, model.SoundAction{Sound: "late"}))
	require.NoError(t, tl.Insert(0.5, model.SoundAction{Sound: "early"}))
	require.NoError(t, tl.Insert(1, model.SoundAction{Sound: "middle"}))

	// Assert
	entries := tl.Actions()
	require.Len(t, entries, 3)
	assert.Equal(t, 0.5, entries[0].Time)
	assert.Equal(t, 1.0, entries[1].Time)
	assert.Equal(t, 2.0, entries[2].Time)
}

func TestTimeline_EqualTimesKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	// Arrange
	tl := model.NewTimeline("simultaneous", false)

	// Act
	require.NoError(t, tl.Insert(1, model.SoundAction{Sound: "first"}))
	require.NoError(t, tl.Insert(1, model.SoundAction{Sound: "second"}))
	require.NoError(t, tl.Insert(1, model.SoundAction{Sound: "third"}))

	// Assert
	entries := tl.Actions()
	require.Len(t, entries, 3)
	assert.Equal(t, model.SoundAction{Sound: "first"}, entries[0].Action)
	assert.Equal(t, model.SoundAction{Sound: "second"}, entries[1].Action)
	assert.Equal(t, model.SoundAction{Sound: "third"}, entries[2].Action)
}

func TestTimeline_NegativeTimeIsRejected(t *testing.T) {
	t.Parallel()

	tl := model.NewTimeline("strict", false)

	err := tl.Insert(-0.1, model.SoundAction{Sound: "never"})

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, 0, tl.Len())
}

func TestTimeline_NilActionIsRejected(t *testing.T) {
	t.Parallel()

	tl := model.NewTimeline("strict", false)

	err := tl.Insert(0, nil)

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestTimeline_ActionsReturnsACopy(t *testing.T) {
	t.Parallel()

	// Arrange
	tl := model.NewTimeline("shared", false)
	require.NoError(t, tl.Insert(1, model.SoundAction{Sound: "original"}))

	// Act
	entries := tl.Actions()
	entries[0] = model.TimedAction{Time: 99, Action: model.SoundAction{Sound: "mutated"}}

	// Assert
	fresh := tl.Actions()
	assert.Equal(t, 1.0, fresh[0].Time)
	assert.Equal(t, model.SoundAction{Sound: "original"}, fresh[0].Action)
}
