package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
)

func TestClickLink_NextCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		reset int
		count int
		want  int
	}{
		{"no reset just increments", -1, 5, 6},
		{"wraps the instant the counter reaches reset", 3, 2, 0},
		{"below reset increments", 3, 1, 2},
		{"reset zero never matches an increment", 0, 4, 5},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			link := model.NewClickLink()
			link.Reset = tc.reset
			assert.Equal(t, tc.want, link.NextCount(tc.count))
		})
	}
}

func TestClickLink_ActionsForCountFallsBackToAny(t *testing.T) {
	t.Parallel()

	// Arrange
	link := model.NewClickLink()
	exact := model.SoundAction{Sound: "exact"}
	fallback := model.SoundAction{Sound: "fallback"}
	require.NoError(t, link.Bind(2, exact))
	require.NoError(t, link.Bind(model.AnyClick, fallback))

	// Assert
	assert.Equal(t, []model.Action{exact}, link.ActionsForCount(2))
	assert.Equal(t, []model.Action{fallback}, link.ActionsForCount(7))
}

func TestClickLink_ActionsForCountWithoutAnyIsNil(t *testing.T) {
	t.Parallel()

	link := model.NewClickLink()
	require.NoError(t, link.Bind(1, model.SoundAction{Sound: "only"}))

	assert.Nil(t, link.ActionsForCount(2))
}

func TestClickLink_BindRejectsInvalidCount(t *testing.T) {
	t.Parallel()

	link := model.NewClickLink()
	err := link.Bind(-2, model.SoundAction{Sound: "bad"})

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestClickLink_BoundCountsAreSortedWithoutSentinel(t *testing.T) {
	t.Parallel()

	// Arrange
	link := model.NewClickLink()
	require.NoError(t, link.Bind(5, model.SoundAction{Sound: "a"}))
	require.NoError(t, link.Bind(1, model.SoundAction{Sound: "b"}))
	require.NoError(t, link.Bind(model.AnyClick, model.SoundAction{Sound: "c"}))
	require.NoError(t, link.Bind(3, model.SoundAction{Sound: "d"}))

	// Assert
	assert.Equal(t, []int{1, 3, 5}, link.BoundCounts())
}

func TestClickLink_ValidateChecksColors(t *testing.T) {
	t.Parallel()

	link := model.NewClickLink()
	link.SelectedColor = model.Color{255, 300, 0}

	var validation *errs.ValidationError
	require.ErrorAs(t, link.Validate(), &validation)
}

func TestObject_ValidatePropagatesLinkErrors(t *testing.T) {
	t.Parallel()

	o := model.NewObject("bad")
	o.Link = model.NewClickLink()
	o.Link.EnabledColor = model.Color{-1, 0, 0}

	require.Error(t, o.Validate())
}
