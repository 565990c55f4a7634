package primejudge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_StartsUnjudged(t *testing.T) {
	s := NewJudgmentState(7)

	assert.False(t, s.HasJudged())
	assert.Equal(t, Unjudged, s.Current().Kind)
	assert.Equal(t, int64(7), s.Input())
}

func TestState_JudgeStoresVerdict(t *testing.T) {
	s := NewJudgmentState(12)
	v := s.Judge()

	assert.True(t, s.HasJudged())
	assert.Equal(t, Composite, v.Kind)
	assert.Equal(t, v, s.Current())
	assert.Equal(t, []int64{2, 3, 4, 6}, s.Current().Factors)
}

func TestState_InputChangeMakesVerdictStale(t *testing.T) {
	s := NewJudgmentState(97)
	s.Judge()

	s.SetInput(98)
	assert.False(t, s.HasJudged())
	assert.Equal(t, Unjudged, s.Current().Kind)
	assert.Equal(t, int64(98), s.Current().Input)

	// Going back to the judged value does not revive the old verdict.
	s.SetInput(97)
	s.Refresh()
	assert.False(t, s.HasJudged())

	s.Judge()
	assert.True(t, s.HasJudged())
	assert.Equal(t, Prime, s.Current().Kind)
}

func TestState_SameInputKeepsVerdict(t *testing.T) {
	s := NewJudgmentState(4)
	s.Judge()

	s.SetInput(4)
	s.Refresh()
	assert.True(t, s.HasJudged())
	assert.Equal(t, []int64{2}, s.Current().Factors)
}
