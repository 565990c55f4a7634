package primejudge

// JudgmentState holds the number being edited and the last verdict computed for it.
// The stored verdict always describes lastJudged, which may differ from input;
// Current hides it once the two diverge.
type JudgmentState struct {
	input      int64
	lastJudged int64
	verdict    Verdict
	hasJudged  bool
}

// NewJudgmentState creates the state with the given initial input and no verdict.
func NewJudgmentState(input int64) *JudgmentState {
	return &JudgmentState{
		input:      input,
		lastJudged: input,
	}
}

// Input returns the current input value.
func (s *JudgmentState) Input() int64 {
	return s.input
}

// SetInput updates the input. The verdict becomes stale when the
// new value differs from the last judged one.
func (s *JudgmentState) SetInput(n int64) {
	s.input = n
	s.Refresh()
}

// Refresh clears the judged flag in case the input moved away from the last judged value.
// It is meant to be called on every frame.
func (s *JudgmentState) Refresh() {
	if s.input != s.lastJudged {
		s.hasJudged = false
	}
}

// Judge judges the current input and stores the result.
func (s *JudgmentState) Judge() Verdict {
	s.verdict = Judge(s.input)
	s.lastJudged = s.input
	s.hasJudged = true

	return s.verdict
}

// HasJudged reports whether the stored verdict matches the current input.
func (s *JudgmentState) HasJudged() bool {
	return s.hasJudged
}

// Current returns the verdict for the current input, or an Unjudged verdict if it is stale.
func (s *JudgmentState) Current() Verdict {
	if !s.hasJudged {
		return Verdict{Kind: Unjudged, Input: s.input}
	}
	return s.verdict
}
