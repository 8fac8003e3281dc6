package domain

import "strings"

// SessionState is the progression state of a quiz attempt.
type SessionState string

const (
	SessionNotStarted SessionState = "not_started"
	SessionInProgress SessionState = "in_progress"
	SessionCompleted  SessionState = "completed"
)

// QuizSession is the per-user state of one quiz attempt. Order holds the
// bank indices drawn for the attempt in presentation order, Cursor the
// 0-based position of the next unanswered question, and Responses one slot
// per drawn question holding the submitted option code or "" while unset.
//
// A session is owned by exactly one user and mutated only by that user's
// requests. If the same user drives it from two tabs the store applies
// last-write-wins on the cursor, which is acceptable for this domain.
type QuizSession struct {
	Order     []int    `json:"order"`
	Cursor    int      `json:"cursor"`
	Responses []string `json:"responses"`
}

// StartSession begins a new attempt over the given presentation order.
// A zero-length order starts the session directly in the completed state.
func StartSession(order []int) *QuizSession {
	if order == nil {
		order = []int{}
	}
	return &QuizSession{
		Order:     order,
		Cursor:    0,
		Responses: make([]string, len(order)),
	}
}

// State derives the current progression state. A nil session or one whose
// order was cleared by Reset has not been started.
func (s *QuizSession) State() SessionState {
	switch {
	case s == nil || s.Order == nil:
		return SessionNotStarted
	case s.Cursor >= len(s.Order):
		return SessionCompleted
	default:
		return SessionInProgress
	}
}

// Current returns the bank index of the question at the cursor.
func (s *QuizSession) Current() (int, error) {
	if s.State() != SessionInProgress {
		return 0, NewNoActiveSessionError()
	}
	return s.Order[s.Cursor], nil
}

// Submit records a non-empty choice at the cursor and advances it. An empty
// or whitespace-only choice is rejected without touching the cursor so the
// caller can re-prompt. Submitting after completion is also rejected.
func (s *QuizSession) Submit(choice string) error {
	if s.State() != SessionInProgress {
		return NewNoActiveSessionError()
	}
	if strings.TrimSpace(choice) == "" {
		return NewEmptySubmissionError()
	}
	s.Responses[s.Cursor] = choice
	s.Cursor++
	return nil
}

// Reset clears the attempt, returning the session to the not-started state.
// Valid from any state; mid-attempt it acts as an abort.
func (s *QuizSession) Reset() {
	s.Order = nil
	s.Cursor = 0
	s.Responses = nil
}

// Total returns the number of questions drawn for the attempt.
func (s *QuizSession) Total() int {
	if s == nil {
		return 0
	}
	return len(s.Order)
}
