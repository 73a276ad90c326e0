package model

import "time"

// Session is the full per-respondent state: the answer ledger, the cursor
// into the derived question sequence, and the result-saved guard.
//
// ResultSaved is deliberately not part of the answer ledger. It guards the
// one-time write of the classification record to the results sink and is
// cleared only by an explicit restart.
type Session struct {
	ID          string    `json:"id"`
	Answers     []Answer  `json:"answers"`
	CurrentStep int       `json:"currentStep"`
	ResultSaved bool      `json:"resultSaved"`
	StartedAt   time.Time `json:"startedAt"`
}

// NewSession returns an empty session with the given id.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Answers:   []Answer{},
		StartedAt: time.Now(),
	}
}
