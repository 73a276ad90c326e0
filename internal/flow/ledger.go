// Package flow implements the question-flow engine: deriving the question
// sequence from the answers given so far, applying new answers, and
// classifying a finished ledger into an eligibility verdict.
//
// Everything in this package is pure. The functions never do I/O, never
// panic on odd ledger shapes, and never return errors: any ledger, however
// partial or answered out of order, maps to a well-defined result.
package flow

import (
	"descentcheck/internal/catalog"
	"descentcheck/internal/model"
)

// Ledger is an immutable snapshot of the respondent's answers plus the
// cursor into the derived sequence. The cursor indexes the derived
// sequence, not the answer list.
type Ledger struct {
	Answers     []model.Answer
	CurrentStep int
}

// NewLedger builds a ledger from a session snapshot.
func NewLedger(answers []model.Answer, currentStep int) Ledger {
	return Ledger{Answers: answers, CurrentStep: currentStep}
}

// Value returns the live answer value for a question id.
func (l Ledger) Value(id string) (string, bool) {
	for _, a := range l.Answers {
		if a.QuestionID == id {
			return a.Value, true
		}
	}
	return "", false
}

// Has reports whether the question has been answered.
func (l Ledger) Has(id string) bool {
	_, ok := l.Value(id)
	return ok
}

// IsYes reports whether the question was answered affirmatively.
func (l Ledger) IsYes(id string) bool {
	v, ok := l.Value(id)
	return ok && v == model.AnswerYes
}

// IsNo reports whether the question was answered negatively.
func (l Ledger) IsNo(id string) bool {
	v, ok := l.Value(id)
	return ok && v == model.AnswerNo
}

// HasNotSure reports whether any answer anywhere carries the "not sure"
// sentinel.
func (l Ledger) HasNotSure() bool {
	for _, a := range l.Answers {
		if a.IsNotSure() {
			return true
		}
	}
	return false
}

// withAnswer records an answer, enforcing the truncation rule: re-answering
// a question discards every answer recorded after it, so stale downstream
// answers from a superseded branch can never survive.
func (l Ledger) withAnswer(id, value string) Ledger {
	for i, a := range l.Answers {
		if a.QuestionID == id {
			next := make([]model.Answer, i, i+1)
			copy(next, l.Answers[:i])
			next = append(next, model.Answer{QuestionID: id, Value: value})
			return Ledger{Answers: next, CurrentStep: l.CurrentStep}
		}
	}
	next := make([]model.Answer, len(l.Answers), len(l.Answers)+1)
	copy(next, l.Answers)
	next = append(next, model.Answer{QuestionID: id, Value: value})
	return Ledger{Answers: next, CurrentStep: l.CurrentStep}
}

// ClampCursor repairs a cursor left pointing past the end of the freshly
// derived sequence, which happens when an edit to an earlier answer
// shortens the effective path. The cursor is clamped to the last valid
// index; if the question the cursor was resting on no longer appears in the
// sequence at all, it resets to 0. Designed recovery, not an error.
func ClampCursor(cat *catalog.Catalog, l Ledger) Ledger {
	seq := DeriveSequence(cat, l)
	if l.CurrentStep >= 0 && l.CurrentStep < len(seq) {
		return l
	}
	clamped := len(seq) - 1
	if clamped < 0 {
		clamped = 0
	}
	if l.CurrentStep >= 0 && l.CurrentStep < len(l.Answers) {
		pointed := l.Answers[l.CurrentStep].QuestionID
		found := false
		for _, q := range seq {
			if q.ID == pointed {
				found = true
				break
			}
		}
		if !found {
			clamped = 0
		}
	}
	return Ledger{Answers: l.Answers, CurrentStep: clamped}
}
