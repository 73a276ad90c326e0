package catalog

import (
	"strings"
	"time"
)

// AnswerType defines how a question is answered
type AnswerType string

const (
	AnswerTypeYesNo    AnswerType = "yesNo"
	AnswerTypeDropdown AnswerType = "dropdown"
	AnswerTypeDate     AnswerType = "date"
	AnswerTypeText     AnswerType = "text"
)

// Question is one prompt in the catalog. Questions are defined once at
// process start and are immutable across all sessions.
type Question struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	AnswerType AnswerType `json:"answerType"`
	Options    []string   `json:"options,omitempty"`
	Section    string     `json:"section"`
	Required   bool       `json:"required"`
}

// Catalog is the immutable ordered question collection. Declaration order is
// load-bearing: section filters return questions in this order, and that
// order is the order chains are asked in.
type Catalog struct {
	questions []Question
	byID      map[string]int
}

// New builds the catalog from the static question definitions.
func New() *Catalog {
	c := &Catalog{
		questions: questionDefs(),
		byID:      make(map[string]int),
	}
	for i, q := range c.questions {
		c.byID[q.ID] = i
	}
	return c
}

// All returns every question in declaration order.
func (c *Catalog) All() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// ByID looks up a question by its stable id.
func (c *Catalog) ByID(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// BySection returns all questions with exactly the given section tag, in
// declaration order.
func (c *Catalog) BySection(section string) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Section == section {
			out = append(out, q)
		}
	}
	return out
}

// BySectionPrefix returns all questions whose section tag starts with the
// given prefix, in declaration order.
func (c *Catalog) BySectionPrefix(prefix string) []Question {
	var out []Question
	for _, q := range c.questions {
		if strings.HasPrefix(q.Section, prefix) {
			out = append(out, q)
		}
	}
	return out
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// ValidateAnswer checks a raw answer value against the question's type.
// Only date questions are actually enforced; Required is advisory for the
// rest, matching the engine's behavior elsewhere.
func ValidateAnswer(q Question, value string) bool {
	switch q.AnswerType {
	case AnswerTypeDate:
		if value == "" {
			return !q.Required
		}
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	default:
		return true
	}
}
