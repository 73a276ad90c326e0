package model

// Sentinel values for yes/no questions. Dropdown, date and text questions
// carry the raw option string or free text instead.
const (
	AnswerYes     = "yes"
	AnswerNo      = "no"
	AnswerNotSure = "not_sure"
)

// Answer is one respondent response. At most one Answer per QuestionID is
// live at a time: re-answering a question replaces the old answer and drops
// everything recorded after it.
type Answer struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	Value      string `json:"value" bson:"value"`
}

// IsNotSure reports whether the answer carries the "not sure" sentinel.
func (a Answer) IsNotSure() bool {
	return a.Value == AnswerNotSure
}
