package flow

import (
	"strings"

	"descentcheck/internal/catalog"
	"descentcheck/internal/model"
)

// ActionKind says what the transition function decided
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionAdvance
	ActionTerminate
)

// Action is the outcome of applying an answer. On termination it carries
// the classification seed; presenting the terminal view is the caller's
// business.
type Action struct {
	Kind   ActionKind
	Record *model.ClassificationRecord
}

// ApplyAnswer records the given value for the question at the current
// cursor and either advances the cursor or short-circuits into a terminal
// classification. With no question at the cursor it is a no-op.
func ApplyAnswer(cat *catalog.Catalog, l Ledger, value string) (Ledger, Action) {
	l = ClampCursor(cat, l)
	seq := DeriveSequence(cat, l)
	if l.CurrentStep < 0 || l.CurrentStep >= len(seq) {
		return l, Action{Kind: ActionNone}
	}
	q := seq[l.CurrentStep]

	next := l.withAnswer(q.ID, value)
	if rec := terminalFor(next, q, value); rec != nil {
		return next, Action{Kind: ActionTerminate, Record: rec}
	}

	next.CurrentStep = len(next.Answers)
	return next, Action{Kind: ActionAdvance}
}

// terminalFor checks the early-termination triggers against the freshly
// updated ledger. A nil result means the flow continues.
func terminalFor(l Ledger, q catalog.Question, value string) *model.ClassificationRecord {
	switch q.ID {
	case catalog.QGermanLeftBefore1933:
		if value == model.AnswerNo {
			return &model.ClassificationRecord{
				Eligible: false,
				Sections: []string{},
				Message:  msgGermanNoEarlyDeparture,
			}
		}
		return nil

	case catalog.QGermanCitizenshipRevoked:
		// No revocation and no flight from persecution: both conditions of
		// the main flow fail at once.
		if value == model.AnswerNo && l.IsNo(catalog.QGermanPersecutionFlight) {
			return &model.ClassificationRecord{
				Eligible: false,
				Sections: []string{},
				Message:  msgGermanNoRevocationNoFlight,
			}
		}
		return nil

	case catalog.QGermanRelation:
		return germanRelationTerminal(l, value)

	case catalog.QAncestorRelation:
		return ancestorRelationTerminal(l, value)

	case catalog.QAustriaRelation:
		return austriaRelationTerminal(l, value)
	}

	// Every yes/no question of the ancestor-line flow is a gate: a negative
	// answer ends the questionnaire with that question's own explanation.
	if strings.HasPrefix(q.Section, catalog.SectionAncestor) &&
		q.AnswerType == catalog.AnswerTypeYesNo && value == model.AnswerNo {
		msg, ok := terminationExplanations[q.ID]
		if !ok {
			msg = msgAncestorGenericNegative
		}
		return &model.ClassificationRecord{
			Eligible: false,
			Sections: []string{},
			Message:  msg,
		}
	}

	return nil
}

func germanRelationTerminal(l Ledger, value string) *model.ClassificationRecord {
	if l.HasNotSure() {
		section, _ := germanMainVerdict(l)
		if section == "" {
			section = model.Section15
		}
		return &model.ClassificationRecord{
			Eligible:    true,
			Sections:    []string{section},
			Message:     msgGermanNeedsReview,
			NeedsReview: true,
		}
	}
	if !catalog.ParseRelation(value).IsDirect() {
		return &model.ClassificationRecord{
			Eligible: false,
			Sections: []string{},
			Message:  msgGermanNotDirectRelative,
		}
	}
	if section, msg := germanMainVerdict(l); section != "" {
		return &model.ClassificationRecord{
			Eligible: true,
			Sections: []string{section},
			Message:  msg,
		}
	}
	return &model.ClassificationRecord{
		Eligible: false,
		Sections: []string{},
		Message:  germanMainNegativeReason(l),
	}
}

// germanMainVerdict matches the main-flow answers against the two positive
// combinations: revocation by the Nazi regime, or persecution flight plus
// loss of citizenship after emigration.
func germanMainVerdict(l Ledger) (section, msg string) {
	if l.IsYes(catalog.QGermanCitizenshipRevoked) {
		return model.Section116, msgGermanPositive116
	}
	if l.IsYes(catalog.QGermanPersecutionFlight) &&
		l.IsNo(catalog.QGermanCitizenshipRevoked) &&
		l.IsYes(catalog.QGermanCitizenshipRenounced) {
		return model.Section15, msgGermanPositive15
	}
	return "", ""
}

// germanMainNegativeReason maps the first disqualifying answer, earliest
// question first, to its explanation.
func germanMainNegativeReason(l Ledger) string {
	if l.IsNo(catalog.QGermanLeftBefore1933) {
		return msgGermanNoEarlyDeparture
	}
	if l.IsNo(catalog.QGermanCitizenshipRevoked) && l.IsNo(catalog.QGermanPersecutionFlight) {
		return msgGermanNoRevocationNoFlight
	}
	if l.IsNo(catalog.QGermanCitizenshipRevoked) {
		return msgGermanNoRevocation
	}
	if l.IsNo(catalog.QGermanCitizenshipRenounced) {
		return msgGermanKeptCitizenship
	}
	return msgGermanGenericNegative
}

func ancestorRelationTerminal(l Ledger, value string) *model.ClassificationRecord {
	if l.HasNotSure() {
		return &model.ClassificationRecord{
			Eligible:    true,
			Sections:    []string{model.Section5},
			Message:     msgAncestorNeedsReview,
			NeedsReview: true,
		}
	}
	if !catalog.ParseRelation(value).IsDirect() {
		return &model.ClassificationRecord{
			Eligible: false,
			Sections: []string{},
			Message:  msgGermanNotDirectRelative,
		}
	}
	category, msg := ancestorCategory(l)
	return &model.ClassificationRecord{
		Eligible: true,
		Sections: []string{model.Section5},
		Message:  msg,
		Category: category,
	}
}

// ancestorCategory picks the §5 outcome category from the marker answers,
// marriage loss first, then legitimation loss, then the direct-parent and
// grandparent lines.
func ancestorCategory(l Ledger) (category, msg string) {
	if l.IsYes(catalog.QGMMMLostByMarriage) || l.IsYes(catalog.QGMFMLostByMarriage) {
		return model.CategoryMarriageLoss, msgAncestorMarriageLoss
	}
	if l.IsYes(catalog.QFatherLostByLegitimation) {
		return model.CategoryLegitimationLoss, msgAncestorLegitimationLoss
	}
	switch catalog.ParseAncestor(mustValue(l, catalog.QAncestorEarliest)) {
	case catalog.AncestorMother, catalog.AncestorFather:
		return model.CategoryParent, msgAncestorParent
	default:
		return model.CategoryGrandparent, msgAncestorGrandparent
	}
}

func austriaRelationTerminal(l Ledger, value string) *model.ClassificationRecord {
	if l.HasNotSure() {
		return &model.ClassificationRecord{
			Eligible:    true,
			Sections:    []string{model.Section58c},
			Message:     msgAustriaNeedsReview,
			NeedsReview: true,
		}
	}
	if !catalog.ParseRelation(value).IsDirect() {
		return &model.ClassificationRecord{
			Eligible: false,
			Sections: []string{},
			Message:  msgAustriaNotDirectDescendant,
		}
	}
	return &model.ClassificationRecord{
		Eligible: true,
		Sections: []string{model.Section58c},
		Message:  msgAustriaPositive,
	}
}

func mustValue(l Ledger, id string) string {
	v, _ := l.Value(id)
	return v
}
