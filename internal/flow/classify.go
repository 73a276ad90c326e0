package flow

import (
	"unicode"

	"descentcheck/internal/catalog"
	"descentcheck/internal/model"
)

// NavContext carries what the surrounding navigation layer knows when the
// terminal view is entered: an optional explanation string forwarded from
// the terminating transition, and whether the view was reached through the
// questionnaire at all.
type NavContext struct {
	Explanation string
	HasRoute    bool
}

// Classify re-derives the eligibility verdict from the ledger alone, so a
// reload of the terminal view still produces a correct result. It is a
// second interpreter over the same ledger, written independently of the
// transition handler's termination triggers; the two must agree for every
// reachable terminal ledger.
//
// A forwarded explanation is preferred only when it matches the dominant
// script of the UI text; anything containing Latin characters is ignored
// and the explanation is recomputed from the ledger.
func Classify(cat *catalog.Catalog, l Ledger, nav NavContext) model.ClassificationRecord {
	rec := classifyLedger(cat, l, nav)
	if nav.Explanation != "" && !containsLatin(nav.Explanation) {
		rec.Message = nav.Explanation
	}
	return rec
}

// classifyLedger runs the ordered check chain. First match wins; the order
// is load-bearing.
func classifyLedger(cat *catalog.Catalog, l Ledger, nav NavContext) model.ClassificationRecord {
	// 1. An answered ancestor-line entry question means the §5 flow.
	if l.Has(catalog.QAncestorEarliest) {
		return classifyAncestor(l)
	}

	// 2. Any "not sure" answer yields a qualified-positive pending review,
	// unless the ledger also carries a hard disqualifying answer, which
	// ended the flow on the spot and wins.
	if l.HasNotSure() && !germanHardNegative(l) {
		return classifyNotSure(l)
	}

	// 3. A complete Austrian flow is judged on the final relation alone.
	if l.Has(catalog.QAustriaCitizenResident) && l.Has(catalog.QAustriaPersecuted) &&
		l.Has(catalog.QAustriaLeft1933To1955) && l.Has(catalog.QAustriaRelation) {
		return classifyAustria(l)
	}

	// 4. The German-flow relation answered with the non-relative sentinel.
	if v, ok := l.Value(catalog.QGermanRelation); ok && !catalog.ParseRelation(v).IsDirect() {
		return model.ClassificationRecord{
			Eligible: false,
			Sections: []string{},
			Message:  msgGermanNotDirectRelative,
		}
	}

	// 5. Nothing answered and no route context: the questionnaire was
	// never taken.
	if len(l.Answers) == 0 && !nav.HasRoute {
		return model.ClassificationRecord{
			Eligible: false,
			Sections: []string{},
			Message:  msgCompleteQuestionnaire,
			Category: model.CategoryIncomplete,
		}
	}

	// 6. Re-check the German main flow against the positive combinations,
	// then against the negative mapping.
	if section, msg := germanClassifierVerdict(l); section != "" {
		return model.ClassificationRecord{
			Eligible: true,
			Sections: []string{section},
			Message:  msg,
		}
	}
	if msg, ok := germanClassifierNegative(l); ok {
		return model.ClassificationRecord{
			Eligible: false,
			Sections: []string{},
			Message:  msg,
		}
	}
	return model.ClassificationRecord{
		Eligible: false,
		Sections: []string{},
		Message:  msgRestartQuestionnaire,
		Category: model.CategoryRestart,
	}
}

func classifyAncestor(l Ledger) model.ClassificationRecord {
	// A negative gate answer ended the flow; report that question's own
	// explanation. First negative in ledger order wins.
	for _, a := range l.Answers {
		if a.Value != model.AnswerNo {
			continue
		}
		if msg, ok := classifierExplanations[a.QuestionID]; ok {
			return model.ClassificationRecord{
				Eligible: false,
				Sections: []string{},
				Message:  msg,
			}
		}
	}

	if l.HasNotSure() {
		return model.ClassificationRecord{
			Eligible:    true,
			Sections:    []string{model.Section5},
			Message:     msgAncestorNeedsReview,
			NeedsReview: true,
		}
	}

	if v, ok := l.Value(catalog.QAncestorRelation); ok && !catalog.ParseRelation(v).IsDirect() {
		return model.ClassificationRecord{
			Eligible: false,
			Sections: []string{},
			Message:  msgGermanNotDirectRelative,
		}
	}

	category, msg := classifierAncestorCategory(l)
	return model.ClassificationRecord{
		Eligible: true,
		Sections: []string{model.Section5},
		Message:  msg,
		Category: category,
	}
}

// classifierAncestorCategory mirrors the transition handler's category
// selection: marriage loss, then legitimation loss, then the parent and
// grandparent lines.
func classifierAncestorCategory(l Ledger) (category, msg string) {
	if l.IsYes(catalog.QGMMMLostByMarriage) || l.IsYes(catalog.QGMFMLostByMarriage) {
		return model.CategoryMarriageLoss, msgAncestorMarriageLoss
	}
	if l.IsYes(catalog.QFatherLostByLegitimation) {
		return model.CategoryLegitimationLoss, msgAncestorLegitimationLoss
	}
	earliest, _ := l.Value(catalog.QAncestorEarliest)
	switch catalog.ParseAncestor(earliest) {
	case catalog.AncestorMother, catalog.AncestorFather:
		return model.CategoryParent, msgAncestorParent
	default:
		return model.CategoryGrandparent, msgAncestorGrandparent
	}
}

func classifyNotSure(l Ledger) model.ClassificationRecord {
	// Which flow was under way decides the section reported for review.
	if l.Has(catalog.QGermanCitizenshipHeld) || l.Has(catalog.QGermanPersecutionFlight) ||
		l.Has(catalog.QGermanRelation) {
		section, _ := germanClassifierVerdict(l)
		if section == "" {
			section = model.Section15
		}
		return model.ClassificationRecord{
			Eligible:    true,
			Sections:    []string{section},
			Message:     msgGermanNeedsReview,
			NeedsReview: true,
		}
	}
	if l.Has(catalog.QAustriaCitizenResident) {
		return model.ClassificationRecord{
			Eligible:    true,
			Sections:    []string{model.Section58c},
			Message:     msgAustriaNeedsReview,
			NeedsReview: true,
		}
	}
	return model.ClassificationRecord{
		Eligible:    false,
		Sections:    []string{},
		Message:     msgGermanNeedsReview,
		NeedsReview: true,
	}
}

func classifyAustria(l Ledger) model.ClassificationRecord {
	v, _ := l.Value(catalog.QAustriaRelation)
	if catalog.ParseRelation(v).IsDirect() {
		return model.ClassificationRecord{
			Eligible: true,
			Sections: []string{model.Section58c},
			Message:  msgAustriaPositive,
		}
	}
	return model.ClassificationRecord{
		Eligible: false,
		Sections: []string{},
		Message:  msgAustriaNotDirectDescendant,
	}
}

// germanClassifierVerdict re-derives the two positive German main-flow
// combinations from the raw answers.
func germanClassifierVerdict(l Ledger) (section, msg string) {
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

// germanClassifierNegative maps the first disqualifying main-flow answer,
// earliest question first, to its fixed explanation.
func germanClassifierNegative(l Ledger) (string, bool) {
	if l.IsNo(catalog.QGermanLeftBefore1933) {
		return msgGermanNoEarlyDeparture, true
	}
	if l.IsNo(catalog.QGermanCitizenshipRevoked) && l.IsNo(catalog.QGermanPersecutionFlight) {
		return msgGermanNoRevocationNoFlight, true
	}
	if l.IsNo(catalog.QGermanCitizenshipRevoked) {
		return msgGermanNoRevocation, true
	}
	if l.IsNo(catalog.QGermanCitizenshipRenounced) {
		return msgGermanKeptCitizenship, true
	}
	return "", false
}

// germanHardNegative reports whether the ledger holds an answer that
// terminated the German main flow negatively on the spot.
func germanHardNegative(l Ledger) bool {
	if l.IsNo(catalog.QGermanLeftBefore1933) {
		return true
	}
	return l.IsNo(catalog.QGermanCitizenshipRevoked) && l.IsNo(catalog.QGermanPersecutionFlight)
}

func containsLatin(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}
