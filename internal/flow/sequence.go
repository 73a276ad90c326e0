package flow

import (
	"descentcheck/internal/catalog"
	"descentcheck/internal/model"
)

// DeriveSequence maps the ledger to the ordered list of questions that make
// up the path taken so far plus the remaining steps of the branch the
// answers commit to. It is recomputed from scratch on every change, is
// idempotent, and branches only on answers already given, never on the
// cursor.
func DeriveSequence(cat *catalog.Catalog, l Ledger) []catalog.Question {
	ids := deriveIDs(cat, l)
	// A chain may reference an id missing from the catalog; drop those
	// instead of failing.
	seq := make([]catalog.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := cat.ByID(id); ok {
			seq = append(seq, q)
		}
	}
	return seq
}

func deriveIDs(cat *catalog.Catalog, l Ledger) []string {
	ids := []string{catalog.QCountry}

	country, ok := l.Value(catalog.QCountry)
	if !ok {
		return ids
	}

	switch catalog.ParseCountry(country) {
	case catalog.CountryGermany:
		return append(ids, deriveGermanIDs(l)...)
	case catalog.CountryAustria:
		return append(ids, austriaIDs(cat)...)
	default:
		return ids
	}
}

// deriveGermanIDs handles both German sub-flows. A negative answer to the
// lead-in question abandons the main flow entirely and switches into the
// ancestor-line flow.
func deriveGermanIDs(l Ledger) []string {
	ids := []string{catalog.QGermanCitizenshipHeld}

	leadIn, ok := l.Value(catalog.QGermanCitizenshipHeld)
	if !ok {
		return ids
	}
	if leadIn == model.AnswerNo {
		return append(ids, deriveAncestorIDs(l)...)
	}

	ids = append(ids, catalog.QGermanPersecutionFlight)
	if !l.IsYes(catalog.QGermanPersecutionFlight) {
		ids = append(ids, catalog.QGermanLeftBefore1933)
	}
	ids = append(ids, catalog.QGermanCitizenshipRevoked)
	if l.IsNo(catalog.QGermanCitizenshipRevoked) && l.IsYes(catalog.QGermanPersecutionFlight) {
		ids = append(ids, catalog.QGermanCitizenshipRenounced)
	}
	return append(ids, catalog.QGermanRelation)
}

func deriveAncestorIDs(l Ledger) []string {
	ids := []string{catalog.QAncestorEarliest}

	earliest, ok := l.Value(catalog.QAncestorEarliest)
	if !ok {
		return ids
	}

	// The grandparent selection needs two more selector answers before a
	// chain is determined.
	if catalog.ParseAncestor(earliest) == catalog.AncestorGrandparent {
		ids = append(ids, catalog.QAncestorGrandparentSex)
		sex, ok := l.Value(catalog.QAncestorGrandparentSex)
		if !ok {
			return ids
		}
		switch catalog.ParseGrandparentSex(sex) {
		case catalog.GrandparentMale:
			ids = append(ids, catalog.QAncestorGFSide)
			if !l.Has(catalog.QAncestorGFSide) {
				return ids
			}
		case catalog.GrandparentFemale:
			ids = append(ids, catalog.QAncestorGMSide)
			if !l.Has(catalog.QAncestorGMSide) {
				return ids
			}
		default:
			return ids
		}
	}

	chain := selectChain(l)
	if chain == ChainNone {
		return ids
	}
	ids = append(ids, chain.QuestionIDs()...)

	// The relation question closes every chain, whichever was taken.
	return append(ids, catalog.QAncestorRelation)
}

func austriaIDs(cat *catalog.Catalog) []string {
	// The Austrian flow is flat: every catalog question tagged with the
	// Austrian section, in catalog order.
	var ids []string
	for _, q := range cat.BySection(catalog.SectionAustria) {
		ids = append(ids, q.ID)
	}
	return ids
}
