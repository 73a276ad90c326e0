package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"descentcheck/internal/catalog"
	"descentcheck/internal/model"
)

// ledgerOf builds a ledger from questionID/value pairs, cursor at the end.
func ledgerOf(pairs ...string) Ledger {
	if len(pairs)%2 != 0 {
		panic("ledgerOf needs pairs")
	}
	var answers []model.Answer
	for i := 0; i < len(pairs); i += 2 {
		answers = append(answers, model.Answer{QuestionID: pairs[i], Value: pairs[i+1]})
	}
	return Ledger{Answers: answers, CurrentStep: len(answers)}
}

func ids(seq []catalog.Question) []string {
	out := make([]string, len(seq))
	for i, q := range seq {
		out[i] = q.ID
	}
	return out
}

func TestDeriveSequence_EmptyLedger(t *testing.T) {
	cat := catalog.New()

	seq := DeriveSequence(cat, NewLedger(nil, 0))
	assert.Equal(t, []string{catalog.QCountry}, ids(seq))
}

func TestDeriveSequence_Idempotent(t *testing.T) {
	cat := catalog.New()
	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
	)

	first := ids(DeriveSequence(cat, l))
	second := ids(DeriveSequence(cat, l))
	assert.Equal(t, first, second)
}

func TestDeriveSequence_GermanMainFlow(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerNo,
	)
	assert.Equal(t, []string{
		catalog.QCountry,
		catalog.QGermanCitizenshipHeld,
		catalog.QGermanPersecutionFlight,
		catalog.QGermanLeftBefore1933,
		catalog.QGermanCitizenshipRevoked,
		catalog.QGermanRelation,
	}, ids(DeriveSequence(cat, l)))
}

func TestDeriveSequence_FlightSkipsDepartureQuestion(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerYes,
	)
	seq := ids(DeriveSequence(cat, l))
	assert.NotContains(t, seq, catalog.QGermanLeftBefore1933)
}

func TestDeriveSequence_RenouncedAskedOnlyAfterFlightAndNoRevocation(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerYes,
		catalog.QGermanCitizenshipRevoked, model.AnswerNo,
	)
	assert.Equal(t, []string{
		catalog.QCountry,
		catalog.QGermanCitizenshipHeld,
		catalog.QGermanPersecutionFlight,
		catalog.QGermanCitizenshipRevoked,
		catalog.QGermanCitizenshipRenounced,
		catalog.QGermanRelation,
	}, ids(DeriveSequence(cat, l)))

	// With the citizenship revoked there is nothing to renounce.
	l = ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerYes,
		catalog.QGermanCitizenshipRevoked, model.AnswerYes,
	)
	assert.NotContains(t, ids(DeriveSequence(cat, l)), catalog.QGermanCitizenshipRenounced)
}

func TestDeriveSequence_NoLeadInSwitchesToAncestorFlow(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerNo,
	)
	assert.Equal(t, []string{
		catalog.QCountry,
		catalog.QGermanCitizenshipHeld,
		catalog.QAncestorEarliest,
	}, ids(DeriveSequence(cat, l)))
}

func TestDeriveSequence_MotherChain(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerNo,
		catalog.QAncestorEarliest, catalog.OptionMother,
	)
	want := []string{
		catalog.QCountry,
		catalog.QGermanCitizenshipHeld,
		catalog.QAncestorEarliest,
	}
	want = append(want, ChainMother.QuestionIDs()...)
	want = append(want, catalog.QAncestorRelation)
	assert.Equal(t, want, ids(DeriveSequence(cat, l)))
}

func TestDeriveSequence_GrandparentSelectors(t *testing.T) {
	cat := catalog.New()

	// Selecting a grandparent raises the sex selector first.
	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerNo,
		catalog.QAncestorEarliest, catalog.OptionGrandparent,
	)
	seq := ids(DeriveSequence(cat, l))
	assert.Equal(t, catalog.QAncestorGrandparentSex, seq[len(seq)-1])

	// A grandfather raises the father-side selector.
	l = ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerNo,
		catalog.QAncestorEarliest, catalog.OptionGrandparent,
		catalog.QAncestorGrandparentSex, catalog.OptionGrandfather,
	)
	seq = ids(DeriveSequence(cat, l))
	assert.Equal(t, catalog.QAncestorGFSide, seq[len(seq)-1])

	// Both selectors answered commits to a single chain.
	l = ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerNo,
		catalog.QAncestorEarliest, catalog.OptionGrandparent,
		catalog.QAncestorGrandparentSex, catalog.OptionGrandfather,
		catalog.QAncestorGFSide, catalog.OptionMothersFather,
	)
	seq = ids(DeriveSequence(cat, l))
	for _, id := range ChainGrandfatherMF.QuestionIDs() {
		assert.Contains(t, seq, id)
	}
	assert.Equal(t, catalog.QAncestorRelation, seq[len(seq)-1])
}

func TestDeriveSequence_AustriaIsFlat(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(catalog.QCountry, catalog.OptionAustria)
	assert.Equal(t, []string{
		catalog.QCountry,
		catalog.QAustriaCitizenResident,
		catalog.QAustriaPersecuted,
		catalog.QAustriaLeft1933To1955,
		catalog.QAustriaRelation,
	}, ids(DeriveSequence(cat, l)))
}

func TestSelectChain(t *testing.T) {
	cases := []struct {
		name  string
		l     Ledger
		chain Chain
	}{
		{"unanswered", NewLedger(nil, 0), ChainNone},
		{"mother", ledgerOf(catalog.QAncestorEarliest, catalog.OptionMother), ChainMother},
		{"father", ledgerOf(catalog.QAncestorEarliest, catalog.OptionFather), ChainFather},
		{"great grandparent", ledgerOf(catalog.QAncestorEarliest, catalog.OptionGreatGrandparent), ChainGreatGrandparent},
		{"grandparent needs sex", ledgerOf(catalog.QAncestorEarliest, catalog.OptionGrandparent), ChainNone},
		{
			"grandmother fathers side",
			ledgerOf(
				catalog.QAncestorEarliest, catalog.OptionGrandparent,
				catalog.QAncestorGrandparentSex, catalog.OptionGrandmother,
				catalog.QAncestorGMSide, catalog.OptionFathersMother,
			),
			ChainGrandmotherFM,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.chain, selectChain(tc.l))
		})
	}
}

func TestChainQuestionIDsExistInCatalog(t *testing.T) {
	cat := catalog.New()

	chains := []Chain{
		ChainMother, ChainFather,
		ChainGrandfatherMF, ChainGrandfatherFF,
		ChainGrandmotherMM, ChainGrandmotherFM,
		ChainGreatGrandparent,
	}
	for _, c := range chains {
		require.Len(t, c.QuestionIDs(), 7, "chain %s", c)
		for _, id := range c.QuestionIDs() {
			q, ok := cat.ByID(id)
			require.True(t, ok, "chain %s question %q missing from catalog", c, id)
			assert.Equal(t, c.Section(), q.Section)
		}
	}
}

func TestClampCursor_PastEnd(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
	)
	l.CurrentStep = 40

	clamped := ClampCursor(cat, l)
	seq := DeriveSequence(cat, clamped)
	assert.Equal(t, len(seq)-1, clamped.CurrentStep)
	assert.Equal(t, l.Answers, clamped.Answers)
}

func TestClampCursor_PointedQuestionGone(t *testing.T) {
	cat := catalog.New()

	// An Austrian ledger whose country answer no longer parses: the derived
	// sequence collapses to the country question, and the cursor was
	// resting on a question that is no longer part of it.
	l := ledgerOf(
		catalog.QCountry, "",
		catalog.QAustriaCitizenResident, model.AnswerYes,
		catalog.QAustriaPersecuted, model.AnswerYes,
		catalog.QAustriaLeft1933To1955, model.AnswerYes,
	)
	l.CurrentStep = 2

	clamped := ClampCursor(cat, l)
	assert.Equal(t, 0, clamped.CurrentStep)
}

func TestClampCursor_ValidCursorUntouched(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(catalog.QCountry, catalog.OptionGermany)
	require.Equal(t, 1, l.CurrentStep)

	clamped := ClampCursor(cat, l)
	assert.Equal(t, 1, clamped.CurrentStep)
}
