package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"descentcheck/internal/catalog"
	"descentcheck/internal/model"
)

func TestClassify_EmptyLedgerNoRoute(t *testing.T) {
	cat := catalog.New()

	rec := Classify(cat, NewLedger(nil, 0), NavContext{})
	assert.False(t, rec.Eligible)
	assert.Equal(t, model.CategoryIncomplete, rec.Category)
	assert.Equal(t, msgCompleteQuestionnaire, rec.Message)
}

func TestClassify_EmptyLedgerWithRoute(t *testing.T) {
	cat := catalog.New()

	rec := Classify(cat, NewLedger(nil, 0), NavContext{HasRoute: true})
	assert.False(t, rec.Eligible)
	assert.Equal(t, model.CategoryRestart, rec.Category)
	assert.Equal(t, msgRestartQuestionnaire, rec.Message)
}

func TestClassify_RevokedCitizenship(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerNo,
		catalog.QGermanLeftBefore1933, model.AnswerYes,
		catalog.QGermanCitizenshipRevoked, model.AnswerYes,
		catalog.QGermanRelation, catalog.OptionChild,
	)
	rec := Classify(cat, l, NavContext{HasRoute: true})
	assert.True(t, rec.Eligible)
	assert.Equal(t, []string{model.Section116}, rec.Sections)
	assert.Equal(t, msgGermanPositive116, rec.Message)
}

func TestClassify_FlightAndRenounced(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerYes,
		catalog.QGermanCitizenshipRevoked, model.AnswerNo,
		catalog.QGermanCitizenshipRenounced, model.AnswerYes,
		catalog.QGermanRelation, catalog.OptionGrandchild,
	)
	rec := Classify(cat, l, NavContext{HasRoute: true})
	assert.True(t, rec.Eligible)
	assert.Equal(t, []string{model.Section15}, rec.Sections)
}

func TestClassify_NegativeMapping(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerNo,
		catalog.QGermanLeftBefore1933, model.AnswerNo,
	)
	rec := Classify(cat, l, NavContext{HasRoute: true})
	assert.False(t, rec.Eligible)
	assert.Equal(t, msgGermanNoEarlyDeparture, rec.Message)
}

func TestClassify_HardNegativeBeatsNotSure(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerNotSure,
		catalog.QGermanPersecutionFlight, model.AnswerNo,
		catalog.QGermanLeftBefore1933, model.AnswerNo,
	)
	rec := Classify(cat, l, NavContext{HasRoute: true})
	assert.False(t, rec.Eligible)
	assert.False(t, rec.NeedsReview)
	assert.Equal(t, msgGermanNoEarlyDeparture, rec.Message)
}

func TestClassify_NotSureNeedsReview(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerNotSure,
		catalog.QGermanLeftBefore1933, model.AnswerYes,
		catalog.QGermanCitizenshipRevoked, model.AnswerNo,
		catalog.QGermanRelation, catalog.OptionChild,
	)
	rec := Classify(cat, l, NavContext{HasRoute: true})
	assert.True(t, rec.Eligible)
	assert.True(t, rec.NeedsReview)
	assert.Equal(t, []string{model.Section15}, rec.Sections)
}

func TestClassify_AncestorGateNegative(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerNo,
		catalog.QAncestorEarliest, catalog.OptionMother,
		catalog.QMotherGermanCitizen, model.AnswerNo,
	)
	rec := Classify(cat, l, NavContext{HasRoute: true})
	assert.False(t, rec.Eligible)
	assert.Equal(t, classifierExplanations[catalog.QMotherGermanCitizen], rec.Message)
}

func TestClassify_AncestorNotSure(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerNo,
		catalog.QAncestorEarliest, catalog.OptionMother,
		catalog.QMotherGermanCitizen, model.AnswerNotSure,
	)
	rec := Classify(cat, l, NavContext{HasRoute: true})
	assert.True(t, rec.Eligible)
	assert.True(t, rec.NeedsReview)
	assert.Equal(t, []string{model.Section5}, rec.Sections)
}

func TestClassify_AncestorCategories(t *testing.T) {
	cat := catalog.New()

	base := []string{
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerNo,
	}
	chainAnswers := func(c Chain) []string {
		var out []string
		for _, id := range c.QuestionIDs() {
			out = append(out, id, model.AnswerYes)
		}
		return out
	}

	t.Run("parent line", func(t *testing.T) {
		pairs := append([]string{}, base...)
		pairs = append(pairs, catalog.QAncestorEarliest, catalog.OptionMother)
		pairs = append(pairs, chainAnswers(ChainMother)...)
		pairs = append(pairs, catalog.QAncestorRelation, catalog.OptionChild)

		rec := Classify(cat, ledgerOf(pairs...), NavContext{HasRoute: true})
		assert.True(t, rec.Eligible)
		assert.Equal(t, model.CategoryParent, rec.Category)
	})

	t.Run("legitimation loss", func(t *testing.T) {
		pairs := append([]string{}, base...)
		pairs = append(pairs, catalog.QAncestorEarliest, catalog.OptionFather)
		pairs = append(pairs, chainAnswers(ChainFather)...)
		pairs = append(pairs, catalog.QAncestorRelation, catalog.OptionChild)

		rec := Classify(cat, ledgerOf(pairs...), NavContext{HasRoute: true})
		assert.Equal(t, model.CategoryLegitimationLoss, rec.Category)
	})

	t.Run("marriage loss", func(t *testing.T) {
		pairs := append([]string{}, base...)
		pairs = append(pairs,
			catalog.QAncestorEarliest, catalog.OptionGrandparent,
			catalog.QAncestorGrandparentSex, catalog.OptionGrandmother,
			catalog.QAncestorGMSide, catalog.OptionFathersMother,
		)
		pairs = append(pairs, chainAnswers(ChainGrandmotherFM)...)
		pairs = append(pairs, catalog.QAncestorRelation, catalog.OptionGrandchild)

		rec := Classify(cat, ledgerOf(pairs...), NavContext{HasRoute: true})
		assert.Equal(t, model.CategoryMarriageLoss, rec.Category)
	})

	t.Run("grandparent line", func(t *testing.T) {
		pairs := append([]string{}, base...)
		pairs = append(pairs,
			catalog.QAncestorEarliest, catalog.OptionGrandparent,
			catalog.QAncestorGrandparentSex, catalog.OptionGrandfather,
			catalog.QAncestorGFSide, catalog.OptionMothersFather,
		)
		pairs = append(pairs, chainAnswers(ChainGrandfatherMF)...)
		pairs = append(pairs, catalog.QAncestorRelation, catalog.OptionGrandchild)

		rec := Classify(cat, ledgerOf(pairs...), NavContext{HasRoute: true})
		assert.Equal(t, model.CategoryGrandparent, rec.Category)
	})
}

func TestClassify_Austria(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionAustria,
		catalog.QAustriaCitizenResident, model.AnswerNo,
		catalog.QAustriaPersecuted, model.AnswerYes,
		catalog.QAustriaLeft1933To1955, model.AnswerNo,
		catalog.QAustriaRelation, catalog.OptionGreatGrandchild,
	)
	rec := Classify(cat, l, NavContext{HasRoute: true})
	assert.True(t, rec.Eligible)
	assert.Equal(t, []string{model.Section58c}, rec.Sections)

	l = ledgerOf(
		catalog.QCountry, catalog.OptionAustria,
		catalog.QAustriaCitizenResident, model.AnswerYes,
		catalog.QAustriaPersecuted, model.AnswerYes,
		catalog.QAustriaLeft1933To1955, model.AnswerYes,
		catalog.QAustriaRelation, catalog.OptionNotDirectDescendant,
	)
	rec = Classify(cat, l, NavContext{HasRoute: true})
	assert.False(t, rec.Eligible)
	assert.Equal(t, msgAustriaNotDirectDescendant, rec.Message)
}

func TestClassify_ForwardedExplanationPreferred(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerNo,
		catalog.QGermanLeftBefore1933, model.AnswerNo,
	)

	forwarded := "הסבר שהועבר מהמעבר הקודם"
	rec := Classify(cat, l, NavContext{Explanation: forwarded, HasRoute: true})
	assert.Equal(t, forwarded, rec.Message)

	// The verdict itself still comes from the ledger.
	assert.False(t, rec.Eligible)
}

func TestClassify_LatinExplanationIgnored(t *testing.T) {
	cat := catalog.New()

	l := ledgerOf(
		catalog.QCountry, catalog.OptionGermany,
		catalog.QGermanCitizenshipHeld, model.AnswerYes,
		catalog.QGermanPersecutionFlight, model.AnswerNo,
		catalog.QGermanLeftBefore1933, model.AnswerNo,
	)

	rec := Classify(cat, l, NavContext{Explanation: "[object Object]", HasRoute: true})
	assert.Equal(t, msgGermanNoEarlyDeparture, rec.Message)
}

func TestContainsLatin(t *testing.T) {
	assert.True(t, containsLatin("undefined"))
	assert.True(t, containsLatin("שגיאה: error"))
	assert.False(t, containsLatin("טקסט בעברית בלבד"))
	assert.False(t, containsLatin("123 ,.!"))
	require.False(t, containsLatin(""))
}
