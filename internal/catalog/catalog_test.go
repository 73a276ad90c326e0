package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionIDsUnique(t *testing.T) {
	cat := New()
	seen := map[string]bool{}
	for _, q := range cat.All() {
		require.False(t, seen[q.ID], "duplicate question id %q", q.ID)
		seen[q.ID] = true
	}
	assert.Equal(t, cat.Len(), len(seen))
}

func TestEveryQuestionHasTextAndSection(t *testing.T) {
	cat := New()
	for _, q := range cat.All() {
		assert.NotEmpty(t, q.Text, "question %q has no prompt", q.ID)
		assert.NotEmpty(t, q.Section, "question %q has no section", q.ID)
		if q.AnswerType == AnswerTypeDropdown {
			assert.NotEmpty(t, q.Options, "dropdown %q has no options", q.ID)
		}
	}
}

func TestByID(t *testing.T) {
	cat := New()

	q, ok := cat.ByID(QCountry)
	require.True(t, ok)
	assert.Equal(t, QCountry, q.ID)
	assert.Equal(t, AnswerTypeDropdown, q.AnswerType)

	_, ok = cat.ByID("no_such_question")
	assert.False(t, ok)
}

func TestAustriaSectionShape(t *testing.T) {
	cat := New()

	questions := cat.BySection(SectionAustria)
	require.Len(t, questions, 4)

	want := []string{
		QAustriaCitizenResident,
		QAustriaPersecuted,
		QAustriaLeft1933To1955,
		QAustriaRelation,
	}
	for i, q := range questions {
		assert.Equal(t, want[i], q.ID)
	}
	// The relation question closes the flow.
	assert.Equal(t, QAustriaRelation, questions[3].ID)
}

func TestAncestorSectionsHaveSevenQuestions(t *testing.T) {
	cat := New()

	for _, section := range []string{
		SectionAncestorMother,
		SectionAncestorFather,
		SectionAncestorGFMF,
		SectionAncestorGFFF,
		SectionAncestorGMMM,
		SectionAncestorGMFM,
		SectionAncestorGreat,
	} {
		assert.Len(t, cat.BySection(section), 7, "section %q", section)
	}
}

func TestValidateAnswer(t *testing.T) {
	dateQ := Question{ID: "d", AnswerType: AnswerTypeDate, Required: true}

	assert.True(t, ValidateAnswer(dateQ, "1935-06-01"))
	assert.False(t, ValidateAnswer(dateQ, "01/06/1935"))
	assert.False(t, ValidateAnswer(dateQ, ""))

	dateQ.Required = false
	assert.True(t, ValidateAnswer(dateQ, ""))

	// Other answer types are not enforced here.
	assert.True(t, ValidateAnswer(Question{AnswerType: AnswerTypeYesNo}, "anything"))
}

func TestParseCountry(t *testing.T) {
	assert.Equal(t, CountryGermany, ParseCountry(OptionGermany))
	assert.Equal(t, CountryAustria, ParseCountry(OptionAustria))
	assert.Equal(t, CountryUnknown, ParseCountry("Germany"))
}

func TestParseAncestor(t *testing.T) {
	assert.Equal(t, AncestorMother, ParseAncestor(OptionMother))
	assert.Equal(t, AncestorFather, ParseAncestor(OptionFather))
	assert.Equal(t, AncestorGrandparent, ParseAncestor(OptionGrandparent))
	assert.Equal(t, AncestorGreatGrandparent, ParseAncestor(OptionGreatGrandparent))
	assert.Equal(t, AncestorUnknown, ParseAncestor(""))
}

func TestParseLineSide(t *testing.T) {
	assert.Equal(t, MothersSide, ParseLineSide(OptionMothersFather))
	assert.Equal(t, MothersSide, ParseLineSide(OptionMothersMother))
	assert.Equal(t, FathersSide, ParseLineSide(OptionFathersFather))
	assert.Equal(t, FathersSide, ParseLineSide(OptionFathersMother))
	assert.Equal(t, LineSideUnknown, ParseLineSide(OptionMother))
}

func TestParseRelation(t *testing.T) {
	assert.Equal(t, RelationChild, ParseRelation(OptionChild))
	assert.Equal(t, RelationGrandchild, ParseRelation(OptionGrandchild))
	assert.Equal(t, RelationGreatGrandchild, ParseRelation(OptionGreatGrandchild))

	// Both negative phrasings collapse to the same symbol.
	assert.Equal(t, RelationNotDirect, ParseRelation(OptionNotDirectRelative))
	assert.Equal(t, RelationNotDirect, ParseRelation(OptionNotDirectDescendant))

	assert.True(t, RelationChild.IsDirect())
	assert.True(t, RelationGreatGrandchild.IsDirect())
	assert.False(t, RelationNotDirect.IsDirect())
	assert.False(t, RelationUnknown.IsDirect())
}
