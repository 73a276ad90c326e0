package flow

import "descentcheck/internal/catalog"

// Chain names one ancestor-relation path through the §5 flow. Each chain is
// a fixed, hand-authored ordered list of question ids; the order matches
// catalog declaration order exactly.
type Chain int

const (
	ChainNone Chain = iota
	ChainMother
	ChainFather
	ChainGrandfatherMF // mother's father
	ChainGrandfatherFF // father's father
	ChainGrandmotherMM // mother's mother
	ChainGrandmotherFM // father's mother
	ChainGreatGrandparent
)

func (c Chain) String() string {
	switch c {
	case ChainMother:
		return "mother"
	case ChainFather:
		return "father"
	case ChainGrandfatherMF:
		return "grandfather_mf"
	case ChainGrandfatherFF:
		return "grandfather_ff"
	case ChainGrandmotherMM:
		return "grandmother_mm"
	case ChainGrandmotherFM:
		return "grandmother_fm"
	case ChainGreatGrandparent:
		return "great_grandparent"
	default:
		return "none"
	}
}

// QuestionIDs returns the chain's question ids in ask order.
func (c Chain) QuestionIDs() []string {
	switch c {
	case ChainMother:
		return []string{
			catalog.QMotherGermanCitizen,
			catalog.QMotherCitizenAtBirth,
			catalog.QMotherNeverRenounced,
			catalog.QMotherBirthBefore1975,
			catalog.QMotherParentsMarried,
			catalog.QMotherFatherForeign,
			catalog.QMotherNoCitizenshipAtBirth,
		}
	case ChainFather:
		return []string{
			catalog.QFatherGermanCitizen,
			catalog.QFatherCitizenAtBirth,
			catalog.QFatherNeverRenounced,
			catalog.QFatherBirthOutOfWedlock,
			catalog.QFatherPaternityRecognized,
			catalog.QFatherLostByLegitimation,
			catalog.QFatherBirthBefore1993,
		}
	case ChainGrandfatherMF:
		return []string{
			catalog.QGFMFGermanCitizen,
			catalog.QGFMFCitizenAtParentBirth,
			catalog.QGFMFNeverRenounced,
			catalog.QGFMFParentNoCitizenship,
			catalog.QGFMFParentNotNaturalized,
			catalog.QGFMFBirthAfter1949,
			catalog.QGFMFNoCitizenshipAtBirth,
		}
	case ChainGrandfatherFF:
		return []string{
			catalog.QGFFFGermanCitizen,
			catalog.QGFFFCitizenAtParentBirth,
			catalog.QGFFFNeverRenounced,
			catalog.QGFFFParentNoCitizenship,
			catalog.QGFFFParentNotNaturalized,
			catalog.QGFFFBirthAfter1949,
			catalog.QGFFFNoCitizenshipAtBirth,
		}
	case ChainGrandmotherMM:
		return []string{
			catalog.QGMMMGermanCitizen,
			catalog.QGMMMMarriedForeign,
			catalog.QGMMMMarriageBefore1953,
			catalog.QGMMMLostByMarriage,
			catalog.QGMMMParentBornAfterWedding,
			catalog.QGMMMParentNoCitizenship,
			catalog.QGMMMNoCitizenshipAtBirth,
		}
	case ChainGrandmotherFM:
		return []string{
			catalog.QGMFMGermanCitizen,
			catalog.QGMFMMarriedForeign,
			catalog.QGMFMMarriageBefore1953,
			catalog.QGMFMLostByMarriage,
			catalog.QGMFMParentBornAfterWedding,
			catalog.QGMFMParentNoCitizenship,
			catalog.QGMFMNoCitizenshipAtBirth,
		}
	case ChainGreatGrandparent:
		return []string{
			catalog.QGreatGermanCitizen,
			catalog.QGreatCitizenAtChildBirth,
			catalog.QGreatNeverRenounced,
			catalog.QGreatGrandparentNoCitizensh,
			catalog.QGreatLineNotNaturalized,
			catalog.QGreatBirthAfter1949,
			catalog.QGreatNoCitizenshipAtBirth,
		}
	default:
		return nil
	}
}

// Section returns the catalog section tag the chain's questions carry.
func (c Chain) Section() string {
	switch c {
	case ChainMother:
		return catalog.SectionAncestorMother
	case ChainFather:
		return catalog.SectionAncestorFather
	case ChainGrandfatherMF:
		return catalog.SectionAncestorGFMF
	case ChainGrandfatherFF:
		return catalog.SectionAncestorGFFF
	case ChainGrandmotherMM:
		return catalog.SectionAncestorGMMM
	case ChainGrandmotherFM:
		return catalog.SectionAncestorGMFM
	case ChainGreatGrandparent:
		return catalog.SectionAncestorGreat
	default:
		return ""
	}
}

// selectChain resolves which ancestor chain the ledger has branched into,
// or ChainNone while the selector questions are still unanswered. The
// grandparent selection branches twice: by grandparent sex, then by which
// parent's parent.
func selectChain(l Ledger) Chain {
	earliest, ok := l.Value(catalog.QAncestorEarliest)
	if !ok {
		return ChainNone
	}
	switch catalog.ParseAncestor(earliest) {
	case catalog.AncestorMother:
		return ChainMother
	case catalog.AncestorFather:
		return ChainFather
	case catalog.AncestorGreatGrandparent:
		return ChainGreatGrandparent
	case catalog.AncestorGrandparent:
		sex, ok := l.Value(catalog.QAncestorGrandparentSex)
		if !ok {
			return ChainNone
		}
		switch catalog.ParseGrandparentSex(sex) {
		case catalog.GrandparentMale:
			side, ok := l.Value(catalog.QAncestorGFSide)
			if !ok {
				return ChainNone
			}
			switch catalog.ParseLineSide(side) {
			case catalog.MothersSide:
				return ChainGrandfatherMF
			case catalog.FathersSide:
				return ChainGrandfatherFF
			}
			return ChainNone
		case catalog.GrandparentFemale:
			side, ok := l.Value(catalog.QAncestorGMSide)
			if !ok {
				return ChainNone
			}
			switch catalog.ParseLineSide(side) {
			case catalog.MothersSide:
				return ChainGrandmotherMM
			case catalog.FathersSide:
				return ChainGrandmotherFM
			}
			return ChainNone
		}
		return ChainNone
	default:
		return ChainNone
	}
}
