package catalog

// Dropdown option strings as they appear in the UI. Branch logic never
// compares against these directly; it goes through the typed parsers below
// so locale text stays at the boundary.
const (
	OptionGermany = "גרמניה"
	OptionAustria = "אוסטריה"

	OptionMother           = "אמא"
	OptionFather           = "אבא"
	OptionGrandparent      = "סבא או סבתא"
	OptionGreatGrandparent = "סבא רבא או סבתא רבתא"

	OptionGrandfather = "סבא"
	OptionGrandmother = "סבתא"

	OptionMothersFather = "אבא של אמא"
	OptionFathersFather = "אבא של אבא"
	OptionMothersMother = "אמא של אמא"
	OptionFathersMother = "אמא של אבא"

	OptionChild           = "ילד/ה"
	OptionGrandchild      = "נכד/ה"
	OptionGreatGrandchild = "נין/ה"

	// The German-flow and Austrian-flow relation questions use different
	// phrasings for the negative option.
	OptionNotDirectRelative   = "לא קרוב משפחה ישיר"
	OptionNotDirectDescendant = "לא צאצא ישיר"
)

// CountryOption is the typed value of the country-selection answer
type CountryOption int

const (
	CountryUnknown CountryOption = iota
	CountryGermany
	CountryAustria
)

// ParseCountry maps the country-selection option string to its symbol.
func ParseCountry(value string) CountryOption {
	switch value {
	case OptionGermany:
		return CountryGermany
	case OptionAustria:
		return CountryAustria
	default:
		return CountryUnknown
	}
}

// AncestorOption is the typed value of the earliest-ancestor answer
type AncestorOption int

const (
	AncestorUnknown AncestorOption = iota
	AncestorMother
	AncestorFather
	AncestorGrandparent
	AncestorGreatGrandparent
)

// ParseAncestor maps the earliest-ancestor option string to its symbol.
func ParseAncestor(value string) AncestorOption {
	switch value {
	case OptionMother:
		return AncestorMother
	case OptionFather:
		return AncestorFather
	case OptionGrandparent:
		return AncestorGrandparent
	case OptionGreatGrandparent:
		return AncestorGreatGrandparent
	default:
		return AncestorUnknown
	}
}

// GrandparentSex is the typed value of the grandparent-sex answer
type GrandparentSex int

const (
	GrandparentSexUnknown GrandparentSex = iota
	GrandparentMale
	GrandparentFemale
)

// ParseGrandparentSex maps the grandparent-sex option string to its symbol.
func ParseGrandparentSex(value string) GrandparentSex {
	switch value {
	case OptionGrandfather:
		return GrandparentMale
	case OptionGrandmother:
		return GrandparentFemale
	default:
		return GrandparentSexUnknown
	}
}

// LineSide says which parent's parent the selected grandparent is
type LineSide int

const (
	LineSideUnknown LineSide = iota
	MothersSide
	FathersSide
)

// ParseLineSide maps either side-selector option string to its symbol.
func ParseLineSide(value string) LineSide {
	switch value {
	case OptionMothersFather, OptionMothersMother:
		return MothersSide
	case OptionFathersFather, OptionFathersMother:
		return FathersSide
	default:
		return LineSideUnknown
	}
}

// RelationOption is the typed value of the final relation answers
type RelationOption int

const (
	RelationUnknown RelationOption = iota
	RelationChild
	RelationGrandchild
	RelationGreatGrandchild
	RelationNotDirect
)

// ParseRelation maps a relation option string to its symbol. Both the
// German-flow and Austrian-flow negative phrasings map to RelationNotDirect.
func ParseRelation(value string) RelationOption {
	switch value {
	case OptionChild:
		return RelationChild
	case OptionGrandchild:
		return RelationGrandchild
	case OptionGreatGrandchild:
		return RelationGreatGrandchild
	case OptionNotDirectRelative, OptionNotDirectDescendant:
		return RelationNotDirect
	default:
		return RelationUnknown
	}
}

// IsDirect reports whether the relation counts as a direct descendant.
func (r RelationOption) IsDirect() bool {
	switch r {
	case RelationChild, RelationGrandchild, RelationGreatGrandchild:
		return true
	default:
		return false
	}
}
