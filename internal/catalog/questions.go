package catalog

// Section tags used for bulk filtering. These group questions for the
// engine and are unrelated to the legal sections of the verdict.
const (
	SectionGeneral        = "general"
	SectionGermanyMain    = "germany_main"
	SectionAncestor       = "germany_ancestor"
	SectionAncestorMother = "germany_ancestor_mother"
	SectionAncestorFather = "germany_ancestor_father"
	SectionAncestorGFMF   = "germany_ancestor_grandfather_mf"
	SectionAncestorGFFF   = "germany_ancestor_grandfather_ff"
	SectionAncestorGMMM   = "germany_ancestor_grandmother_mm"
	SectionAncestorGMFM   = "germany_ancestor_grandmother_fm"
	SectionAncestorGreat  = "germany_ancestor_great_grandparent"
	SectionAustria        = "austria"
)

// Question ids. Stable tokens: never reused, never renumbered.
const (
	QCountry = "country_selection"

	// German §116/§15 flow
	QGermanCitizenshipHeld      = "german_citizenship_held"
	QGermanPersecutionFlight    = "german_persecution_flight"
	QGermanLeftBefore1933       = "german_left_before_1933"
	QGermanCitizenshipRevoked   = "german_citizenship_revoked"
	QGermanCitizenshipRenounced = "german_citizenship_renounced"
	QGermanRelation             = "german_relation"

	// Ancestor-line (§5) flow selectors
	QAncestorEarliest       = "ancestor_earliest"
	QAncestorGrandparentSex = "ancestor_grandparent_sex"
	QAncestorGFSide         = "ancestor_grandfather_side"
	QAncestorGMSide         = "ancestor_grandmother_side"
	QAncestorRelation       = "ancestor_relation"

	// Mother chain
	QMotherGermanCitizen        = "mother_german_citizen"
	QMotherCitizenAtBirth       = "mother_citizen_at_birth"
	QMotherNeverRenounced       = "mother_never_renounced"
	QMotherBirthBefore1975      = "mother_birth_before_1975"
	QMotherParentsMarried       = "mother_parents_married"
	QMotherFatherForeign        = "mother_father_foreign"
	QMotherNoCitizenshipAtBirth = "mother_no_citizenship_at_birth"

	// Father chain
	QFatherGermanCitizen       = "father_german_citizen"
	QFatherCitizenAtBirth      = "father_citizen_at_birth"
	QFatherNeverRenounced      = "father_never_renounced"
	QFatherBirthOutOfWedlock   = "father_birth_out_of_wedlock"
	QFatherPaternityRecognized = "father_paternity_recognized"
	QFatherLostByLegitimation  = "father_lost_by_legitimation"
	QFatherBirthBefore1993     = "father_birth_before_1993"

	// Grandfather on the mother's side
	QGFMFGermanCitizen        = "grandfather_mf_german_citizen"
	QGFMFCitizenAtParentBirth = "grandfather_mf_citizen_at_parent_birth"
	QGFMFNeverRenounced       = "grandfather_mf_never_renounced"
	QGFMFParentNoCitizenship  = "grandfather_mf_parent_no_citizenship"
	QGFMFParentNotNaturalized = "grandfather_mf_parent_not_naturalized"
	QGFMFBirthAfter1949       = "grandfather_mf_birth_after_1949"
	QGFMFNoCitizenshipAtBirth = "grandfather_mf_no_citizenship_at_birth"

	// Grandfather on the father's side
	QGFFFGermanCitizen        = "grandfather_ff_german_citizen"
	QGFFFCitizenAtParentBirth = "grandfather_ff_citizen_at_parent_birth"
	QGFFFNeverRenounced       = "grandfather_ff_never_renounced"
	QGFFFParentNoCitizenship  = "grandfather_ff_parent_no_citizenship"
	QGFFFParentNotNaturalized = "grandfather_ff_parent_not_naturalized"
	QGFFFBirthAfter1949       = "grandfather_ff_birth_after_1949"
	QGFFFNoCitizenshipAtBirth = "grandfather_ff_no_citizenship_at_birth"

	// Grandmother on the mother's side
	QGMMMGermanCitizen          = "grandmother_mm_german_citizen"
	QGMMMMarriedForeign         = "grandmother_mm_married_foreign"
	QGMMMMarriageBefore1953     = "grandmother_mm_marriage_before_1953"
	QGMMMLostByMarriage         = "grandmother_mm_lost_by_marriage"
	QGMMMParentBornAfterWedding = "grandmother_mm_parent_born_after_marriage"
	QGMMMParentNoCitizenship    = "grandmother_mm_parent_no_citizenship"
	QGMMMNoCitizenshipAtBirth   = "grandmother_mm_no_citizenship_at_birth"

	// Grandmother on the father's side
	QGMFMGermanCitizen          = "grandmother_fm_german_citizen"
	QGMFMMarriedForeign         = "grandmother_fm_married_foreign"
	QGMFMMarriageBefore1953     = "grandmother_fm_marriage_before_1953"
	QGMFMLostByMarriage         = "grandmother_fm_lost_by_marriage"
	QGMFMParentBornAfterWedding = "grandmother_fm_parent_born_after_marriage"
	QGMFMParentNoCitizenship    = "grandmother_fm_parent_no_citizenship"
	QGMFMNoCitizenshipAtBirth   = "grandmother_fm_no_citizenship_at_birth"

	// Great-grandparent chain
	QGreatGermanCitizen          = "great_grandparent_german_citizen"
	QGreatCitizenAtChildBirth    = "great_grandparent_citizen_at_child_birth"
	QGreatNeverRenounced         = "great_grandparent_never_renounced"
	QGreatGrandparentNoCitizensh = "great_grandparent_grandparent_no_citizenship"
	QGreatLineNotNaturalized     = "great_grandparent_line_not_naturalized"
	QGreatBirthAfter1949         = "great_grandparent_birth_after_1949"
	QGreatNoCitizenshipAtBirth   = "great_grandparent_no_citizenship_at_birth"

	// Austrian §58c flow
	QAustriaCitizenResident = "austria_citizen_or_resident"
	QAustriaPersecuted      = "austria_persecuted"
	QAustriaLeft1933To1955  = "austria_left_1933_1955"
	QAustriaRelation        = "austria_relation"
)

// questionDefs returns the full catalog in declaration order. The order
// within each section is the order chains are asked in.
func questionDefs() []Question {
	return []Question{
		{
			ID:         QCountry,
			Text:       "מאיזו מדינה היגר אב המשפחה שלך?",
			AnswerType: AnswerTypeDropdown,
			Options:    []string{OptionGermany, OptionAustria},
			Section:    SectionGeneral,
			Required:   true,
		},

		// --- German §116/§15 flow ---
		{
			ID:         QGermanCitizenshipHeld,
			Text:       "האם אב המשפחה שלך החזיק באזרחות גרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionGermanyMain,
			Required:   true,
		},
		{
			ID:         QGermanPersecutionFlight,
			Text:       "האם אב המשפחה נמלט מגרמניה בין השנים 1933 ל-1945 בשל רדיפת המשטר הנאצי?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionGermanyMain,
			Required:   true,
		},
		{
			ID:         QGermanLeftBefore1933,
			Text:       "האם אב המשפחה עזב את גרמניה לפני שנת 1933?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionGermanyMain,
			Required:   true,
		},
		{
			ID:         QGermanCitizenshipRevoked,
			Text:       "האם אזרחותו הגרמנית של אב המשפחה נשללה על ידי המשטר הנאצי?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionGermanyMain,
			Required:   true,
		},
		{
			ID:         QGermanCitizenshipRenounced,
			Text:       "האם אב המשפחה ויתר על אזרחותו הגרמנית או איבד אותה לאחר ההגירה?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionGermanyMain,
			Required:   true,
		},
		{
			ID:         QGermanRelation,
			Text:       "מהי הקרבה המשפחתית שלך לאב המשפחה?",
			AnswerType: AnswerTypeDropdown,
			Options:    []string{OptionChild, OptionGrandchild, OptionGreatGrandchild, OptionNotDirectRelative},
			Section:    SectionGermanyMain,
			Required:   true,
		},

		// --- Ancestor-line (§5) flow selectors ---
		{
			ID:         QAncestorEarliest,
			Text:       "מיהו הדור המוקדם ביותר במשפחתך שהחזיק באזרחות גרמנית?",
			AnswerType: AnswerTypeDropdown,
			Options:    []string{OptionMother, OptionFather, OptionGrandparent, OptionGreatGrandparent},
			Section:    SectionAncestor,
			Required:   true,
		},
		{
			ID:         QAncestorGrandparentSex,
			Text:       "האם מדובר בסבא או בסבתא?",
			AnswerType: AnswerTypeDropdown,
			Options:    []string{OptionGrandfather, OptionGrandmother},
			Section:    SectionAncestor,
			Required:   true,
		},
		{
			ID:         QAncestorGFSide,
			Text:       "האם הסבא הוא אביה של אמך או אביו של אביך?",
			AnswerType: AnswerTypeDropdown,
			Options:    []string{OptionMothersFather, OptionFathersFather},
			Section:    SectionAncestor,
			Required:   true,
		},
		{
			ID:         QAncestorGMSide,
			Text:       "האם הסבתא היא אמה של אמך או אמו של אביך?",
			AnswerType: AnswerTypeDropdown,
			Options:    []string{OptionMothersMother, OptionFathersMother},
			Section:    SectionAncestor,
			Required:   true,
		},

		// --- Mother chain ---
		{
			ID:         QMotherGermanCitizen,
			Text:       "האם אמך החזיקה באזרחות גרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorMother,
			Required:   true,
		},
		{
			ID:         QMotherCitizenAtBirth,
			Text:       "האם אמך הייתה אזרחית גרמניה במועד לידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorMother,
			Required:   true,
		},
		{
			ID:         QMotherNeverRenounced,
			Text:       "האם אמך מעולם לא ויתרה מרצונה על אזרחותה הגרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorMother,
			Required:   true,
		},
		{
			ID:         QMotherBirthBefore1975,
			Text:       "האם נולדת לפני 1 בינואר 1975?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorMother,
			Required:   true,
		},
		{
			ID:         QMotherParentsMarried,
			Text:       "האם הוריך היו נשואים במועד לידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorMother,
			Required:   true,
		},
		{
			ID:         QMotherFatherForeign,
			Text:       "האם אביך היה אזרח זר במועד לידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorMother,
			Required:   true,
		},
		{
			ID:         QMotherNoCitizenshipAtBirth,
			Text:       "האם לא קיבלת אזרחות גרמנית בלידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorMother,
			Required:   true,
		},

		// --- Father chain ---
		{
			ID:         QFatherGermanCitizen,
			Text:       "האם אביך החזיק באזרחות גרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorFather,
			Required:   true,
		},
		{
			ID:         QFatherCitizenAtBirth,
			Text:       "האם אביך היה אזרח גרמניה במועד לידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorFather,
			Required:   true,
		},
		{
			ID:         QFatherNeverRenounced,
			Text:       "האם אביך מעולם לא ויתר מרצונו על אזרחותו הגרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorFather,
			Required:   true,
		},
		{
			ID:         QFatherBirthOutOfWedlock,
			Text:       "האם נולדת מחוץ לנישואין?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorFather,
			Required:   true,
		},
		{
			ID:         QFatherPaternityRecognized,
			Text:       "האם אביך הכיר באבהותו על פי דין?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorFather,
			Required:   true,
		},
		{
			ID:         QFatherLostByLegitimation,
			Text:       "האם לא קיבלת אזרחות גרמנית למרות ההכרה באבהות?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorFather,
			Required:   true,
		},
		{
			ID:         QFatherBirthBefore1993,
			Text:       "האם נולדת לפני 1 ביולי 1993?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorFather,
			Required:   true,
		},

		// --- Grandfather, mother's side ---
		{
			ID:         QGFMFGermanCitizen,
			Text:       "האם סבך מצד אמך החזיק באזרחות גרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFMF,
			Required:   true,
		},
		{
			ID:         QGFMFCitizenAtParentBirth,
			Text:       "האם סבך היה אזרח גרמניה במועד לידת אמך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFMF,
			Required:   true,
		},
		{
			ID:         QGFMFNeverRenounced,
			Text:       "האם סבך מעולם לא ויתר מרצונו על אזרחותו הגרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFMF,
			Required:   true,
		},
		{
			ID:         QGFMFParentNoCitizenship,
			Text:       "האם אמך לא קיבלה אזרחות גרמנית בלידתה?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFMF,
			Required:   true,
		},
		{
			ID:         QGFMFParentNotNaturalized,
			Text:       "האם אמך לא התאזרחה במדינה אחרת לפני לידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFMF,
			Required:   true,
		},
		{
			ID:         QGFMFBirthAfter1949,
			Text:       "האם נולדת אחרי 23 במאי 1949?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFMF,
			Required:   true,
		},
		{
			ID:         QGFMFNoCitizenshipAtBirth,
			Text:       "האם לא קיבלת אזרחות גרמנית בלידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFMF,
			Required:   true,
		},

		// --- Grandfather, father's side ---
		{
			ID:         QGFFFGermanCitizen,
			Text:       "האם סבך מצד אביך החזיק באזרחות גרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFFF,
			Required:   true,
		},
		{
			ID:         QGFFFCitizenAtParentBirth,
			Text:       "האם סבך היה אזרח גרמניה במועד לידת אביך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFFF,
			Required:   true,
		},
		{
			ID:         QGFFFNeverRenounced,
			Text:       "האם סבך מעולם לא ויתר מרצונו על אזרחותו הגרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFFF,
			Required:   true,
		},
		{
			ID:         QGFFFParentNoCitizenship,
			Text:       "האם אביך לא קיבל אזרחות גרמנית בלידתו?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFFF,
			Required:   true,
		},
		{
			ID:         QGFFFParentNotNaturalized,
			Text:       "האם אביך לא התאזרח במדינה אחרת לפני לידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFFF,
			Required:   true,
		},
		{
			ID:         QGFFFBirthAfter1949,
			Text:       "האם נולדת אחרי 23 במאי 1949?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFFF,
			Required:   true,
		},
		{
			ID:         QGFFFNoCitizenshipAtBirth,
			Text:       "האם לא קיבלת אזרחות גרמנית בלידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGFFF,
			Required:   true,
		},

		// --- Grandmother, mother's side ---
		{
			ID:         QGMMMGermanCitizen,
			Text:       "האם סבתך מצד אמך החזיקה באזרחות גרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMMM,
			Required:   true,
		},
		{
			ID:         QGMMMMarriedForeign,
			Text:       "האם סבתך נישאה לאזרח זר?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMMM,
			Required:   true,
		},
		{
			ID:         QGMMMMarriageBefore1953,
			Text:       "האם הנישואין נערכו לפני 1 באפריל 1953?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMMM,
			Required:   true,
		},
		{
			ID:         QGMMMLostByMarriage,
			Text:       "האם סבתך איבדה את אזרחותה הגרמנית עקב הנישואין?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMMM,
			Required:   true,
		},
		{
			ID:         QGMMMParentBornAfterWedding,
			Text:       "האם אמך נולדה לאחר הנישואין?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMMM,
			Required:   true,
		},
		{
			ID:         QGMMMParentNoCitizenship,
			Text:       "האם אמך לא קיבלה אזרחות גרמנית בלידתה?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMMM,
			Required:   true,
		},
		{
			ID:         QGMMMNoCitizenshipAtBirth,
			Text:       "האם לא קיבלת אזרחות גרמנית בלידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMMM,
			Required:   true,
		},

		// --- Grandmother, father's side ---
		{
			ID:         QGMFMGermanCitizen,
			Text:       "האם סבתך מצד אביך החזיקה באזרחות גרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMFM,
			Required:   true,
		},
		{
			ID:         QGMFMMarriedForeign,
			Text:       "האם סבתך נישאה לאזרח זר?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMFM,
			Required:   true,
		},
		{
			ID:         QGMFMMarriageBefore1953,
			Text:       "האם הנישואין נערכו לפני 1 באפריל 1953?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMFM,
			Required:   true,
		},
		{
			ID:         QGMFMLostByMarriage,
			Text:       "האם סבתך איבדה את אזרחותה הגרמנית עקב הנישואין?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMFM,
			Required:   true,
		},
		{
			ID:         QGMFMParentBornAfterWedding,
			Text:       "האם אביך נולד לאחר הנישואין?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMFM,
			Required:   true,
		},
		{
			ID:         QGMFMParentNoCitizenship,
			Text:       "האם אביך לא קיבל אזרחות גרמנית בלידתו?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMFM,
			Required:   true,
		},
		{
			ID:         QGMFMNoCitizenshipAtBirth,
			Text:       "האם לא קיבלת אזרחות גרמנית בלידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGMFM,
			Required:   true,
		},

		// --- Great-grandparent chain ---
		{
			ID:         QGreatGermanCitizen,
			Text:       "האם הסבא רבא או הסבתא רבתא שלך החזיקו באזרחות גרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGreat,
			Required:   true,
		},
		{
			ID:         QGreatCitizenAtChildBirth,
			Text:       "האם הם היו אזרחי גרמניה במועד לידת הסב או הסבתא שלך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGreat,
			Required:   true,
		},
		{
			ID:         QGreatNeverRenounced,
			Text:       "האם הם מעולם לא ויתרו מרצונם על אזרחותם הגרמנית?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGreat,
			Required:   true,
		},
		{
			ID:         QGreatGrandparentNoCitizensh,
			Text:       "האם הסב או הסבתא שלך לא קיבלו אזרחות גרמנית בלידתם?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGreat,
			Required:   true,
		},
		{
			ID:         QGreatLineNotNaturalized,
			Text:       "האם איש משרשרת הדורות לא התאזרח במדינה אחרת לפני לידת הדור הבא?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGreat,
			Required:   true,
		},
		{
			ID:         QGreatBirthAfter1949,
			Text:       "האם נולדת אחרי 23 במאי 1949?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGreat,
			Required:   true,
		},
		{
			ID:         QGreatNoCitizenshipAtBirth,
			Text:       "האם לא קיבלת אזרחות גרמנית בלידתך?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAncestorGreat,
			Required:   true,
		},

		// Asked after every ancestor chain, regardless of which was taken.
		{
			ID:         QAncestorRelation,
			Text:       "מהי הקרבה המשפחתית שלך לאותו אב משפחה?",
			AnswerType: AnswerTypeDropdown,
			Options:    []string{OptionChild, OptionGrandchild, OptionGreatGrandchild, OptionNotDirectRelative},
			Section:    SectionAncestor,
			Required:   true,
		},

		// --- Austrian §58c flow ---
		{
			ID:         QAustriaCitizenResident,
			Text:       "האם אב המשפחה היה אזרח אוסטריה או תושב קבע באוסטריה לפני שנת 1955?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAustria,
			Required:   true,
		},
		{
			ID:         QAustriaPersecuted,
			Text:       "האם אב המשפחה נרדף על ידי המשטר הנאצי או חשש מרדיפה כזו?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAustria,
			Required:   true,
		},
		{
			ID:         QAustriaLeft1933To1955,
			Text:       "האם אב המשפחה עזב את אוסטריה בין השנים 1933 ל-1955?",
			AnswerType: AnswerTypeYesNo,
			Section:    SectionAustria,
			Required:   true,
		},
		{
			ID:         QAustriaRelation,
			Text:       "מהי הקרבה המשפחתית שלך לאב המשפחה?",
			AnswerType: AnswerTypeDropdown,
			Options:    []string{OptionChild, OptionGrandchild, OptionGreatGrandchild, OptionNotDirectDescendant},
			Section:    SectionAustria,
			Required:   true,
		},
	}
}
