package flow

import "descentcheck/internal/catalog"

// terminationExplanations maps every ancestor-line gate question to the
// explanation shown when it is answered negatively. The classifier keeps
// its own copy of this table (classifierExplanations); the two are kept
// separate on purpose and a test asserts they never drift apart.
var terminationExplanations = map[string]string{
	// Mother chain
	catalog.QMotherGermanCitizen:        "מסלול הזכאות לפי סעיף 5 מבוסס על אם שהחזיקה באזרחות גרמנית; מאחר שאמך לא החזיקה באזרחות גרמנית, לא קיימת זכאות במסלול זה.",
	catalog.QMotherCitizenAtBirth:       "מאחר שאמך לא הייתה אזרחית גרמניה במועד לידתך, האזרחות לא יכלה לעבור אליך מכוחה.",
	catalog.QMotherNeverRenounced:       "ויתור מרצון על האזרחות הגרמנית לפני לידתך מנתק את שרשרת הזכאות לפי סעיף 5.",
	catalog.QMotherBirthBefore1975:      "מי שנולד לאם גרמנייה לאחר 1 בינואר 1975 קיבל את האזרחות בלידה, ולכן מסלול ההצהרה לפי סעיף 5 אינו רלוונטי.",
	catalog.QMotherParentsMarried:       "מסלול זה חל על מי שנולד בנישואין לאם גרמנייה ולאב זר; לידה מחוץ לנישואין נבחנת במסלול אחר.",
	catalog.QMotherFatherForeign:        "אם אביך היה אזרח גרמניה, האזרחות עברה אליך מכוחו ואין צורך במסלול ההצהרה.",
	catalog.QMotherNoCitizenshipAtBirth: "מי שקיבל אזרחות גרמנית בלידתו אינו זקוק למסלול ההצהרה לפי סעיף 5.",

	// Father chain
	catalog.QFatherGermanCitizen:       "מסלול הזכאות לפי סעיף 5 מבוסס על אב שהחזיק באזרחות גרמנית; מאחר שאביך לא החזיק באזרחות גרמנית, לא קיימת זכאות במסלול זה.",
	catalog.QFatherCitizenAtBirth:      "מאחר שאביך לא היה אזרח גרמניה במועד לידתך, האזרחות לא יכלה לעבור אליך מכוחו.",
	catalog.QFatherNeverRenounced:      "ויתור מרצון על האזרחות הגרמנית לפני לידתך מנתק את שרשרת הזכאות לפי סעיף 5.",
	catalog.QFatherBirthOutOfWedlock:   "מי שנולד בנישואין לאב גרמני קיבל את האזרחות בלידה, ולכן מסלול ההצהרה לפי סעיף 5 אינו רלוונטי.",
	catalog.QFatherPaternityRecognized: "ללא הכרה באבהות על פי דין לא ניתן לבסס את שרשרת ההתאזרחות מכוח האב.",
	catalog.QFatherLostByLegitimation:  "מי שקיבל אזרחות גרמנית בעקבות ההכרה באבהות אינו זקוק למסלול ההצהרה.",
	catalog.QFatherBirthBefore1993:     "מי שנולד לאב גרמני לאחר 1 ביולי 1993 קיבל את האזרחות בלידה, ולכן מסלול ההצהרה לפי סעיף 5 אינו רלוונטי.",

	// Grandfather, mother's side
	catalog.QGFMFGermanCitizen:        "מסלול הזכאות דרך הסב מבוסס על סב שהחזיק באזרחות גרמנית; מאחר שסבך לא החזיק באזרחות גרמנית, לא קיימת זכאות במסלול זה.",
	catalog.QGFMFCitizenAtParentBirth: "מאחר שסבך לא היה אזרח גרמניה במועד לידת אמך, האזרחות לא יכלה לעבור לדור הבא.",
	catalog.QGFMFNeverRenounced:       "ויתור מרצון של הסב על אזרחותו הגרמנית מנתק את שרשרת הזכאות.",
	catalog.QGFMFParentNoCitizenship:  "אם אמך קיבלה אזרחות גרמנית בלידתה, הזכאות נבחנת במסלול ההורה הישיר ולא דרך הסב.",
	catalog.QGFMFParentNotNaturalized: "התאזרחות של אמך במדינה אחרת לפני לידתך ניתקה את שרשרת האזרחות הגרמנית.",
	catalog.QGFMFBirthAfter1949:       "מסלול ההצהרה לפי סעיף 5 חל רק על מי שנולד לאחר כניסתו לתוקף של חוק היסוד ב-23 במאי 1949.",
	catalog.QGFMFNoCitizenshipAtBirth: "מי שקיבל אזרחות גרמנית בלידתו אינו זקוק למסלול ההצהרה לפי סעיף 5.",

	// Grandfather, father's side
	catalog.QGFFFGermanCitizen:        "מסלול הזכאות דרך הסב מבוסס על סב שהחזיק באזרחות גרמנית; מאחר שסבך לא החזיק באזרחות גרמנית, לא קיימת זכאות במסלול זה.",
	catalog.QGFFFCitizenAtParentBirth: "מאחר שסבך לא היה אזרח גרמניה במועד לידת אביך, האזרחות לא יכלה לעבור לדור הבא.",
	catalog.QGFFFNeverRenounced:       "ויתור מרצון של הסב על אזרחותו הגרמנית מנתק את שרשרת הזכאות.",
	catalog.QGFFFParentNoCitizenship:  "אם אביך קיבל אזרחות גרמנית בלידתו, הזכאות נבחנת במסלול ההורה הישיר ולא דרך הסב.",
	catalog.QGFFFParentNotNaturalized: "התאזרחות של אביך במדינה אחרת לפני לידתך ניתקה את שרשרת האזרחות הגרמנית.",
	catalog.QGFFFBirthAfter1949:       "מסלול ההצהרה לפי סעיף 5 חל רק על מי שנולד לאחר כניסתו לתוקף של חוק היסוד ב-23 במאי 1949.",
	catalog.QGFFFNoCitizenshipAtBirth: "מי שקיבל אזרחות גרמנית בלידתו אינו זקוק למסלול ההצהרה לפי סעיף 5.",

	// Grandmother, mother's side
	catalog.QGMMMGermanCitizen:          "מסלול הזכאות דרך הסבתא מבוסס על סבתא שהחזיקה באזרחות גרמנית; מאחר שסבתך לא החזיקה באזרחות גרמנית, לא קיימת זכאות במסלול זה.",
	catalog.QGMMMMarriedForeign:         "אם סבתך לא נישאה לאזרח זר, אזרחותה לא אבדה בנישואין והמסלול הרלוונטי הוא מסלול ההורה הישיר.",
	catalog.QGMMMMarriageBefore1953:     "אובדן אזרחות עקב נישואין לאזרח זר חל רק על נישואין שנערכו לפני 1 באפריל 1953.",
	catalog.QGMMMLostByMarriage:         "אם סבתך שמרה על אזרחותה הגרמנית לאחר הנישואין, האזרחות יכלה לעבור לדור הבא והזכאות נבחנת במסלול אחר.",
	catalog.QGMMMParentBornAfterWedding: "אם אמך נולדה לפני הנישואין, אובדן האזרחות של סבתך אינו משפיע על שרשרת הזכאות.",
	catalog.QGMMMParentNoCitizenship:    "אם אמך קיבלה אזרחות גרמנית בלידתה, הזכאות נבחנת במסלול ההורה הישיר ולא דרך הסבתא.",
	catalog.QGMMMNoCitizenshipAtBirth:   "מי שקיבל אזרחות גרמנית בלידתו אינו זקוק למסלול ההצהרה לפי סעיף 5.",

	// Grandmother, father's side
	catalog.QGMFMGermanCitizen:          "מסלול הזכאות דרך הסבתא מבוסס על סבתא שהחזיקה באזרחות גרמנית; מאחר שסבתך לא החזיקה באזרחות גרמנית, לא קיימת זכאות במסלול זה.",
	catalog.QGMFMMarriedForeign:         "אם סבתך לא נישאה לאזרח זר, אזרחותה לא אבדה בנישואין והמסלול הרלוונטי הוא מסלול ההורה הישיר.",
	catalog.QGMFMMarriageBefore1953:     "אובדן אזרחות עקב נישואין לאזרח זר חל רק על נישואין שנערכו לפני 1 באפריל 1953.",
	catalog.QGMFMLostByMarriage:         "אם סבתך שמרה על אזרחותה הגרמנית לאחר הנישואין, האזרחות יכלה לעבור לדור הבא והזכאות נבחנת במסלול אחר.",
	catalog.QGMFMParentBornAfterWedding: "אם אביך נולד לפני הנישואין, אובדן האזרחות של סבתך אינו משפיע על שרשרת הזכאות.",
	catalog.QGMFMParentNoCitizenship:    "אם אביך קיבל אזרחות גרמנית בלידתו, הזכאות נבחנת במסלול ההורה הישיר ולא דרך הסבתא.",
	catalog.QGMFMNoCitizenshipAtBirth:   "מי שקיבל אזרחות גרמנית בלידתו אינו זקוק למסלול ההצהרה לפי סעיף 5.",

	// Great-grandparent chain
	catalog.QGreatGermanCitizen:          "מסלול הזכאות דרך דור הסבים רבא מבוסס על אב משפחה שהחזיק באזרחות גרמנית; ללא אזרחות כזו לא קיימת זכאות במסלול זה.",
	catalog.QGreatCitizenAtChildBirth:    "מאחר שהאזרחות הגרמנית לא הוחזקה במועד לידת הדור הבא, שרשרת הזכאות נותקה כבר אז.",
	catalog.QGreatNeverRenounced:         "ויתור מרצון על האזרחות הגרמנית מנתק את שרשרת הזכאות לדורות הבאים.",
	catalog.QGreatGrandparentNoCitizensh: "אם הסב או הסבתא קיבלו אזרחות גרמנית בלידתם, הזכאות נבחנת דרך דור הסבים ולא דרך הדור המוקדם יותר.",
	catalog.QGreatLineNotNaturalized:     "התאזרחות של אחד הדורות במדינה אחרת לפני לידת הדור הבא ניתקה את שרשרת האזרחות הגרמנית.",
	catalog.QGreatBirthAfter1949:         "מסלול ההצהרה לפי סעיף 5 חל רק על מי שנולד לאחר כניסתו לתוקף של חוק היסוד ב-23 במאי 1949.",
	catalog.QGreatNoCitizenshipAtBirth:   "מי שקיבל אזרחות גרמנית בלידתו אינו זקוק למסלול ההצהרה לפי סעיף 5.",
}
