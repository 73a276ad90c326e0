package flow

// User-visible verdict messages. The UI locale is Hebrew; the engine treats
// these as opaque strings.
const (
	msgGermanPositive116 = "על פי תשובותיך, אזרחותו הגרמנית של אב המשפחה נשללה על ידי המשטר הנאצי, ולכן קיימת זכאות להתאזרחות מחדש לפי סעיף 116 לחוק היסוד הגרמני."
	msgGermanPositive15  = "על פי תשובותיך, אב המשפחה נמלט מרדיפת המשטר הנאצי ואיבד את אזרחותו הגרמנית לאחר ההגירה, ולכן קיימת זכאות להתאזרחות לפי סעיף 15 לחוק האזרחות הגרמני."

	msgGermanNoEarlyDeparture     = "מאחר שאב המשפחה לא נמלט מרדיפת המשטר הנאצי ולא עזב את גרמניה לפני שנת 1933, לא ניתן לבסס זכאות להתאזרחות במסלול זה."
	msgGermanNoRevocationNoFlight = "מאחר שאזרחותו של אב המשפחה לא נשללה על ידי המשטר הנאצי והוא לא נמלט מרדיפתו, לא מתקיימים תנאי הזכאות להתאזרחות."
	msgGermanNoRevocation         = "מאחר שאזרחותו הגרמנית של אב המשפחה לא נשללה על ידי המשטר הנאצי, לא מתקיימים תנאי סעיף 116 לחוק היסוד הגרמני."
	msgGermanKeptCitizenship      = "מאחר שאב המשפחה שמר על אזרחותו הגרמנית לאחר ההגירה, לא מתקיימים תנאי סעיף 15 לחוק האזרחות הגרמני."
	msgGermanNotDirectRelative    = "הזכאות להתאזרחות מוגבלת לצאצאים ישירים של אב המשפחה."
	msgGermanGenericNegative      = "על פי תשובותיך לא מתקיימים תנאי הזכאות להתאזרחות גרמנית."
	msgGermanNeedsReview          = "על סמך תשובותיך ייתכן שקיימת זכאות להתאזרחות גרמנית, אולם חלק מהתשובות סומנו כ\"לא בטוח/ה\" ולכן נדרשת בדיקה פרטנית של עורך דין."

	msgAncestorParent           = "על פי תשובותיך, נולדת להורה שהחזיק באזרחות גרמנית מבלי שהאזרחות עברה אליך בלידה, ולכן קיימת זכאות להתאזרחות בהצהרה לפי סעיף 5 לחוק האזרחות הגרמני."
	msgAncestorMarriageLoss     = "על פי תשובותיך, האזרחות הגרמנית במשפחתך אבדה עקב נישואין לאזרח זר לפני 1953, ולכן קיימת זכאות להתאזרחות בהצהרה לפי סעיף 5 לחוק האזרחות הגרמני."
	msgAncestorLegitimationLoss = "על פי תשובותיך, האזרחות הגרמנית נמנעה ממך עקב הליך ההכרה באבהות, ולכן קיימת זכאות להתאזרחות בהצהרה לפי סעיף 5 לחוק האזרחות הגרמני."
	msgAncestorGrandparent      = "על פי תשובותיך, הזכאות נובעת מסב, סבתא או דור מוקדם יותר שהחזיקו באזרחות גרמנית, ולכן קיימת זכאות להתאזרחות בהצהרה לפי סעיף 5 לחוק האזרחות הגרמני."
	msgAncestorNeedsReview      = "על סמך תשובותיך ייתכן שקיימת זכאות להתאזרחות בהצהרה לפי סעיף 5, אולם חלק מהתשובות סומנו כ\"לא בטוח/ה\" ולכן נדרשת בדיקה פרטנית של עורך דין."
	msgAncestorGenericNegative  = "על פי תשובותיך לא מתקיימים תנאי הזכאות להתאזרחות בהצהרה לפי סעיף 5 לחוק האזרחות הגרמני."

	msgAustriaPositive            = "על פי תשובותיך קיימת זכאות לאזרחות אוסטרית לפי סעיף 58c לחוק האזרחות האוסטרי, החל על נרדפי המשטר הנאצי וצאצאיהם."
	msgAustriaNotDirectDescendant = "הזכאות לפי סעיף 58c לחוק האזרחות האוסטרי מוגבלת לצאצאים ישירים של הנרדף."
	msgAustriaNeedsReview         = "על סמך תשובותיך ייתכן שקיימת זכאות לאזרחות אוסטרית לפי סעיף 58c, אולם חלק מהתשובות סומנו כ\"לא בטוח/ה\" ולכן נדרשת בדיקה פרטנית של עורך דין."

	msgCompleteQuestionnaire = "כדי לקבל הערכת זכאות יש להשלים תחילה את שאלון הזכאות."
	msgRestartQuestionnaire  = "לא ניתן היה להעריך את תשובותיך; יש למלא את השאלון מחדש."
)
