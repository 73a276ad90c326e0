package model

import "time"

// Legal section tags the questionnaire can conclude eligibility under.
const (
	Section116 = "§116" // German Basic Law art. 116(2), revoked citizenship
	Section15  = "§15"  // German StAG §15, persecution-related loss
	Section5   = "§5"   // German StAG §5, descent declaration
	Section58c = "§58c" // Austrian StbG §58c, victims of persecution
)

// Categories reported on §5 (ancestor-line) outcomes, plus the control
// categories the classifier uses to tell the UI layer what to do next.
const (
	CategoryMarriageLoss     = "marriage_loss"
	CategoryLegitimationLoss = "legitimation_loss"
	CategoryParent           = "parent"
	CategoryGrandparent      = "grandparent"
	CategoryIncomplete       = "incomplete"
	CategoryRestart          = "restart"
)

// ClassificationRecord is the outcome of the eligibility classifier.
type ClassificationRecord struct {
	Eligible    bool     `json:"eligible"`
	Sections    []string `json:"sections"`
	Message     string   `json:"message"`
	NeedsReview bool     `json:"needsReview"`
	Category    string   `json:"category,omitempty"`
}

// ResultRecord is the shape persisted to the results sink, exactly once per
// completed session.
type ResultRecord struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	SessionID       string    `json:"sessionId" bson:"sessionId"`
	EligibleSection string    `json:"eligibleSection" bson:"eligible_section"`
	IsEligible      bool      `json:"isEligible" bson:"is_eligible"`
	NeedsReview     bool      `json:"needsReview" bson:"needs_review"`
	Explanation     string    `json:"explanation" bson:"explanation"`
	UserData        []Answer  `json:"userData" bson:"user_data"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}
