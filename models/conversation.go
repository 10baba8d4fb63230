package models

import "time"

// Message roles as sent to the model.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of the transcript.
type Message struct {
	Role   string    `json:"role" bson:"role"`
	Text   string    `json:"text" bson:"text"`
	SentAt time.Time `json:"sentAt" bson:"sentAt"`
}

// Conversation is the stored state of one planning session: the preference
// blob, the transcript, and any suggestion already produced for it.
type Conversation struct {
	ID     string `json:"id" bson:"id"`
	UserID string `json:"userId,omitempty" bson:"userId,omitempty"`

	Preferences PreferenceRecord `json:"preferences" bson:"preferences"`

	// Denormalized copies of the most-queried slots; kept consistent with
	// Preferences on every write.
	Destination string  `json:"destination,omitempty" bson:"destination,omitempty"`
	BudgetTotal float64 `json:"budgetTotal,omitempty" bson:"budgetTotal,omitempty"`
	StartDate   string  `json:"startDate,omitempty" bson:"startDate,omitempty"`

	Suggestion *HotelSuggestion `json:"suggestion,omitempty" bson:"suggestion,omitempty"`
	Messages   []Message        `json:"messages" bson:"messages"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Denormalize refreshes the top-level copies from the preference blob.
func (c *Conversation) Denormalize() {
	c.Destination = c.Preferences.Destination
	c.BudgetTotal = c.Preferences.BudgetTotal
	if c.Preferences.Dates != nil {
		if c.Preferences.Dates.Start != "" {
			c.StartDate = c.Preferences.Dates.Start
		} else {
			c.StartDate = c.Preferences.Dates.Raw
		}
	}
}
