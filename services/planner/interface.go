// File: services/planner/interface.go
package planner

import (
	"context"

	"tripwise/models"
	"tripwise/services/travel"
)

// PlannerService drives one conversation turn end to end.
type PlannerService interface {
	StartConversation(ctx context.Context, userID string) (*models.Conversation, error)
	GetConversation(ctx context.Context, id string) (*models.Conversation, error)
	HandleTurn(ctx context.Context, conversationID, userMessage string) (*TurnResult, error)
}

// TurnResult is what one processed turn hands back to the caller: the
// visible reply plus the updated record for persistence or display.
type TurnResult struct {
	ConversationID string                  `json:"conversationId"`
	Reply          string                  `json:"reply"`
	Stage          string                  `json:"stage"`
	Preferences    models.PreferenceRecord `json:"preferences"`
	Suggestion     *models.HotelSuggestion `json:"suggestion,omitempty"`
}

// HotelSearcher is the slice of the travel client the planner needs.
type HotelSearcher interface {
	SearchHotel(ctx context.Context, q travel.HotelQuery) (*models.HotelSuggestion, error)
}
