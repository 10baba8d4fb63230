// File: services/planner/orchestrator.go
package planner

import (
	"context"
	"errors"
	"time"

	"tripwise/config"
	conversationRepo "tripwise/database/repository/conversation"
	"tripwise/models"
	ai "tripwise/services/intelligence"
	"tripwise/services/travel"

	"go.uber.org/zap"
)

// DefaultPlannerService composes the stage selector, the model client, the
// extractor, the travel client and the enricher into the per-turn pipeline.
type DefaultPlannerService struct {
	Repo      conversationRepo.ConversationRepository
	Model     ai.ChatModel
	Travel    HotelSearcher
	Extractor Extractor
	Logger    *zap.Logger

	// CollectOrigin picks the stage ordering; it is read per turn but never
	// changes mid-conversation in practice because it comes from static
	// configuration.
	CollectOrigin bool

	locks *conversationLocks
}

func NewDefaultPlannerService(
	repo conversationRepo.ConversationRepository,
	model ai.ChatModel,
	travelClient HotelSearcher,
	extractor Extractor,
	collectOrigin bool,
	logger *zap.Logger,
) *DefaultPlannerService {
	return &DefaultPlannerService{
		Repo:          repo,
		Model:         model,
		Travel:        travelClient,
		Extractor:     extractor,
		Logger:        logger,
		CollectOrigin: collectOrigin,
		locks:         newConversationLocks(),
	}
}

func (s *DefaultPlannerService) StartConversation(ctx context.Context, userID string) (*models.Conversation, error) {
	return s.Repo.Create(ctx, userID)
}

func (s *DefaultPlannerService) GetConversation(ctx context.Context, id string) (*models.Conversation, error) {
	return s.Repo.GetByID(ctx, id)
}

// HandleTurn processes one user message: load record, compute stage, run
// the one-shot hotel search at the final stage, call the model, extract,
// enrich, merge and persist. Turns of the same conversation are serialized;
// the record is only written once, at the end, so an aborted turn leaves no
// partial slot writes behind.
func (s *DefaultPlannerService) HandleTurn(ctx context.Context, conversationID, userMessage string) (*TurnResult, error) {
	s.locks.Lock(conversationID)
	defer s.locks.Unlock(conversationID)

	conv, err := s.Repo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	rec := conv.Preferences

	stage, instruction := SelectStage(&rec, s.CollectOrigin)

	// One hotel lookup per record snapshot, on the first turn at the final
	// stage. Both outcomes mark the record so repeat turns do not re-search.
	var suggestion *models.HotelSuggestion
	searchFailed := false
	if stage == StageReady && !rec.SuggestionDone {
		suggestion, err = s.searchAccommodation(ctx, &rec)
		switch {
		case err == nil:
			conv.Suggestion = suggestion
			rec.SuggestionDone = true
		case errors.Is(err, travel.ErrNoResults):
			searchFailed = true
			rec.SuggestionDone = true
		default:
			// Missing credentials and other configuration problems are
			// fatal for the request.
			return nil, err
		}
	}

	_, includeExtraction := s.Extractor.(BlockExtractor)
	system := BuildSystemInstruction(stage, instruction, &rec, suggestion, searchFailed, includeExtraction)

	// The model call is bounded so a stalled provider cannot hold the
	// conversation lock indefinitely.
	modelCtx, cancel := context.WithTimeout(ctx, modelTimeout())
	defer cancel()
	reply, err := s.Model.Chat(modelCtx, system, conv.Messages, userMessage)
	if err != nil {
		return nil, err
	}

	visible, update := s.Extractor.Extract(Turn{
		UserMessage: userMessage,
		ModelReply:  reply,
		Record:      rec,
	})

	if stage == StageReady {
		visible = Enrich(visible, rec.Destination)
	}

	rec.Apply(update)
	conv.Preferences = rec
	now := time.Now()
	conv.Messages = append(conv.Messages,
		models.Message{Role: models.RoleUser, Text: userMessage, SentAt: now},
		models.Message{Role: models.RoleModel, Text: visible, SentAt: now},
	)

	if err := s.Repo.Save(ctx, conv); err != nil {
		return nil, err
	}

	return &TurnResult{
		ConversationID: conv.ID,
		Reply:          visible,
		Stage:          stage.String(),
		Preferences:    conv.Preferences,
		Suggestion:     conv.Suggestion,
	}, nil
}

func modelTimeout() time.Duration {
	timeout := time.Duration(config.AppConfig.ModelTimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return timeout
}

// searchAccommodation derives the hotel query from the record: destination,
// structured dates when present, and a price ceiling from the accommodation
// share of the budget.
func (s *DefaultPlannerService) searchAccommodation(ctx context.Context, rec *models.PreferenceRecord) (*models.HotelSuggestion, error) {
	q := travel.HotelQuery{
		CityQuery: rec.Destination,
	}
	if rec.Dates != nil {
		q.ArrivalDate = rec.Dates.Start
		q.DepartureDate = rec.Dates.End
	}
	if rec.BudgetTotal > 0 && rec.BudgetAllocation != nil && rec.BudgetAllocation.AccommodationPct > 0 {
		q.PriceMax = int(rec.BudgetTotal * rec.BudgetAllocation.AccommodationPct / 100)
	}

	suggestion, err := s.Travel.SearchHotel(ctx, q)
	if err != nil {
		if errors.Is(err, travel.ErrNoResults) && s.Logger != nil {
			s.Logger.Info("No accommodation suggestion available",
				zap.String("destination", rec.Destination))
		}
		return nil, err
	}
	return suggestion, nil
}
