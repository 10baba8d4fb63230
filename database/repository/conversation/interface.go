package conversationRepo

import (
	"context"

	"tripwise/database"
	"tripwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConversationRepository is the store for planning sessions. Save must keep
// the denormalized destination/budget/start-date copies consistent with the
// preference blob.
type ConversationRepository interface {
	Create(ctx context.Context, userID string) (*models.Conversation, error)
	GetByID(ctx context.Context, id string) (*models.Conversation, error)
	Save(ctx context.Context, conv *models.Conversation) error
	AppendMessages(ctx context.Context, id string, msgs ...models.Message) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo returns a ConversationRepository backed by MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	db := database.MongoClient.Database("tripwise")
	return &mongoConversationRepo{
		coll: db.Collection("conversations"),
	}
}
