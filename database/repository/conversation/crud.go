package conversationRepo

import (
	"context"
	"errors"
	"time"

	"tripwise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no conversation matches the given id.
var ErrNotFound = errors.New("conversation not found")

// Create inserts an empty conversation and returns it.
func (r *mongoConversationRepo) Create(ctx context.Context, userID string) (*models.Conversation, error) {
	conv := &models.Conversation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Messages:  []models.Message{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// GetByID returns a conversation by its ID.
func (r *mongoConversationRepo) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&conv)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// Save writes the full conversation document back, refreshing the
// denormalized copies so both representations stay consistent.
func (r *mongoConversationRepo) Save(ctx context.Context, conv *models.Conversation) error {
	conv.Denormalize()
	conv.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": conv.ID}, conv)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendMessages pushes transcript entries without touching the preference blob.
func (r *mongoConversationRepo) AppendMessages(ctx context.Context, id string, msgs ...models.Message) error {
	update := bson.M{
		"$push": bson.M{"messages": bson.M{"$each": msgs}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a conversation by ID.
func (r *mongoConversationRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
