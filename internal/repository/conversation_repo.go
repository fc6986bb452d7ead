package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
)

type ConversationRepository interface {
	GetOrCreate(ctx context.Context, userA, userB string) (*models.Conversation, error)
	FindByID(ctx context.Context, id string) (*models.Conversation, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error)
	SetLastMessage(ctx context.Context, convID, messageID string, at time.Time) error
}

type mongoConversationRepo struct {
	col *mongo.Collection
}

func NewConversationRepo(db *mongo.Database) ConversationRepository {
	return &mongoConversationRepo{col: db.Collection(colConversations)}
}

// GetOrCreate performs an atomic upsert keyed by the sorted participant pair,
// so two concurrent first messages between the same users resolve to a single
// conversation document.
func (r *mongoConversationRepo) GetOrCreate(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	now := time.Now().UTC()
	pair := models.ParticipantPair(userA, userB)

	filter := bson.M{"pair_key": models.PairKeyOf(userA, userB)}
	update := bson.M{"$setOnInsert": bson.M{
		"participants": pair,
		"created_at":   now,
		"updated_at":   now,
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var conv models.Conversation
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *mongoConversationRepo) FindByID(ctx context.Context, id string) (*models.Conversation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	var conv models.Conversation
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&conv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *mongoConversationRepo) ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	cur, err := r.col.Find(ctx, bson.M{"participants": userID},
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Conversation
	for cur.Next(ctx) {
		var c models.Conversation
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}

func (r *mongoConversationRepo) SetLastMessage(ctx context.Context, convID, messageID string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(convID)
	if err != nil {
		return apperr.ErrNotFound
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"last_message": messageID,
		"updated_at":   at,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
