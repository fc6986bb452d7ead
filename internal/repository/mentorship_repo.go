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

type MentorshipRepository interface {
	Insert(ctx context.Context, m *models.Mentorship) error
	FindByID(ctx context.Context, id string) (*models.Mentorship, error)
	FindPending(ctx context.Context, menteeID, mentorID string) (*models.Mentorship, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Mentorship, error)
	SetStatus(ctx context.Context, id, status string, acceptedAt *time.Time) error
}

type mongoMentorshipRepo struct {
	col *mongo.Collection
}

func NewMentorshipRepo(db *mongo.Database) MentorshipRepository {
	return &mongoMentorshipRepo{col: db.Collection(colMentorships)}
}

func (r *mongoMentorshipRepo) Insert(ctx context.Context, m *models.Mentorship) error {
	if m.Status == "" {
		m.Status = models.MentorshipPending
	}
	m.RequestedAt = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoMentorshipRepo) FindByID(ctx context.Context, id string) (*models.Mentorship, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	var m models.Mentorship
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *mongoMentorshipRepo) FindPending(ctx context.Context, menteeID, mentorID string) (*models.Mentorship, error) {
	var m models.Mentorship
	err := r.col.FindOne(ctx, bson.M{
		"mentee": menteeID,
		"mentor": mentorID,
		"status": models.MentorshipPending,
	}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *mongoMentorshipRepo) ListForUser(ctx context.Context, userID string) ([]*models.Mentorship, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"mentee": userID},
		bson.M{"mentor": userID},
	}}
	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Mentorship
	for cur.Next(ctx) {
		var m models.Mentorship
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, cur.Err()
}

func (r *mongoMentorshipRepo) SetStatus(ctx context.Context, id, status string, acceptedAt *time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	set := bson.M{"status": status}
	if acceptedAt != nil {
		set["accepted_at"] = *acceptedAt
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
