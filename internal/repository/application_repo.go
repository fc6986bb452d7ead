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

type ApplicationRepository interface {
	Insert(ctx context.Context, a *models.JobApplication) error
	FindByID(ctx context.Context, id string) (*models.JobApplication, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*models.JobApplication, error)
	ListForJob(ctx context.Context, jobID string) ([]*models.JobApplication, error)
	ListForApplicant(ctx context.Context, applicantID string) ([]*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoApplicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) ApplicationRepository {
	return &mongoApplicationRepo{col: db.Collection(colApplications)}
}

func (r *mongoApplicationRepo) Insert(ctx context.Context, a *models.JobApplication) error {
	if a.Status == "" {
		a.Status = models.ApplicationPending
	}
	a.AppliedAt = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoApplicationRepo) FindByID(ctx context.Context, id string) (*models.JobApplication, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	var a models.JobApplication
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *mongoApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*models.JobApplication, error) {
	var a models.JobApplication
	err := r.col.FindOne(ctx, bson.M{"job": jobID, "applicant": applicantID}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *mongoApplicationRepo) ListForJob(ctx context.Context, jobID string) ([]*models.JobApplication, error) {
	return r.list(ctx, bson.M{"job": jobID})
}

func (r *mongoApplicationRepo) ListForApplicant(ctx context.Context, applicantID string) ([]*models.JobApplication, error) {
	return r.list(ctx, bson.M{"applicant": applicantID})
}

func (r *mongoApplicationRepo) list(ctx context.Context, filter bson.M) ([]*models.JobApplication, error) {
	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.JobApplication
	for cur.Next(ctx) {
		var a models.JobApplication
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}

func (r *mongoApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
