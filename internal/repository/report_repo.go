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

type ReportRepository interface {
	Insert(ctx context.Context, rep *models.Report) error
	FindByID(ctx context.Context, id string) (*models.Report, error)
	ListAll(ctx context.Context) ([]*models.Report, error)
	SetStatus(ctx context.Context, id, status string) error
}

type mongoReportRepo struct {
	col *mongo.Collection
}

func NewReportRepo(db *mongo.Database) ReportRepository {
	return &mongoReportRepo{col: db.Collection(colReports)}
}

func (r *mongoReportRepo) Insert(ctx context.Context, rep *models.Report) error {
	now := time.Now().UTC()
	if rep.Status == "" {
		rep.Status = models.ReportPending
	}
	rep.CreatedAt = now
	rep.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, rep)
	if err != nil {
		return err
	}
	rep.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoReportRepo) FindByID(ctx context.Context, id string) (*models.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	var rep models.Report
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&rep); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &rep, nil
}

func (r *mongoReportRepo) ListAll(ctx context.Context) ([]*models.Report, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Report
	for cur.Next(ctx) {
		var rep models.Report
		if err := cur.Decode(&rep); err != nil {
			return nil, err
		}
		out = append(out, &rep)
	}
	return out, cur.Err()
}

func (r *mongoReportRepo) SetStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
