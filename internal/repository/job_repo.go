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

type JobRepository interface {
	Insert(ctx context.Context, j *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	ListAll(ctx context.Context) ([]*models.Job, error)
	ListByPoster(ctx context.Context, userID string) ([]*models.Job, error)
	Update(ctx context.Context, id string, set bson.M) (*models.Job, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, q string, skip, limit int64) ([]*models.Job, error)
}

type mongoJobRepo struct {
	col *mongo.Collection
}

func NewJobRepo(db *mongo.Database) JobRepository {
	return &mongoJobRepo{col: db.Collection(colJobs)}
}

func (r *mongoJobRepo) Insert(ctx context.Context, j *models.Job) error {
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, j)
	if err != nil {
		return err
	}
	j.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoJobRepo) FindByID(ctx context.Context, id string) (*models.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	var j models.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *mongoJobRepo) ListAll(ctx context.Context) ([]*models.Job, error) {
	return r.list(ctx, bson.M{}, nil)
}

func (r *mongoJobRepo) ListByPoster(ctx context.Context, userID string) ([]*models.Job, error) {
	return r.list(ctx, bson.M{"posted_by": userID}, nil)
}

func (r *mongoJobRepo) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Job, error) {
	if opts == nil {
		opts = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	}
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Job
	for cur.Next(ctx) {
		var j models.Job
		if err := cur.Decode(&j); err != nil {
			return nil, err
		}
		out = append(out, &j)
	}
	return out, cur.Err()
}

func (r *mongoJobRepo) Update(ctx context.Context, id string, set bson.M) (*models.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	set["updated_at"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var j models.Job
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *mongoJobRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *mongoJobRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *mongoJobRepo) Search(ctx context.Context, q string, skip, limit int64) ([]*models.Job, error) {
	rx := primitive.Regex{Pattern: q, Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": rx},
		bson.M{"company": rx},
		bson.M{"type": rx},
		bson.M{"location": rx},
	}}
	return r.list(ctx, filter, options.Find().
		SetProjection(bson.M{
			"title": 1, "company": 1, "type": 1, "location": 1,
			"location_details": 1, "currency": 1, "min_salary": 1,
		}).
		SetSkip(skip).
		SetLimit(limit))
}
