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

type ResourceRepository interface {
	Insert(ctx context.Context, res *models.Resource) error
	FindByID(ctx context.Context, id string) (*models.Resource, error)
	ListAll(ctx context.Context) ([]*models.Resource, error)
	ListByUploader(ctx context.Context, userID string) ([]*models.Resource, error)
	IncrementAccess(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, q string, skip, limit int64) ([]*models.Resource, error)
}

type mongoResourceRepo struct {
	col *mongo.Collection
}

func NewResourceRepo(db *mongo.Database) ResourceRepository {
	return &mongoResourceRepo{col: db.Collection(colResources)}
}

func (r *mongoResourceRepo) Insert(ctx context.Context, res *models.Resource) error {
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	ins, err := r.col.InsertOne(ctx, res)
	if err != nil {
		return err
	}
	res.ID = ins.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoResourceRepo) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	var res models.Resource
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *mongoResourceRepo) ListAll(ctx context.Context) ([]*models.Resource, error) {
	return r.list(ctx, bson.M{}, nil)
}

func (r *mongoResourceRepo) ListByUploader(ctx context.Context, userID string) ([]*models.Resource, error) {
	return r.list(ctx, bson.M{"uploaded_by": userID}, nil)
}

func (r *mongoResourceRepo) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Resource, error) {
	if opts == nil {
		opts = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	}
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Resource
	for cur.Next(ctx) {
		var res models.Resource
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		out = append(out, &res)
	}
	return out, cur.Err()
}

func (r *mongoResourceRepo) IncrementAccess(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"access_count": 1}})
	return err
}

func (r *mongoResourceRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoResourceRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *mongoResourceRepo) Search(ctx context.Context, q string, skip, limit int64) ([]*models.Resource, error) {
	rx := primitive.Regex{Pattern: q, Options: "i"}
	return r.list(ctx, bson.M{"title": rx}, options.Find().
		SetProjection(bson.M{"title": 1}).
		SetSkip(skip).
		SetLimit(limit))
}
