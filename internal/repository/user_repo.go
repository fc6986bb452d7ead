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

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	List(ctx context.Context, role string) ([]*models.User, error)
	ListIDsByRole(ctx context.Context, role string) ([]string, error)
	Update(ctx context.Context, id string, set bson.M) (*models.User, error)
	Delete(ctx context.Context, id string) error
	PushPostedJob(ctx context.Context, userID, jobID string) error
	PullPostedJob(ctx context.Context, userID, jobID string) error
	CountByRole(ctx context.Context, role string) (int64, error)
	SearchMentors(ctx context.Context, q string, skip, limit int64) ([]*models.User, error)
}

type mongoUserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepository {
	return &mongoUserRepo{col: db.Collection(colUsers)}
}

func (r *mongoUserRepo) Create(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"phone": phone},
	}})
	return n > 0, err
}

func (r *mongoUserRepo) List(ctx context.Context, role string) ([]*models.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeUsers(ctx, cur)
}

func (r *mongoUserRepo) ListIDsByRole(ctx context.Context, role string) ([]string, error) {
	cur, err := r.col.Find(ctx, bson.M{"role": role},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID.Hex())
	}
	return ids, cur.Err()
}

func (r *mongoUserRepo) Update(ctx context.Context, id string, set bson.M) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	set["updated_at"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoUserRepo) PushPostedJob(ctx context.Context, userID, jobID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperr.ErrNotFound
	}
	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$push": bson.M{"posted_jobs": jobID}})
	return err
}

func (r *mongoUserRepo) PullPostedJob(ctx context.Context, userID, jobID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperr.ErrNotFound
	}
	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$pull": bson.M{"posted_jobs": jobID}})
	return err
}

func (r *mongoUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"role": role})
}

func (r *mongoUserRepo) SearchMentors(ctx context.Context, q string, skip, limit int64) ([]*models.User, error) {
	rx := primitive.Regex{Pattern: q, Options: "i"}
	filter := bson.M{
		"role": models.RoleMentor,
		"$or": bson.A{
			bson.M{"surname": rx},
			bson.M{"othername": rx},
		},
	}
	cur, err := r.col.Find(ctx, filter, options.Find().
		SetProjection(bson.M{
			"surname": 1, "othername": 1, "job_title": 1,
			"company_name": 1, "industry": 1,
		}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeUsers(ctx, cur)
}

func decodeUsers(ctx context.Context, cur *mongo.Cursor) ([]*models.User, error) {
	var out []*models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, cur.Err()
}
