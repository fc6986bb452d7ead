package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

type JobApplication struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Job       string             `bson:"job" json:"job"`
	Applicant string             `bson:"applicant" json:"applicant"`
	Status    string             `bson:"status" json:"status"`
	AppliedAt time.Time          `bson:"applied_at" json:"appliedAt"`
}
