package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MentorshipPending  = "pending"
	MentorshipAccepted = "accepted"
	MentorshipRejected = "rejected"
)

type Mentorship struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Mentee      string             `bson:"mentee" json:"mentee"`
	Mentor      string             `bson:"mentor" json:"mentor"`
	Message     string             `bson:"message" json:"message"`
	Status      string             `bson:"status" json:"status"`
	RequestedAt time.Time          `bson:"requested_at" json:"requestedAt"`
	AcceptedAt  *time.Time         `bson:"accepted_at,omitempty" json:"acceptedAt,omitempty"`
}

// MentorshipView joins in the mentee and mentor summaries for listing.
type MentorshipView struct {
	Mentorship `bson:",inline"`
	MenteeInfo *UserSummary `json:"menteeInfo,omitempty"`
	MentorInfo *UserSummary `json:"mentorInfo,omitempty"`
}
