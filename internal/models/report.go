package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportPending  = "pending"
	ReportReviewed = "reviewed"
	ReportResolved = "resolved"
)

var ReportCategories = []string{
	"User Misconduct",
	"Inappropriate Content",
	"Technical Issue",
	"Others",
}

type Report struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reporter         string             `bson:"reporter" json:"reporter"`
	ReportedJob      string             `bson:"reported_job,omitempty" json:"reportedJob,omitempty"`
	ReportedResource string             `bson:"reported_resource,omitempty" json:"reportedResource,omitempty"`
	Category         string             `bson:"category" json:"category"`
	Description      string             `bson:"description" json:"description"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}
