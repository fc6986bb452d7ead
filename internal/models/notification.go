package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotifMentorship        = "mentorship"
	NotifJob               = "job"
	NotifNewJob            = "new_job"
	NotifApplicationUpdate = "application_update"
	NotifResource          = "resource"
	NotifSystem            = "system"
)

type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        string             `bson:"user" json:"user"`
	Message     string             `bson:"message" json:"message"`
	Type        string             `bson:"type" json:"type"`
	RelatedID   string             `bson:"related_id,omitempty" json:"relatedId,omitempty"`
	TriggeredBy string             `bson:"triggered_by,omitempty" json:"triggeredBy,omitempty"`
	IsRead      bool               `bson:"is_read" json:"isRead"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
