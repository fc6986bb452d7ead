package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ConversationID string             `bson:"conversation_id" json:"conversationId"`
	Sender         string             `bson:"sender" json:"sender"`
	Text           string             `bson:"text" json:"text"`
	SentAt         time.Time          `bson:"sent_at" json:"sentAt"`
	Read           bool               `bson:"read" json:"read"`
}
