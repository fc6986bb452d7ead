package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation is a two-party thread. Participants are stored as a sorted
// pair of user id hex strings so the unordered pair {A,B} always maps to one
// document; a unique index on the pair makes create-or-get race-free.
type Conversation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Participants []string           `bson:"participants" json:"-"`
	PairKey      string             `bson:"pair_key" json:"-"`
	LastMessage  string             `bson:"last_message,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ParticipantPair returns the two user ids in canonical (sorted) order.
func ParticipantPair(a, b string) []string {
	p := []string{a, b}
	sort.Strings(p)
	return p
}

// PairKeyOf derives the unique key for an unordered participant pair.
func PairKeyOf(a, b string) string {
	p := ParticipantPair(a, b)
	return p[0] + ":" + p[1]
}

func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the participant that is not userID.
func (c *Conversation) OtherParticipant(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

// ConversationView is the populated read model returned to clients:
// participant summaries and the last message joined in by the service.
type ConversationView struct {
	ID           string        `json:"id"`
	Participants []UserSummary `json:"participants"`
	LastMessage  *Message      `json:"lastMessage"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
