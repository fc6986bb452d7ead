package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipantPairCanonicalOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParticipantPair("b", "a"))
	assert.Equal(t, []string{"a", "b"}, ParticipantPair("a", "b"))
}

func TestPairKeySymmetric(t *testing.T) {
	assert.Equal(t, PairKeyOf("u1", "u2"), PairKeyOf("u2", "u1"))
	assert.Equal(t, "u1:u2", PairKeyOf("u2", "u1"))
	assert.NotEqual(t, PairKeyOf("u1", "u2"), PairKeyOf("u1", "u3"))
}

func TestConversationParticipants(t *testing.T) {
	c := &Conversation{Participants: ParticipantPair("u2", "u1")}
	assert.True(t, c.HasParticipant("u1"))
	assert.True(t, c.HasParticipant("u2"))
	assert.False(t, c.HasParticipant("u3"))

	assert.Equal(t, "u2", c.OtherParticipant("u1"))
	assert.Equal(t, "u1", c.OtherParticipant("u2"))
	assert.Equal(t, "u1", c.OtherParticipant("u3"))
}
