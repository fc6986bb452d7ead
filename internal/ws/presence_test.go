package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRegisterAndResolve(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Resolve("u1")
	assert.False(t, ok)

	r.Register("u1", "conn-a")
	conn, ok := r.Resolve("u1")
	assert.True(t, ok)
	assert.Equal(t, "conn-a", conn)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	r.Register("u1", "conn-a")
	r.Register("u1", "conn-b")

	conn, ok := r.Resolve("u1")
	assert.True(t, ok)
	assert.Equal(t, "conn-b", conn)

	// the stale connection going away must not clear the new mapping
	r.Unregister("conn-a")
	conn, ok = r.Resolve("u1")
	assert.True(t, ok)
	assert.Equal(t, "conn-b", conn)

	r.Unregister("conn-b")
	_, ok = r.Resolve("u1")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryUnregisterUnknownConn(t *testing.T) {
	r := NewRegistry()
	r.Register("u1", "conn-a")
	r.Unregister("conn-x")

	_, ok := r.Resolve("u1")
	assert.True(t, ok)
}
