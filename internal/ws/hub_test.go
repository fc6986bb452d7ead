package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case p := <-c.Outbound():
		return p
	default:
		return nil
	}
}

func TestBroadcastExcludesSender(t *testing.T) {
	hub := NewHub(NewRegistry())
	a, b, c := NewClient("a"), NewClient("b"), NewClient("c")
	for _, cl := range []*Client{a, b, c} {
		hub.Attach(cl)
		hub.JoinRoom("room1", cl.ID)
	}

	hub.Broadcast("room1", "a", []byte("hello"))

	assert.Nil(t, recv(t, a))
	assert.Equal(t, []byte("hello"), recv(t, b))
	assert.Equal(t, []byte("hello"), recv(t, c))
}

func TestBroadcastUnknownRoomIsNoop(t *testing.T) {
	hub := NewHub(NewRegistry())
	a := NewClient("a")
	hub.Attach(a)

	hub.Broadcast("nope", "", []byte("hello"))
	assert.Nil(t, recv(t, a))
}

func TestSendDirect(t *testing.T) {
	hub := NewHub(NewRegistry())
	a := NewClient("a")
	hub.Attach(a)

	require.True(t, hub.SendDirect("a", []byte("hi")))
	assert.Equal(t, []byte("hi"), recv(t, a))

	assert.False(t, hub.SendDirect("gone", []byte("hi")))
}

func TestDetachCleansUp(t *testing.T) {
	registry := NewRegistry()
	hub := NewHub(registry)
	a := NewClient("a")
	hub.Attach(a)
	hub.JoinRoom("room1", a.ID)
	registry.Register("u1", a.ID)

	hub.Detach(a.ID)

	assert.False(t, hub.InRoom("room1", a.ID))
	_, ok := registry.Resolve("u1")
	assert.False(t, ok)
	// outbound channel closed
	_, open := <-a.Outbound()
	assert.False(t, open)
}
