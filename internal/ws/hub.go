package ws

import "sync"

// Hub tracks live connections and their room membership. Rooms are keyed by
// conversation id; a broadcast reaches every joined connection except the
// excluded one. Delivery is best-effort: a client whose send buffer is full
// is skipped.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client             // connID -> client
	rooms    map[string]map[string]struct{} // conversationID -> set of connIDs
	registry *Registry
}

func NewHub(registry *Registry) *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		rooms:    make(map[string]map[string]struct{}),
		registry: registry,
	}
}

func (h *Hub) Registry() *Registry { return h.registry }

func (h *Hub) Attach(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Detach removes the connection from all rooms and from the presence
// registry, then closes its outbound channel.
func (h *Hub) Detach(connID string) {
	h.mu.Lock()
	c, ok := h.clients[connID]
	delete(h.clients, connID)
	for room, members := range h.rooms {
		delete(members, connID)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()

	h.registry.Unregister(connID)
	if ok {
		c.close()
	}
}

func (h *Hub) JoinRoom(conversationID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[conversationID]; !ok {
		h.rooms[conversationID] = make(map[string]struct{})
	}
	h.rooms[conversationID][connID] = struct{}{}
}

func (h *Hub) InRoom(conversationID, connID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	members, ok := h.rooms[conversationID]
	if !ok {
		return false
	}
	_, in := members[connID]
	return in
}

// Broadcast delivers payload to every connection joined to the room except
// exceptConnID (echo suppression).
func (h *Hub) Broadcast(conversationID, exceptConnID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	members, ok := h.rooms[conversationID]
	if !ok {
		return
	}
	for connID := range members {
		if connID == exceptConnID {
			continue
		}
		if c, ok := h.clients[connID]; ok {
			c.enqueue(payload)
		}
	}
}

// SendDirect delivers payload to one connection. Returns false if the
// connection is gone; the event is simply dropped.
func (h *Hub) SendDirect(connID string, payload []byte) bool {
	h.mu.RLock()
	c, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return false
	}
	c.enqueue(payload)
	return true
}
