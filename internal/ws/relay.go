package ws

import (
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Inbound events.
const (
	EventRegister    = "register"
	EventJoinRoom    = "join_room"
	EventSendMessage = "send_message"
)

// Outbound events.
const (
	EventReceiveMessage  = "receive_message"
	EventNewConversation = "new_conversation_message"
)

// Envelope is the wire frame for every relay event, both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type registerData struct {
	UserID string `json:"userId"`
}

type joinRoomData struct {
	ConversationID string `json:"conversationId"`
}

// sendMessageData picks out the fields the relay routes on; the full data
// blob is forwarded to receivers untouched.
type sendMessageData struct {
	ConversationID    string `json:"conversationId"`
	Sender            string `json:"sender"`
	IsNewConversation bool   `json:"isNewConversation"`
	Receiver          string `json:"receiver"`
}

// Relay fans a just-sent message out to the live connections interested in
// it. No acks, no retries: if the receiver is offline the event is dropped
// and the message store remains the only durable record.
type Relay struct {
	hub *Hub
	log *zap.SugaredLogger
}

func NewRelay(hub *Hub, log *zap.SugaredLogger) *Relay {
	return &Relay{hub: hub, log: log}
}

func (r *Relay) Hub() *Hub { return r.hub }

// Handler upgrades a connection into the event loop. Must be mounted behind
// the fiber websocket middleware.
func (r *Relay) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		client := NewClient(uuid.NewString())
		r.hub.Attach(client)
		defer r.hub.Detach(client.ID)

		go client.writePump(conn)

		conn.SetReadLimit(maxMessageSize)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var env Envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				r.log.Debugw("relay: dropping malformed frame", "conn", client.ID)
				continue
			}
			r.dispatch(client, env)
		}
	}
}

func (r *Relay) dispatch(client *Client, env Envelope) {
	switch env.Event {
	case EventRegister:
		var d registerData
		if err := json.Unmarshal(env.Data, &d); err != nil || d.UserID == "" {
			return
		}
		r.hub.Registry().Register(d.UserID, client.ID)

	case EventJoinRoom:
		var d joinRoomData
		if err := json.Unmarshal(env.Data, &d); err != nil || d.ConversationID == "" {
			return
		}
		r.hub.JoinRoom(d.ConversationID, client.ID)

	case EventSendMessage:
		var d sendMessageData
		if err := json.Unmarshal(env.Data, &d); err != nil || d.ConversationID == "" {
			return
		}
		r.deliver(d.ConversationID, client.ID, env.Data, d.IsNewConversation, d.Receiver)

	default:
		// unknown event, ignore
	}
}

// Publish fans out a message created over HTTP. The sender's own connection,
// if registered, is excluded from the room broadcast.
func (r *Relay) Publish(conversationID, senderUserID string, payload any, isNewConversation bool, receiverUserID string) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.log.Errorw("relay: marshal payload", "error", err)
		return
	}
	senderConn, _ := r.hub.Registry().Resolve(senderUserID)
	r.deliver(conversationID, senderConn, data, isNewConversation, receiverUserID)
}

func (r *Relay) deliver(conversationID, senderConnID string, data json.RawMessage, isNew bool, receiverUserID string) {
	out, _ := json.Marshal(Envelope{Event: EventReceiveMessage, Data: data})
	r.hub.Broadcast(conversationID, senderConnID, out)

	// first message of a brand-new conversation: the receiver cannot have
	// joined the room yet, so push a discovery event straight to them
	if !isNew || receiverUserID == "" {
		return
	}
	connID, ok := r.hub.Registry().Resolve(receiverUserID)
	if !ok || r.hub.InRoom(conversationID, connID) {
		return
	}
	direct, _ := json.Marshal(Envelope{Event: EventNewConversation, Data: data})
	r.hub.SendDirect(connID, direct)
}
