package ws

import (
	"context"
	"log"
	"net/http"
	"sync"

	"gulshan-laundry/laundry-svc/internal/domain"
	"gulshan-laundry/laundry-svc/internal/service"

	"github.com/gorilla/websocket"
)

// Frame is the wire shape for both directions: joins carry a customer ID,
// message events carry the message itself.
type Frame struct {
	Type       string             `json:"type"`
	CustomerID string             `json:"customerId,omitempty"`
	Message    domain.ChatMessage `json:"message,omitempty"`
}

const (
	frameJoin        = "join"
	frameAdminJoin   = "adminJoin"
	frameSendMessage = "sendMessage"
	frameAdminReply  = "adminReply"
	frameNewMessage  = "newMessage"
)

// Hub tracks connected browsers: admins see everything, customers only
// their own room. Inbound messages go through the chat service, which
// persists them and puts them on the chat topic; the consumer feeds them
// back for fan-out, so every instance behind a balancer sees every message.
type Hub struct {
	Chat service.ChatServiceInterface

	upgrader  websocket.Upgrader
	mu        sync.RWMutex
	admins    map[*client]struct{}
	customers map[string]map[*client]struct{}
}

type client struct {
	conn       *websocket.Conn
	send       chan Frame
	customerID string
	admin      bool

	mu     sync.Mutex
	closed bool
}

func NewHub(chat service.ChatServiceInterface) *Hub {
	return &Hub{
		Chat: chat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		admins:    make(map[*client]struct{}),
		customers: make(map[string]map[*client]struct{}),
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[laundry-svc] websocket upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan Frame, 64)}
	go c.writePump()
	h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.close()
	}()

	for {
		var frame Frame
		if err := c.conn.ReadJSON(&frame); err != nil {
			return
		}

		switch frame.Type {
		case frameJoin:
			c.customerID = frame.CustomerID
			c.admin = false
			h.register(c)
		case frameAdminJoin:
			c.admin = true
			h.register(c)
		case frameSendMessage, frameAdminReply:
			h.handleMessage(c, frame)
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c.admin {
		h.admins[c] = struct{}{}
		return
	}
	room := h.customers[c.customerID]
	if room == nil {
		room = make(map[*client]struct{})
		h.customers[c.customerID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.admins, c)
	if room, ok := h.customers[c.customerID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.customers, c.customerID)
		}
	}
}

func (h *Hub) handleMessage(c *client, frame Frame) {
	msg := frame.Message
	if c.admin {
		msg.IsBot = false
		if msg.Sender == "" {
			msg.Sender = "admin"
		}
	} else {
		msg.Sender = c.customerID
		msg.Recipient = ""
	}

	if err := h.Chat.Send(context.Background(), &msg); err != nil {
		log.Printf("[laundry-svc] error storing chat message: %v", err)
	}
}

// SendToAdmins delivers a frame to every admin connection. A client with a
// full send buffer is skipped rather than blocking the hub.
func (h *Hub) SendToAdmins(frame Frame) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.admins {
		c.trySend(frame)
	}
}

// SendToCustomer delivers a frame to every connection in one customer room.
func (h *Hub) SendToCustomer(customerID string, frame Frame) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.customers[customerID] {
		c.trySend(frame)
	}
}

func (c *client) trySend(frame Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- frame:
	default:
	}
}

func (c *client) writePump() {
	for frame := range c.send {
		if err := c.conn.WriteJSON(frame); err != nil {
			return
		}
	}
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	c.conn.Close()
}
