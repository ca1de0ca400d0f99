package ws

import (
	"context"
	"log"
	"sync"
)

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	dispatcher *Dispatcher
	logger     *log.Logger
}

func NewHub(dispatcher *Dispatcher, logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run owns client membership until ctx is cancelled, then closes every client. Clients
// registering after that are closed immediately.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stopOnce.Do(func() { close(h.done) })
			h.drainRegistrations()
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				c.close()
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | client=%s total_clients=%d", client.ID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			if h.remove(client) && h.logger != nil {
				h.logger.Printf("WS disconnected | client=%s total_clients=%d", client.ID, h.ClientCount())
			}

		case message := <-h.broadcast:
			h.mutex.RLock()
			clientsSnapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				clientsSnapshot = append(clientsSnapshot, c)
			}
			h.mutex.RUnlock()

			dropped := 0
			for _, client := range clientsSnapshot {
				select {
				case client.send <- message:
				default:
					if h.remove(client) {
						dropped++
					}
				}
			}

			if h.logger != nil {
				h.logger.Printf("WS broadcast | clients=%d dropped=%d", len(clientsSnapshot), dropped)
			}
		}
	}
}

func (h *Hub) drainRegistrations() {
	for {
		select {
		case c := <-h.register:
			if c != nil {
				c.close()
			}
		default:
			return
		}
	}
}

func (h *Hub) remove(client *Client) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[client]; !ok {
		return false
	}
	delete(h.clients, client)
	client.close()
	return true
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	select {
	case <-h.done:
		client.close()
		return
	default:
	}
	select {
	case h.register <- client:
	case <-h.done:
		client.close()
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	default:
		h.remove(client)
	}
}

func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		if h.logger != nil {
			h.logger.Printf("WS broadcast dropped | reason=buffer_full")
		}
	}
}

// Dispatch answers one inbound client message. A nil reply means nothing is sent back.
func (h *Hub) Dispatch(ctx context.Context, message []byte) []byte {
	if h == nil || h.dispatcher == nil {
		return nil
	}
	return h.dispatcher.Handle(ctx, message)
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
