package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type NewsUpdatedEvent struct {
	Type      string `json:"type"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyNewsUpdated broadcasts a news_updated event on the default hub, if any.
func NotifyNewsUpdated(count int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	b, err := json.Marshal(NewsUpdatedEvent{
		Type:      TypeNewsUpdated,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	h.Broadcast(b)
}
