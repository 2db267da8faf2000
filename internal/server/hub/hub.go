// Package hub fans document changes out to the subscribe streams of a
// user's connected devices. It is purely in-memory; a subscriber that
// reconnects gets a full snapshot from the database before live events.
package hub

import (
	"sync"

	"github.com/avoganov/ancora/internal/server/models"
)

// EventType describes what happened to a document.
type EventType int

const (
	EventModified EventType = iota
	EventRemoved
)

// Event is a single document change delivered to subscribers.
type Event struct {
	Type EventType
	Doc  *models.Document
}

const subscriberBuffer = 64

type subscriber struct {
	ch chan Event
}

// Hub routes events by (user, collection). All methods are safe for
// concurrent use.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{}
}

func New() *Hub {
	return &Hub{subs: make(map[string]map[*subscriber]struct{})}
}

func key(userID string, collection string) string {
	return userID + "/" + collection
}

// Subscribe registers a listener for one user's collection. The returned
// cancel function must be called to release the subscription; after cancel
// the channel is closed.
func (h *Hub) Subscribe(userID string, collection string) (<-chan Event, func()) {
	s := &subscriber{ch: make(chan Event, subscriberBuffer)}
	k := key(userID, collection)

	h.mu.Lock()
	set, ok := h.subs[k]
	if !ok {
		set = make(map[*subscriber]struct{})
		h.subs[k] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if set, ok := h.subs[k]; ok {
				delete(set, s)
				if len(set) == 0 {
					delete(h.subs, k)
				}
			}
			h.mu.Unlock()
			close(s.ch)
		})
	}

	return s.ch, cancel
}

// Publish delivers the event to every subscriber of the document's
// (user, collection). A subscriber whose buffer is full misses the event;
// it will pick the state up again from the snapshot on its next subscribe.
func (h *Hub) Publish(ev Event) {
	k := key(ev.Doc.UserID, ev.Doc.Collection)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.subs[k] {
		select {
		case s.ch <- ev:
		default:
		}
	}
}
