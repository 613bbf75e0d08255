package console

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// EntityEvent describes a mutation the console performed, so open list
// screens know to re-fetch. Mutations are never applied optimistically; the
// event is the refresh trigger, not the data.
type EntityEvent struct {
	Entity string `json:"entity"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"` // create | update | delete | toggle | approve | assign | broadcast | status
}

// RefreshHook is notified after every successful mutation.
type RefreshHook interface {
	EntityChanged(ctx context.Context, event EntityEvent) error
}

type noopRefreshHook struct{}

func (noopRefreshHook) EntityChanged(context.Context, EntityEvent) error { return nil }

// BroadcastHook fans out entity events to in-process subscribers and, via
// ServeWebSocket, to connected browser tabs.
type BroadcastHook struct {
	mu   sync.RWMutex
	subs map[int]chan EntityEvent
	next int
}

// NewBroadcastHook creates a broadcast hook.
func NewBroadcastHook() *BroadcastHook {
	return &BroadcastHook{subs: make(map[int]chan EntityEvent)}
}

// EntityChanged satisfies RefreshHook and broadcasts the event. Slow
// subscribers drop events rather than block the mutation path.
func (h *BroadcastHook) EntityChanged(_ context.Context, event EntityEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel of entity events and a cancel func.
func (h *BroadcastHook) Subscribe() (<-chan EntityEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan EntityEvent, 8)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the request and streams entity events as JSON.
func (h *BroadcastHook) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer conn.Close()

	events, cancel := h.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}
