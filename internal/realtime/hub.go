package realtime

import (
	"encoding/json"
	"sync"

	"github.com/tidwall/gjson"
)

const (
	TypeInsert = "INSERT"
	TypeUpdate = "UPDATE"
	TypeDelete = "DELETE"
)

// Event is a row-level change on a table.
type Event struct {
	Table  string          `json:"table"`
	Type   string          `json:"type"`
	Record json.RawMessage `json:"record"`
}

// Filter restricts a subscription to rows where Column equals Value. The zero Filter matches every row.
type Filter struct {
	Column string
	Value  string
}

func (f Filter) matches(record json.RawMessage) bool {
	if f.Column == "" {
		return true
	}
	res := gjson.GetBytes(record, f.Column)
	return res.Exists() && res.String() == f.Value
}

type Handler func(Event)

// Subscriber is what consumers of change events depend on.
type Subscriber interface {
	Subscribe(table string, filter Filter, handler Handler) (unsubscribe func())
}

type subscription struct {
	table   string
	filter  Filter
	handler Handler
}

type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]subscription
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]subscription)}
}

// Subscribe registers handler for changes on table. The returned function is idempotent. Once it
// returns, handler is not running and will not be called again.
func (h *Hub) Subscribe(table string, filter Filter, handler Handler) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = subscription{table: table, filter: filter, handler: handler}
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish calls matching handlers synchronously. Handlers must not block and must not unsubscribe
// from inside the callback.
func (h *Hub) Publish(ev Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, s := range h.subs {
		if s.table != ev.Table || !s.filter.matches(ev.Record) {
			continue
		}
		s.handler(ev)
		delivered++
	}
	return delivered
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
