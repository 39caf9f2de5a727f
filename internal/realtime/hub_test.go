package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func creditEvent(userID, amount string) Event {
	return Event{
		Table:  "user_credits",
		Type:   TypeUpdate,
		Record: json.RawMessage(`{"user_id":"` + userID + `","amount":` + amount + `}`),
	}
}

func TestHub_Filter(t *testing.T) {
	hub := NewHub()

	var mine, all int32
	unsubMine := hub.Subscribe("user_credits", Filter{Column: "user_id", Value: "u1"}, func(Event) { atomic.AddInt32(&mine, 1) })
	defer unsubMine()
	unsubAll := hub.Subscribe("user_credits", Filter{}, func(Event) { atomic.AddInt32(&all, 1) })
	defer unsubAll()

	assert.Equal(t, 2, hub.Publish(creditEvent("u1", "300")))
	assert.Equal(t, 1, hub.Publish(creditEvent("u2", "10")))
	assert.Equal(t, 0, hub.Publish(Event{Table: "payments", Record: json.RawMessage(`{"user_id":"u1"}`)}))

	assert.EqualValues(t, 1, atomic.LoadInt32(&mine))
	assert.EqualValues(t, 2, atomic.LoadInt32(&all))
}

func TestHub_UnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub()

	var calls int32
	unsub := hub.Subscribe("user_credits", Filter{Column: "user_id", Value: "u1"}, func(Event) { atomic.AddInt32(&calls, 1) })
	hub.Publish(creditEvent("u1", "1"))

	unsub()
	unsub()

	hub.Publish(creditEvent("u1", "2"))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Equal(t, 0, hub.Len())
}

func TestListener_Consume(t *testing.T) {
	logger.Log = zap.NewNop()
	hub := NewHub()

	got := make(chan Event, 4)
	hub.Subscribe("user_credits", Filter{Column: "user_id", Value: "u1"}, func(ev Event) { got <- ev })

	notify := make(chan *pq.Notification)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	l := NewListener("", hub)
	go func() { done <- l.consume(ctx, notify, func() error { return errors.New("not connected") }) }()

	notify <- &pq.Notification{Channel: Channel, Extra: `not json`}
	notify <- nil
	notify <- &pq.Notification{Channel: Channel, Extra: `{"table":"user_credits","type":"UPDATE","record":{"user_id":"u1","amount":250}}`}

	select {
	case ev := <-got:
		assert.Equal(t, TypeUpdate, ev.Type)
		assert.JSONEq(t, `{"user_id":"u1","amount":250}`, string(ev.Record))
	case <-time.After(time.Second):
		t.Fatal("event was not published")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
	assert.Empty(t, got)
}
