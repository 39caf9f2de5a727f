package payflow

import (
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateWaiting   State = "WAITING"
	StateActivated State = "ACTIVATED"
	StateRejected  State = "REJECTED"
)

func (s State) IsTerminal() bool {
	return s == StateActivated || s == StateRejected
}

type EventType string

const (
	EventGuard        EventType = "guard"
	EventStatus       EventType = "status"
	EventBalance      EventType = "balance"
	EventNotification EventType = "notification"
	EventNavigate     EventType = "navigate"
	EventState        EventType = "state"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"

	TitleConfirmed = "Zahlung bestätigt"
	TitleRejected  = "Zahlung abgelehnt"
)

// Event is one side effect of a flow, in the order the flow produced it.
type Event struct {
	Type        EventType        `json:"type"`
	Active      *bool            `json:"active,omitempty"`
	Status      models.Status    `json:"status,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Level       string           `json:"level,omitempty"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Route       string           `json:"route,omitempty"`
	Hard        bool             `json:"hard,omitempty"`
	State       State            `json:"state,omitempty"`
	Signal      string           `json:"signal,omitempty"`
}

type Sink interface {
	Emit(Event)
}

type SinkFunc func(Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

func guardEvent(active bool) Event {
	return Event{Type: EventGuard, Active: &active}
}
