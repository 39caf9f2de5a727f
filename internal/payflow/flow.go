package payflow

import (
	"context"
	"sync"
	"time"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/metrics"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/realtime"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultCreditInterval = 3 * time.Second
	DefaultDashboardRoute = "/dashboard"
	DefaultAuthRoute      = "/auth"

	creditsTable = "user_credits"

	SignalPoll     = "poll"
	SignalPush     = "push"
	SignalFallback = "fallback"
	SignalInitial  = "initial"
)

var DefaultThreshold = decimal.NewFromInt(250)

type Options struct {
	UserID    uuid.UUID
	PaymentID *uuid.UUID
	SessionID string

	Enabled          bool
	PaymentSubmitted bool
	Activation       bool
	NoAutoRedirect   bool

	// Threshold is the inclusive activation balance. Zero means DefaultThreshold, so a flow
	// cannot be configured to activate on an empty balance.
	Threshold      decimal.Decimal
	PollInterval   time.Duration
	CreditInterval time.Duration
	RedirectDelay  time.Duration

	DashboardRoute string
	AuthRoute      string
}

func (o Options) withDefaults() Options {
	if o.Threshold.IsZero() {
		o.Threshold = DefaultThreshold
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.CreditInterval <= 0 {
		o.CreditInterval = DefaultCreditInterval
	}
	if o.DashboardRoute == "" {
		o.DashboardRoute = DefaultDashboardRoute
	}
	if o.AuthRoute == "" {
		o.AuthRoute = DefaultAuthRoute
	}
	return o
}

func (o Options) activation() bool {
	return o.Activation && o.PaymentSubmitted
}

// Flow drives one payment from WAITING to ACTIVATED or REJECTED. The status poller and the balance
// checks are independent producers. The first one to observe a terminal condition resolves the
// flow under mu, every later signal is dropped.
type Flow struct {
	backend Backend
	opts    Options
	sink    Sink
	credits *CreditReader

	kick chan struct{}
	done chan struct{}

	mu       sync.Mutex
	state    State
	signal   string
	resolved bool
	stopped  bool
}

func NewFlow(backend Backend, opts Options, sink Sink) *Flow {
	opts = opts.withDefaults()
	return &Flow{
		backend: backend,
		opts:    opts,
		sink:    sink,
		credits: NewCreditReader(backend.Credits, opts.UserID),
		kick:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		state:   StateWaiting,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Credits exposes the flow's balance cache to display code.
func (f *Flow) Credits() *CreditReader {
	return f.credits
}

// Run blocks until the flow resolves or ctx is cancelled and returns the final state. Everything
// the flow started is stopped before Run returns. After a resolution the navigation, if any, is
// emitted last. Cancelling ctx while it waits drops it.
func (f *Flow) Run(ctx context.Context) State {
	if !f.opts.Enabled || (f.opts.PaymentID == nil && !f.opts.activation()) {
		return f.State()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	f.sink.Emit(guardEvent(true))

	var wg sync.WaitGroup
	if f.opts.PaymentID != nil {
		poller := NewPoller(f.backend.Payments, f.opts.UserID, f.opts.PaymentID, f.opts.PollInterval)
		poller.OnStatus = f.onStatus
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := poller.Run(runCtx)
			if err != nil {
				return
			}
			f.onTerminalStatus(status)
		}()
	}

	if f.opts.activation() {
		f.watchBalance(runCtx)
	} else {
		select {
		case <-runCtx.Done():
		case <-f.done:
		}
	}

	f.teardown()
	cancel()
	wg.Wait()

	state := f.State()
	if state == StateActivated && !f.opts.NoAutoRedirect {
		delay := f.opts.RedirectDelay
		if f.opts.activation() {
			delay = 0
		}
		f.navigate(ctx, delay)
	}
	return state
}

func (f *Flow) watchBalance(ctx context.Context) {
	var unsubscribe func()
	if f.backend.Changes != nil {
		filter := realtime.Filter{Column: "user_id", Value: f.opts.UserID.String()}
		unsubscribe = f.backend.Changes.Subscribe(creditsTable, filter, func(realtime.Event) {
			select {
			case f.kick <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		if unsubscribe != nil {
			unsubscribe()
		}
	}()

	ticker := time.NewTicker(f.opts.CreditInterval)
	defer ticker.Stop()

	f.checkBalance(ctx, SignalInitial)

	for {
		select {
		case <-ctx.Done():
			return
		case <-f.done:
			return
		case <-f.kick:
			f.checkBalance(ctx, SignalPush)
		case <-ticker.C:
			f.checkBalance(ctx, SignalFallback)
		}
	}
}

func (f *Flow) checkBalance(ctx context.Context, signal string) {
	balance, ok := f.credits.Refresh(ctx)
	if !ok || ctx.Err() != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolved || f.stopped {
		return
	}

	f.sink.Emit(Event{Type: EventBalance, Balance: &balance, Signal: signal})
	if balance.GreaterThanOrEqual(f.opts.Threshold) {
		f.resolveLocked(StateActivated, signal)
	}
}

func (f *Flow) onStatus(status models.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolved || f.stopped {
		return
	}
	f.sink.Emit(Event{Type: EventStatus, Status: status})
}

func (f *Flow) onTerminalStatus(status models.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolved || f.stopped {
		return
	}

	switch status {
	case models.StatusCompleted:
		f.resolveLocked(StateActivated, SignalPoll)
	case models.StatusRejected:
		f.resolveLocked(StateRejected, SignalPoll)
	}
}

// resolveLocked must be called with mu held and only while the flow is unresolved.
func (f *Flow) resolveLocked(state State, signal string) {
	f.resolved = true
	f.state = state
	f.signal = signal
	close(f.done)

	f.sink.Emit(Event{Type: EventState, State: state, Signal: signal})
	switch state {
	case StateActivated:
		description := "Ihre Einzahlung wurde gutgeschrieben."
		if f.opts.activation() {
			description = "Ihr Konto ist jetzt aktiviert."
		}
		f.sink.Emit(Event{Type: EventNotification, Level: LevelSuccess, Title: TitleConfirmed, Description: description})
	case StateRejected:
		f.sink.Emit(Event{Type: EventNotification, Level: LevelError, Title: TitleRejected,
			Description: "Ihre Einzahlung wurde abgelehnt. Bitte kontaktieren Sie den Support."})
	}

	metrics.RecordFlowResolution(string(state), signal)
	logger.Log.Info("payment flow resolved",
		zap.Stringer("user", f.opts.UserID), zap.String("state", string(state)), zap.String("signal", signal))
}

func (f *Flow) teardown() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.stopped = true
	f.sink.Emit(guardEvent(false))
}

func (f *Flow) navigate(ctx context.Context, delay time.Duration) {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
	if ctx.Err() != nil {
		return
	}

	route, hard := f.opts.DashboardRoute, false
	if !f.sessionActive(ctx) {
		route, hard = f.opts.AuthRoute, true
	}
	if ctx.Err() != nil {
		return
	}
	f.sink.Emit(Event{Type: EventNavigate, Route: route, Hard: hard})
}

func (f *Flow) sessionActive(ctx context.Context) bool {
	if f.backend.Sessions == nil {
		return true
	}
	active, err := f.backend.Sessions.IsActive(ctx, f.opts.SessionID)
	if err != nil {
		logger.Log.Warn("session check failed before navigation", zap.Stringer("user", f.opts.UserID), zap.Error(err))
		return false
	}
	return active
}
