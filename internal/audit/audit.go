package audit

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/loketh/ledger/internal/adapter"
	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/store"
)

// MismatchKind identifies which derived value disagrees with the purchase history
type MismatchKind string

const (
	MismatchSoldCount     MismatchKind = "sold_count"
	MismatchQuota         MismatchKind = "quota"
	MismatchEventsOf      MismatchKind = "events_of"
	MismatchTicketsOf     MismatchKind = "tickets_of"
	MismatchHasTicket     MismatchKind = "has_ticket"
	MismatchOrganizerOwns MismatchKind = "organizer_owns"
)

// Mismatch is one disagreement between a maintained index and its rebuilt value
type Mismatch struct {
	Kind     MismatchKind    `json:"kind"`
	EventID  uint64          `json:"event_id,omitempty"`
	Account  *domain.Account `json:"account,omitempty"`
	Expected string          `json:"expected"`
	Actual   string          `json:"actual"`
}

// Report is the outcome of one audit run
type Report struct {
	Events     uint64     `json:"events"`
	Purchases  uint64     `json:"purchases"`
	Accounts   int        `json:"accounts"`
	Mismatches []Mismatch `json:"mismatches"`
	DurationMs int64      `json:"duration_ms"`
}

// OK reports whether the indices match the purchase history
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Config holds configuration for the auditor
type Config struct {
	WorkerPoolSize  int // Concurrent event scans
	WorkerQueueSize int // Pending scans before Submit blocks
}

// Auditor rebuilds the ownership indices from events and purchases
type Auditor interface {
	Run(ctx context.Context) (*Report, error)
}

type auditor struct {
	config Config
	store  store.Store
	clock  adapter.Clock
}

// NewAuditor creates an auditor over the store
func NewAuditor(cfg Config, st store.Store, clock adapter.Clock) Auditor {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 4
	}
	if cfg.WorkerQueueSize <= 0 {
		cfg.WorkerQueueSize = 100
	}
	return &auditor{config: cfg, store: st, clock: clock}
}

type ticketRef struct {
	eventID  uint64
	sequence uint64
}

// rebuild accumulates the indices derived from a full scan
type rebuild struct {
	mu         sync.Mutex
	eventsOf   map[domain.Account][]uint64
	ticketsOf  map[domain.Account][]ticketRef
	mismatches []Mismatch
	purchases  uint64
	errs       []error
}

func (r *rebuild) addMismatch(m Mismatch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mismatches = append(r.mismatches, m)
}

func (r *rebuild) addError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// Run scans every event on a worker pool, then compares the rebuilt indices
// with the ones the store maintains
func (a *auditor) Run(ctx context.Context) (*Report, error) {
	startTime := a.clock.Now()

	total, err := a.store.TotalEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get total events: %w", err)
	}

	logger.InfoCtx(ctx, "Starting index audit",
		zap.Uint64("events", total),
		zap.Int("worker_pool_size", a.config.WorkerPoolSize))

	r := &rebuild{
		eventsOf:  make(map[domain.Account][]uint64),
		ticketsOf: make(map[domain.Account][]ticketRef),
	}

	pool := pond.NewPool(
		a.config.WorkerPoolSize,
		pond.WithQueueSize(a.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	for id := domain.FIRST_EVENT_ID; id <= total; id++ {
		pool.Submit(func() {
			if err := a.scanEvent(ctx, id, r); err != nil {
				r.addError(err)
			}
		})
	}
	pool.StopAndWait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(r.errs) > 0 {
		return nil, errors.Join(r.errs...)
	}

	if err := a.compare(ctx, r); err != nil {
		return nil, err
	}

	report := &Report{
		Events:     total,
		Purchases:  r.purchases,
		Mismatches: r.mismatches,
		DurationMs: a.clock.Now().Sub(startTime).Milliseconds(),
	}
	accounts := make(map[domain.Account]struct{})
	for acc := range r.eventsOf {
		accounts[acc] = struct{}{}
	}
	for acc := range r.ticketsOf {
		accounts[acc] = struct{}{}
	}
	report.Accounts = len(accounts)

	sort.SliceStable(report.Mismatches, func(i, j int) bool {
		return report.Mismatches[i].EventID < report.Mismatches[j].EventID
	})

	if report.OK() {
		logger.InfoCtx(ctx, "Index audit passed",
			zap.Uint64("events", report.Events),
			zap.Uint64("purchases", report.Purchases),
			zap.Int64("duration_ms", report.DurationMs))
	} else {
		logger.WarnCtx(ctx, "Index audit found mismatches",
			zap.Int("mismatches", len(report.Mismatches)),
			zap.Uint64("events", report.Events))
	}

	return report, nil
}

func (a *auditor) scanEvent(ctx context.Context, eventID uint64, r *rebuild) error {
	event, err := a.store.GetEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to get event %d: %w", eventID, err)
	}

	purchases, err := a.store.EventPurchases(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to get purchases of event %d: %w", eventID, err)
	}

	if event.SoldCount != uint64(len(purchases)) {
		r.addMismatch(Mismatch{
			Kind:     MismatchSoldCount,
			EventID:  eventID,
			Expected: fmt.Sprint(len(purchases)),
			Actual:   fmt.Sprint(event.SoldCount),
		})
	}
	if event.SoldCount > event.Quota {
		r.addMismatch(Mismatch{
			Kind:     MismatchQuota,
			EventID:  eventID,
			Expected: fmt.Sprintf("<= %d", event.Quota),
			Actual:   fmt.Sprint(event.SoldCount),
		})
	}

	owns, err := a.store.OrganizerOwns(ctx, event.Organizer, eventID)
	if err != nil {
		return fmt.Errorf("failed to check organizer of event %d: %w", eventID, err)
	}
	if !owns {
		organizer := event.Organizer
		r.addMismatch(Mismatch{
			Kind:     MismatchOrganizerOwns,
			EventID:  eventID,
			Account:  &organizer,
			Expected: "true",
			Actual:   "false",
		})
	}

	for _, p := range purchases {
		has, err := a.store.HasTicket(ctx, p.Participant, eventID)
		if err != nil {
			return fmt.Errorf("failed to check ticket of event %d: %w", eventID, err)
		}
		if !has {
			participant := p.Participant
			r.addMismatch(Mismatch{
				Kind:     MismatchHasTicket,
				EventID:  eventID,
				Account:  &participant,
				Expected: "true",
				Actual:   "false",
			})
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.eventsOf[event.Organizer] = append(r.eventsOf[event.Organizer], eventID)
	for _, p := range purchases {
		r.ticketsOf[p.Participant] = append(r.ticketsOf[p.Participant], ticketRef{eventID: eventID, sequence: p.Sequence})
	}
	r.purchases += uint64(len(purchases))
	return nil
}

// compare checks the maintained per-account lists against the rebuilt ones
func (a *auditor) compare(ctx context.Context, r *rebuild) error {
	for organizer, ids := range r.eventsOf {
		slices.Sort(ids)

		actual, err := a.store.EventsOfOwner(ctx, organizer)
		if err != nil {
			return fmt.Errorf("failed to get events of %s: %w", organizer.Hex(), err)
		}
		if !slices.Equal(ids, actual) {
			acc := organizer
			r.mismatches = append(r.mismatches, Mismatch{
				Kind:     MismatchEventsOf,
				Account:  &acc,
				Expected: fmt.Sprint(ids),
				Actual:   fmt.Sprint(actual),
			})
		}
	}

	for participant, refs := range r.ticketsOf {
		sort.Slice(refs, func(i, j int) bool { return refs[i].sequence < refs[j].sequence })
		ids := make([]uint64, len(refs))
		for i, ref := range refs {
			ids[i] = ref.eventID
		}

		actual, err := a.store.TicketsOfOwner(ctx, participant)
		if err != nil {
			return fmt.Errorf("failed to get tickets of %s: %w", participant.Hex(), err)
		}
		if !slices.Equal(ids, actual) {
			acc := participant
			r.mismatches = append(r.mismatches, Mismatch{
				Kind:     MismatchTicketsOf,
				Account:  &acc,
				Expected: fmt.Sprint(ids),
				Actual:   fmt.Sprint(actual),
			})
		}
	}

	return nil
}
