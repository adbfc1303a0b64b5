// Package poller drives the evaluation cycles: per area, fetch candidates,
// run them through the engine, admit the unseen ones, and hand the batch to
// the delivery collaborator.
package poller

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/thatguydan86/rentradar/pkg/areas"
	"github.com/thatguydan86/rentradar/pkg/dedup"
	"github.com/thatguydan86/rentradar/pkg/engine"
)

// Logger abstracts logging so callers can use logrus, stdlib log, or any
// other logger that satisfies this interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// nopLogger silently discards all messages.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Fetcher is the external search collaborator.
type Fetcher interface {
	Fetch(ctx context.Context, cfg areas.Config) ([]engine.RawCandidate, error)
}

// Notifier is the external delivery collaborator.
type Notifier interface {
	Notify(ctx context.Context, lead engine.Lead) error
}

// Archiver records emitted leads; typically *storage.DB.
type Archiver interface {
	RecordLead(ctx context.Context, runID string, lead engine.Lead) error
}

// State names the phase the poll loop is in. Informational only.
type State string

const (
	StateIdle       State = "idle"
	StateFetching   State = "fetching"
	StateEvaluating State = "evaluating"
	StateDelivering State = "delivering"
	StateSleeping   State = "sleeping"
	StateBackoff    State = "error_backoff"
)

// Config holds everything a Poller needs. Fetcher and at least one area are
// required; everything else is optional.
type Config struct {
	Areas    []areas.Config
	Fetcher  Fetcher
	Notifier Notifier // nil = no delivery
	Archiver Archiver // nil = no archive
	Log      Logger   // nil = no logging

	Interval time.Duration // base sleep between cycles
	Jitter   time.Duration // uniform random offset in ±Jitter
	Backoff  time.Duration // cooldown after a cycle-level failure

	// OnLead is called for each newly-admitted lead before delivery.
	// Enables the CLI to stream-print leads as they happen. Nil = no callback.
	OnLead func(lead engine.Lead)
}

// Poller owns the seen-set and runs cycles sequentially: one cycle at a
// time, areas in declared order, candidates in fetch order.
type Poller struct {
	cfg   Config
	seen  *dedup.SeenSet
	state State
}

func New(cfg Config) (*Poller, error) {
	if cfg.Fetcher == nil {
		return nil, fmt.Errorf("poller: fetcher is required")
	}
	if len(cfg.Areas) == 0 {
		return nil, fmt.Errorf("poller: at least one area is required")
	}
	for i, a := range cfg.Areas {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("poller: area %d: %w", i, err)
		}
	}
	if cfg.Log == nil {
		cfg.Log = nopLogger{}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 5 * time.Minute
	}
	return &Poller{cfg: cfg, seen: dedup.NewSeenSet(), state: StateIdle}, nil
}

// State returns the loop's current phase.
func (p *Poller) State() State {
	return p.state
}

func (p *Poller) enter(s State) {
	p.state = s
	p.cfg.Log.Debugf("state: %s", s)
}

// RunCycle performs one full evaluation cycle and returns the batch of
// newly-admitted leads. Per-area fetch failures and per-lead delivery
// failures are logged and isolated; they never abort the cycle.
func (p *Poller) RunCycle(ctx context.Context) ([]engine.Lead, error) {
	runID := uuid.NewString()
	log := p.cfg.Log
	log.Infof("cycle %s: polling %d areas", runID, len(p.cfg.Areas))

	var batch []engine.Lead
	for _, area := range p.cfg.Areas {
		p.enter(StateFetching)
		candidates, err := p.cfg.Fetcher.Fetch(ctx, area)
		if err != nil {
			log.Warnf("fetch failed for %s, skipping this cycle: %v", area.Name, err)
			continue
		}
		log.Debugf("%s: %d candidates", area.Name, len(candidates))

		p.enter(StateEvaluating)
		for _, c := range candidates {
			lead, outcome := engine.Evaluate(c, area)
			if !outcome.Eligible {
				log.Debugf("%s: dropped %s (%s)", area.Name, c.ID, outcome.Reason)
				continue
			}
			if !p.seen.Admit(lead.ID) {
				continue
			}
			batch = append(batch, *lead)
			if p.cfg.Archiver != nil {
				if err := p.cfg.Archiver.RecordLead(ctx, runID, *lead); err != nil {
					log.Warnf("could not archive lead %s: %v", lead.ID, err)
				}
			}
		}
	}

	p.enter(StateDelivering)
	for _, lead := range batch {
		if p.cfg.OnLead != nil {
			p.cfg.OnLead(lead)
		}
		if p.cfg.Notifier == nil {
			continue
		}
		if err := p.cfg.Notifier.Notify(ctx, lead); err != nil {
			log.Warnf("delivery failed for %s: %v", lead.ID, err)
		}
	}

	log.Infof("cycle %s: %d new leads (%d ids tracked)", runID, len(batch), p.seen.Len())
	return batch, nil
}

// Run loops RunCycle forever: sleep interval±jitter after a clean cycle,
// the backoff cooldown after a failed one. Only ctx cancellation stops it.
func (p *Poller) Run(ctx context.Context) error {
	for {
		_, err := p.safeCycle(ctx)

		var wait time.Duration
		if err != nil {
			p.enter(StateBackoff)
			p.cfg.Log.Errorf("cycle failed: %v (retrying in %s)", err, p.cfg.Backoff)
			wait = p.cfg.Backoff
		} else {
			p.enter(StateSleeping)
			wait = p.cfg.Interval + jitter(p.cfg.Jitter)
			p.cfg.Log.Infof("sleeping for %s", wait)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// safeCycle converts a panicking cycle into a cycle-level error so the
// daemon degrades to backoff instead of dying.
func (p *Poller) safeCycle(ctx context.Context) (leads []engine.Lead, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cycle panic: %v", r)
		}
	}()
	return p.RunCycle(ctx)
}

// jitter returns a uniform random duration in [-j, +j].
func jitter(j time.Duration) time.Duration {
	if j <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(2*j)+1)) - j
}
