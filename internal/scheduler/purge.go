package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// Purger implements ports.PurgeScheduler: a settled request lingers for a
// short grace window so clients can still read its terminal status, then is
// deleted. Timers are in-memory only; restarts lose them, which the sweep in
// this package reconciles.
type Purger struct {
	requestRepo ports.RequestRepository
	grace       time.Duration
	log         zerolog.Logger

	mu     sync.Mutex
	timers map[int64]*time.Timer
}

// NewPurger creates a Purger with the given grace window.
func NewPurger(requestRepo ports.RequestRepository, grace time.Duration, log zerolog.Logger) *Purger {
	return &Purger{
		requestRepo: requestRepo,
		grace:       grace,
		log:         log,
		timers:      make(map[int64]*time.Timer),
	}
}

// Schedule arms a deletion timer for the request. Scheduling an id that is
// already armed resets its timer.
func (p *Purger) Schedule(requestID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.timers[requestID]; ok {
		t.Stop()
	}
	p.timers[requestID] = time.AfterFunc(p.grace, func() {
		p.fire(requestID)
	})
}

// Cancel disarms a pending timer. Unknown ids are ignored.
func (p *Purger) Cancel(requestID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.timers[requestID]; ok {
		t.Stop()
		delete(p.timers, requestID)
	}
}

// fire deletes the request. Failures are logged and never retried; the sweep
// picks up anything left behind.
func (p *Purger) fire(requestID int64) {
	p.mu.Lock()
	delete(p.timers, requestID)
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.requestRepo.Delete(ctx, requestID); err != nil {
		p.log.Warn().Err(err).Int64("request_id", requestID).Msg("purge failed")
		return
	}
	p.log.Debug().Int64("request_id", requestID).Msg("request purged")
}

// Stop disarms every pending timer.
func (p *Purger) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, t := range p.timers {
		t.Stop()
		delete(p.timers, id)
	}
}
