// Package tracker records page visits without ever letting the visit
// log fail or slow down the page that triggered it. Visits go through a
// bounded queue drained by a single worker; a full queue drops the
// visit and counts the drop.
package tracker

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sandeeph2706/portfolio-backend/database"
	"github.com/sandeeph2706/portfolio-backend/metrics"
	"github.com/sandeeph2706/portfolio-backend/models"
)

type Tracker struct {
	visits    chan models.Visitor
	repo      *database.VisitorRepo
	logger    zerolog.Logger
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a tracker with the given queue capacity and starts its
// worker goroutine.
func New(repo *database.VisitorRepo, queueSize int) *Tracker {
	if queueSize <= 0 {
		queueSize = 256
	}

	t := &Tracker{
		visits: make(chan models.Visitor, queueSize),
		repo:   repo,
		logger: log.With().Str("component", "tracker").Logger(),
	}

	t.wg.Add(1)
	go t.drain()

	return t
}

// Track enqueues a visit. It never blocks: when the queue is full the
// visit is dropped, logged, and counted.
func (t *Tracker) Track(visitor models.Visitor) {
	if visitor.PageVisited == "" {
		visitor.PageVisited = "home"
	}

	select {
	case t.visits <- visitor:
	default:
		metrics.VisitsDropped.Inc()
		t.logger.Warn().
			Str("ip", visitor.IPAddress).
			Str("page", visitor.PageVisited).
			Msg("tracker queue full, dropping visit")
	}
}

func (t *Tracker) drain() {
	defer t.wg.Done()

	for visitor := range t.visits {
		if err := t.repo.Add(&visitor); err != nil {
			// Best effort: the visit is lost but nothing else is affected
			t.logger.Warn().Err(err).Msg("failed to record visit")
			continue
		}
		metrics.VisitsTracked.Inc()
	}
}

// Close stops accepting visits and waits for the queue to drain.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() {
		close(t.visits)
	})
	t.wg.Wait()
}
