package queries

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/usecase/shared"
)

const DefaultSettleWindow = 500 * time.Millisecond

// QueryRequest is created at dispatch time and never mutated. SequenceNumber
// is the only ordering key used to discard stale responses.
type QueryRequest struct {
	Criteria       catalog.FilterCriteria
	SequenceNumber uint64
}

// Result is what the sequencer publishes: either items or the error of the
// request it answers.
type Result struct {
	Request     QueryRequest
	Items       []catalog.Item
	Err         error
	PublishedAt time.Time
}

func (r Result) Failed() bool { return r.Err != nil }

type Publisher interface {
	Publish(Result)
}

// Sequencer turns a stream of criteria edits into debounced catalog queries
// and publishes only the response to the most recently dispatched request.
//
// Submit never blocks on the network. Responses that arrive after a newer
// request was dispatched are dropped; no transport-level cancel is issued.
type Sequencer struct {
	gateway   shared.CatalogGateway
	publisher Publisher
	clock     clock.Clock
	logger    *slog.Logger
	settle    time.Duration

	mu         sync.Mutex
	pending    *catalog.FilterCriteria
	timer      clock.Timer
	generation uint64
	highest    uint64
	last       *QueryRequest
	lastFailed bool
	published  uint64
	closed     bool

	// serializes accept-and-publish so an older accepted result can never be
	// published after a newer one.
	publishMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSequencer(
	gateway shared.CatalogGateway,
	publisher Publisher,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.SearchConfig,
) *Sequencer {
	settle := cfg.SettleWindow
	if settle <= 0 {
		settle = DefaultSettleWindow
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Sequencer{
		gateway:   gateway,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
		settle:    settle,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Submit records criteria as the latest input and restarts the settle timer.
func (s *Sequencer) Submit(criteria catalog.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	c := criteria
	s.pending = &c
	if s.timer != nil {
		s.timer.Stop()
	}
	s.generation++
	gen := s.generation
	s.timer = s.clock.AfterFunc(s.settle, func() { s.onSettle(gen) })
}

// Refresh dispatches immediately, skipping the settle window and
// de-duplication. It uses the pending criteria if any, otherwise the last
// dispatched ones, otherwise empty criteria.
func (s *Sequencer) Refresh() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.stopTimerLocked()

	var criteria catalog.FilterCriteria
	switch {
	case s.pending != nil:
		criteria = *s.pending
	case s.last != nil:
		criteria = s.last.Criteria
	}
	s.pending = nil
	req := s.nextRequestLocked(criteria)
	s.mu.Unlock()

	s.launch(req)
}

// HighestDispatched returns the sequence number of the newest request, 0 if
// nothing was dispatched yet.
func (s *Sequencer) HighestDispatched() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highest
}

// Close stops the settle timer, cancels in-flight calls and waits for them.
func (s *Sequencer) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopTimerLocked()
	s.pending = nil
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func (s *Sequencer) onSettle(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.generation || s.pending == nil {
		s.mu.Unlock()
		return
	}
	criteria := *s.pending
	s.pending = nil
	s.timer = nil

	if s.last != nil && s.last.Criteria.Equal(criteria) && !s.lastFailed {
		s.mu.Unlock()
		s.logger.Debug("Catalog query skipped, criteria unchanged", "sequence", s.last.SequenceNumber)
		return
	}
	req := s.nextRequestLocked(criteria)
	s.mu.Unlock()

	s.launch(req)
}

func (s *Sequencer) nextRequestLocked(criteria catalog.FilterCriteria) QueryRequest {
	s.highest++
	req := QueryRequest{Criteria: criteria, SequenceNumber: s.highest}
	s.last = &req
	s.lastFailed = false
	return req
}

func (s *Sequencer) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *Sequencer) launch(req QueryRequest) {
	s.logger.Debug("Catalog query dispatched", "sequence", req.SequenceNumber, "text", req.Criteria.Text())
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		items, err := s.gateway.Search(s.ctx, req.Criteria)
		s.complete(req, items, err)
	}()
}

// complete accepts a response only if it answers the highest dispatched
// request and that request has not been published yet.
func (s *Sequencer) complete(req QueryRequest, items []catalog.Item, err error) bool {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	accept := !s.closed && req.SequenceNumber == s.highest && req.SequenceNumber > s.published
	if accept {
		s.published = req.SequenceNumber
		s.lastFailed = err != nil
	}
	highest := s.highest
	s.mu.Unlock()

	if !accept {
		s.logger.Debug("Catalog response discarded", "sequence", req.SequenceNumber, "highest", highest)
		return false
	}

	if err != nil {
		s.logger.Warn("Catalog query failed", "sequence", req.SequenceNumber, "error", err.Error())
	}
	s.publisher.Publish(Result{
		Request:     req,
		Items:       items,
		Err:         err,
		PublishedAt: s.clock.Now(),
	})
	return true
}
