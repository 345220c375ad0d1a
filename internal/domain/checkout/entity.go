package checkout

import (
	"fmt"
	"time"

	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// Attempt is one checkout run. The line snapshot is fixed at creation; the
// results grow one per line, in snapshot order, while InProgress.
type Attempt struct {
	id         uuid.UUID
	lines      []cart.Line
	results    []LineResult
	status     Status
	aborted    bool
	startedAt  time.Time
	finishedAt time.Time
}

func Start(id uuid.UUID, lines []cart.Line, now time.Time) (*Attempt, error) {
	if len(lines) == 0 {
		return nil, errs.Mark(errs.ErrEmptyCart, errs.ErrValidation)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	snapshot := make([]cart.Line, len(lines))
	copy(snapshot, lines)

	a := &Attempt{
		id:        id,
		lines:     snapshot,
		results:   make([]LineResult, 0, len(lines)),
		status:    StatusIdle,
		startedAt: now,
	}
	if err := a.transition(StatusInProgress); err != nil {
		return nil, err
	}
	return a, nil
}

// Next returns the first line without a result.
func (a *Attempt) Next() (cart.Line, bool) {
	if a.status != StatusInProgress || len(a.results) >= len(a.lines) {
		return cart.Line{}, false
	}
	return a.lines[len(a.results)], true
}

// Record stores the result of the current line. A fatal rejection marks
// every later line NotAttempted.
func (a *Attempt) Record(result LineResult) error {
	if a.status != StatusInProgress {
		return errs.Wrapf(errs.ErrIllegalTransition, "record on %s attempt", a.status)
	}
	if len(a.results) >= len(a.lines) {
		return errs.New("all lines already have a result")
	}

	a.results = append(a.results, result)
	if result.kind == ResultRejected && result.reason.IsFatal() {
		a.aborted = true
		for len(a.results) < len(a.lines) {
			a.results = append(a.results, NotAttempted())
		}
	}
	return nil
}

// Finish moves the attempt to its terminal status once every line has a result.
func (a *Attempt) Finish(now time.Time) error {
	if len(a.results) != len(a.lines) {
		return errs.Wrapf(errs.ErrIllegalTransition, "finish with %d/%d results", len(a.results), len(a.lines))
	}

	committed := a.CommittedCount()
	var next Status
	switch {
	case a.aborted:
		next = StatusAbortedFatal
	case committed == len(a.lines):
		next = StatusAllCommitted
	case committed == 0:
		next = StatusNoneCommitted
	default:
		next = StatusPartiallyCommitted
	}

	if err := a.transition(next); err != nil {
		return err
	}
	a.finishedAt = now
	return nil
}

func (a *Attempt) transition(to Status) error {
	if !CanTransitionTo(a.status, to) {
		return errs.Wrapf(errs.ErrIllegalTransition, "%s -> %s", a.status, to)
	}
	a.status = to
	return nil
}

func (a *Attempt) ID() uuid.UUID         { return a.id }
func (a *Attempt) Status() Status        { return a.status }
func (a *Attempt) StartedAt() time.Time  { return a.startedAt }
func (a *Attempt) FinishedAt() time.Time { return a.finishedAt }

func (a *Attempt) Lines() []cart.Line {
	out := make([]cart.Line, len(a.lines))
	copy(out, a.lines)
	return out
}

func (a *Attempt) Results() []LineResult {
	out := make([]LineResult, len(a.results))
	copy(out, a.results)
	return out
}

func (a *Attempt) CommittedCount() int {
	n := 0
	for _, r := range a.results {
		if r.IsCommitted() {
			n++
		}
	}
	return n
}

func (a *Attempt) CommittedItemIDs() []catalog.ID {
	var ids []catalog.ID
	for i, r := range a.results {
		if r.IsCommitted() {
			ids = append(ids, a.lines[i].ItemID())
		}
	}
	return ids
}

// Message is a one-line, user-facing description of the terminal status.
func (a *Attempt) Message() string {
	total := len(a.lines)
	committed := a.CommittedCount()
	switch a.status {
	case StatusAllCommitted:
		return "Order placed successfully! Thank you for your purchase."
	case StatusPartiallyCommitted:
		return fmt.Sprintf("%d of %d items were purchased; the rest remain in your cart.", committed, total)
	case StatusNoneCommitted:
		return "None of the items could be purchased; your cart is unchanged."
	case StatusAbortedFatal:
		return fmt.Sprintf("Checkout stopped after %d of %d items; please sign in again or retry later.", committed, total)
	default:
		return "Checkout in progress."
	}
}
