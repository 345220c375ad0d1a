//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/usecase/queries"
	"storefront-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	settle      = 500 * time.Millisecond
	waitTimeout = 2 * time.Second
	quietPeriod = 50 * time.Millisecond
)

type reply struct {
	items []catalog.Item
	err   error
}

type searchCall struct {
	criteria catalog.FilterCriteria
	reply    chan reply
}

func (c searchCall) respond(items []catalog.Item, err error) {
	c.reply <- reply{items: items, err: err}
}

// blockingGateway parks every Search until the test responds to it.
type blockingGateway struct {
	calls chan searchCall
}

func newBlockingGateway() *blockingGateway {
	return &blockingGateway{calls: make(chan searchCall, 16)}
}

func (g *blockingGateway) Search(ctx context.Context, criteria catalog.FilterCriteria) ([]catalog.Item, error) {
	call := searchCall{criteria: criteria, reply: make(chan reply, 1)}
	g.calls <- call
	select {
	case r := <-call.reply:
		return r.items, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *blockingGateway) Item(context.Context, catalog.ID) (catalog.Item, error) {
	return catalog.Item{}, errors.New("not used")
}

func (g *blockingGateway) Categories(context.Context) ([]catalog.Category, error) {
	return nil, errors.New("not used")
}

type fixture struct {
	t         *testing.T
	clock     *clock.MockClock
	gateway   *blockingGateway
	feed      *queries.Feed
	results   <-chan queries.Result
	sequencer *queries.Sequencer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		t:       t,
		clock:   clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
		gateway: newBlockingGateway(),
		feed:    queries.NewFeed(),
	}
	results, cancel := f.feed.Subscribe()
	f.results = results
	f.sequencer = queries.NewSequencer(
		f.gateway,
		f.feed,
		f.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		config.SearchConfig{SettleWindow: settle},
	)
	t.Cleanup(func() {
		f.sequencer.Close()
		cancel()
	})
	return f
}

func (f *fixture) criteria(text string) catalog.FilterCriteria {
	fc, err := catalog.NewFilterCriteria(text, nil, nil, nil)
	require.NoError(f.t, err)
	return fc
}

func (f *fixture) nextCall() searchCall {
	f.t.Helper()
	select {
	case c := <-f.gateway.calls:
		return c
	case <-time.After(waitTimeout):
		f.t.Fatal("expected a search call")
		return searchCall{}
	}
}

func (f *fixture) noCall() {
	f.t.Helper()
	select {
	case c := <-f.gateway.calls:
		f.t.Fatalf("unexpected search call for %q", c.criteria.Text())
	case <-time.After(quietPeriod):
	}
}

func (f *fixture) nextResult() queries.Result {
	f.t.Helper()
	select {
	case r := <-f.results:
		return r
	case <-time.After(waitTimeout):
		f.t.Fatal("expected a published result")
		return queries.Result{}
	}
}

func (f *fixture) noResult() {
	f.t.Helper()
	select {
	case r := <-f.results:
		f.t.Fatalf("unexpected result for sequence %d", r.Request.SequenceNumber)
	case <-time.After(quietPeriod):
	}
}

// dispatch submits text and lets the settle window elapse.
func (f *fixture) dispatch(text string) searchCall {
	f.t.Helper()
	f.sequencer.Submit(f.criteria(text))
	f.clock.Add(settle)
	return f.nextCall()
}

func item(t *testing.T, id int64) catalog.Item {
	return builder.NewItemBuilder().WithID(id).BuildDomain(t)
}

func TestSequencerDebounce(t *testing.T) {
	f := newFixture(t)

	f.sequencer.Submit(f.criteria("c"))
	f.clock.Add(200 * time.Millisecond)
	f.sequencer.Submit(f.criteria("ch"))
	f.clock.Add(200 * time.Millisecond)
	f.sequencer.Submit(f.criteria("cho"))

	f.clock.Add(settle - time.Millisecond)
	f.noCall()
	assert.Equal(t, uint64(0), f.sequencer.HighestDispatched())

	f.clock.Add(time.Millisecond)
	call := f.nextCall()
	assert.Equal(t, "cho", call.criteria.Text())
	f.noCall()
	assert.Equal(t, uint64(1), f.sequencer.HighestDispatched())
	assert.Equal(t, 0, f.clock.PendingTimers())

	call.respond([]catalog.Item{item(t, 1)}, nil)
	r := f.nextResult()
	assert.Equal(t, uint64(1), r.Request.SequenceNumber)
	assert.Equal(t, "cho", r.Request.Criteria.Text())
	assert.Len(t, r.Items, 1)
	assert.False(t, r.Failed())
}

func TestSequencerLastDispatchedWins(t *testing.T) {
	t.Run("late response to an older request is discarded", func(t *testing.T) {
		f := newFixture(t)
		first := f.dispatch("a")
		second := f.dispatch("ab")

		second.respond([]catalog.Item{item(t, 2)}, nil)
		r := f.nextResult()
		assert.Equal(t, uint64(2), r.Request.SequenceNumber)
		assert.Equal(t, "ab", r.Request.Criteria.Text())

		first.respond([]catalog.Item{item(t, 1)}, nil)
		f.noResult()

		latest, ok := f.feed.Latest()
		require.True(t, ok)
		assert.Equal(t, uint64(2), latest.Request.SequenceNumber)
	})

	t.Run("early response to an older request is discarded too", func(t *testing.T) {
		f := newFixture(t)
		first := f.dispatch("a")
		second := f.dispatch("ab")

		first.respond([]catalog.Item{item(t, 1)}, nil)
		f.noResult()

		second.respond(nil, nil)
		r := f.nextResult()
		assert.Equal(t, uint64(2), r.Request.SequenceNumber)
	})

	t.Run("every completion order publishes only the newest", func(t *testing.T) {
		orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
		for _, order := range orders {
			f := newFixture(t)
			calls := []searchCall{f.dispatch("x"), f.dispatch("xy"), f.dispatch("xyz")}

			for _, i := range order {
				calls[i].respond([]catalog.Item{item(t, int64(i+1))}, nil)
			}

			r := f.nextResult()
			assert.Equal(t, uint64(3), r.Request.SequenceNumber, "order %v", order)
			assert.Equal(t, "xyz", r.Request.Criteria.Text())
			require.Len(t, r.Items, 1)
			assert.Equal(t, catalog.ID(3), r.Items[0].ID())
			f.noResult()
		}
	})

	t.Run("a pending edit does not invalidate the in-flight request", func(t *testing.T) {
		f := newFixture(t)
		call := f.dispatch("a")

		f.sequencer.Submit(f.criteria("ab"))
		call.respond(nil, nil)

		r := f.nextResult()
		assert.Equal(t, uint64(1), r.Request.SequenceNumber)
	})
}

func TestSequencerFailures(t *testing.T) {
	f := newFixture(t)
	call := f.dispatch("a")

	boom := errors.New("service unavailable")
	call.respond(nil, boom)

	r := f.nextResult()
	assert.True(t, r.Failed())
	assert.ErrorIs(t, r.Err, boom)
	assert.Empty(t, r.Items)

	// the same criteria after a failure is tried again
	retry := f.dispatch("a")
	assert.Equal(t, "a", retry.criteria.Text())
	retry.respond([]catalog.Item{item(t, 1)}, nil)
	r = f.nextResult()
	assert.False(t, r.Failed())
	assert.Equal(t, uint64(2), r.Request.SequenceNumber)
}

func TestSequencerDeduplicates(t *testing.T) {
	f := newFixture(t)
	call := f.dispatch("cake")
	call.respond(nil, nil)
	f.nextResult()

	f.sequencer.Submit(f.criteria("  cake "))
	f.clock.Add(settle)
	f.noCall()
	assert.Equal(t, uint64(1), f.sequencer.HighestDispatched())

	// typing away and back within one window is one unchanged query
	f.sequencer.Submit(f.criteria("cakes"))
	f.clock.Add(100 * time.Millisecond)
	f.sequencer.Submit(f.criteria("cake"))
	f.clock.Add(settle)
	f.noCall()
}

func TestSequencerRefresh(t *testing.T) {
	t.Run("re-issues the last criteria immediately", func(t *testing.T) {
		f := newFixture(t)
		call := f.dispatch("cake")
		call.respond(nil, nil)
		f.nextResult()

		f.sequencer.Refresh()
		again := f.nextCall()
		assert.Equal(t, "cake", again.criteria.Text())
		assert.Equal(t, uint64(2), f.sequencer.HighestDispatched())
	})

	t.Run("flushes pending criteria and cancels the timer", func(t *testing.T) {
		f := newFixture(t)
		f.sequencer.Submit(f.criteria("pie"))
		require.Equal(t, 1, f.clock.PendingTimers())

		f.sequencer.Refresh()
		call := f.nextCall()
		assert.Equal(t, "pie", call.criteria.Text())
		assert.Equal(t, 0, f.clock.PendingTimers())

		f.clock.Add(settle)
		f.noCall()
	})

	t.Run("with nothing submitted searches everything", func(t *testing.T) {
		f := newFixture(t)
		f.sequencer.Refresh()
		call := f.nextCall()
		assert.True(t, call.criteria.IsEmpty())
	})
}

func TestSequencerClose(t *testing.T) {
	f := newFixture(t)
	f.dispatch("a")
	f.sequencer.Submit(f.criteria("ab"))

	done := make(chan struct{})
	go func() {
		f.sequencer.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("Close did not return")
	}
	f.noResult()
	assert.Equal(t, 0, f.clock.PendingTimers())

	f.sequencer.Submit(f.criteria("abc"))
	assert.Equal(t, 0, f.clock.PendingTimers())
	f.sequencer.Refresh()
	f.noCall()
}
