//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/domain/checkout"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	startedAt  = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	finishedAt = startedAt.Add(2 * time.Second)
)

var cmpResults = cmp.Comparer(func(a, b checkout.LineResult) bool { return a.Equal(b) })

func lines(t *testing.T, n int) []cart.Line {
	t.Helper()
	c := cart.New(cart.DefaultMaxLineQuantity)
	for i := 1; i <= n; i++ {
		require.NoError(t, c.Add(builder.NewItemBuilder().WithID(int64(i)).BuildDomain(t), i))
	}
	return c.Lines()
}

func run(t *testing.T, n int, results ...checkout.LineResult) *checkout.Attempt {
	t.Helper()
	a, err := checkout.Start(uuid.New(), lines(t, n), startedAt)
	require.NoError(t, err)
	for _, r := range results {
		_, ok := a.Next()
		require.True(t, ok)
		require.NoError(t, a.Record(r))
	}
	require.NoError(t, a.Finish(finishedAt))
	return a
}

func TestStart(t *testing.T) {
	t.Run("IN_PROGRESSで開始", func(t *testing.T) {
		a, err := checkout.Start(uuid.Nil, lines(t, 2), startedAt)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, checkout.StatusInProgress, a.Status())
		assert.False(t, a.Status().IsTerminal())
		assert.Equal(t, startedAt, a.StartedAt())
		assert.Empty(t, a.Results())

		next, ok := a.Next()
		require.True(t, ok)
		assert.Equal(t, catalog.ID(1), next.ItemID())
	})

	t.Run("空カートNG", func(t *testing.T) {
		_, err := checkout.Start(uuid.New(), nil, startedAt)
		assert.True(t, errs.Is(err, errs.ErrEmptyCart))
	})
}

func TestFinishStatus(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		results   []checkout.LineResult
		want      checkout.Status
		committed []catalog.ID
		final     []checkout.LineResult
	}{
		{
			name:      "全件成功",
			n:         2,
			results:   []checkout.LineResult{checkout.Committed(1), checkout.Committed(2)},
			want:      checkout.StatusAllCommitted,
			committed: []catalog.ID{1, 2},
			final:     []checkout.LineResult{checkout.Committed(1), checkout.Committed(2)},
		},
		{
			name: "在庫不足は部分成功",
			n:    3,
			results: []checkout.LineResult{
				checkout.Committed(1),
				checkout.Rejected(checkout.ReasonInsufficientStock, "only 1 left"),
				checkout.Committed(3),
			},
			want:      checkout.StatusPartiallyCommitted,
			committed: []catalog.ID{1, 3},
			final: []checkout.LineResult{
				checkout.Committed(1),
				checkout.Rejected(checkout.ReasonInsufficientStock, "only 1 left"),
				checkout.Committed(3),
			},
		},
		{
			name: "全件在庫不足",
			n:    2,
			results: []checkout.LineResult{
				checkout.Rejected(checkout.ReasonInsufficientStock, ""),
				checkout.Rejected(checkout.ReasonInsufficientStock, ""),
			},
			want: checkout.StatusNoneCommitted,
			final: []checkout.LineResult{
				checkout.Rejected(checkout.ReasonInsufficientStock, ""),
				checkout.Rejected(checkout.ReasonInsufficientStock, ""),
			},
		},
		{
			name:      "致命的エラーで残りは未実行",
			n:         3,
			results:   []checkout.LineResult{checkout.Committed(1), checkout.Rejected(checkout.ReasonUnauthorized, "")},
			want:      checkout.StatusAbortedFatal,
			committed: []catalog.ID{1},
			final: []checkout.LineResult{
				checkout.Committed(1),
				checkout.Rejected(checkout.ReasonUnauthorized, ""),
				checkout.NotAttempted(),
			},
		},
		{
			name:    "先頭で致命的エラー",
			n:       2,
			results: []checkout.LineResult{checkout.Rejected(checkout.ReasonNetwork, "timeout")},
			want:    checkout.StatusAbortedFatal,
			final: []checkout.LineResult{
				checkout.Rejected(checkout.ReasonNetwork, "timeout"),
				checkout.NotAttempted(),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := run(t, tc.n, tc.results...)

			assert.Equal(t, tc.want, a.Status())
			assert.True(t, a.Status().IsTerminal())
			assert.Equal(t, finishedAt, a.FinishedAt())
			assert.Equal(t, tc.committed, a.CommittedItemIDs())
			assert.Len(t, a.Results(), tc.n)
			if diff := cmp.Diff(tc.final, a.Results(), cmpResults); diff != "" {
				t.Errorf("results mismatch (-want +got):\n%s", diff)
			}
			assert.NotEmpty(t, a.Message())

			_, ok := a.Next()
			assert.False(t, ok)
		})
	}
}

func TestAttemptGuards(t *testing.T) {
	t.Run("結果が揃う前のFinishはNG", func(t *testing.T) {
		a, err := checkout.Start(uuid.New(), lines(t, 2), startedAt)
		require.NoError(t, err)
		require.NoError(t, a.Record(checkout.Committed(1)))

		err = a.Finish(finishedAt)
		assert.True(t, errs.Is(err, errs.ErrIllegalTransition))
		assert.Equal(t, checkout.StatusInProgress, a.Status())
	})

	t.Run("終了後のRecordはNG", func(t *testing.T) {
		a := run(t, 1, checkout.Committed(1))
		err := a.Record(checkout.Committed(1))
		assert.True(t, errs.Is(err, errs.ErrIllegalTransition))
	})

	t.Run("二重FinishはNG", func(t *testing.T) {
		a := run(t, 1, checkout.Committed(1))
		err := a.Finish(finishedAt)
		assert.True(t, errs.Is(err, errs.ErrIllegalTransition))
	})

	t.Run("スナップショットは呼び出し元から独立", func(t *testing.T) {
		ls := lines(t, 2)
		a, err := checkout.Start(uuid.New(), ls, startedAt)
		require.NoError(t, err)
		ls[0] = ls[1]

		first, _ := a.Next()
		assert.Equal(t, catalog.ID(1), first.ItemID())
	})
}

func TestTransitions(t *testing.T) {
	assert.True(t, checkout.CanTransitionTo(checkout.StatusIdle, checkout.StatusInProgress))
	assert.False(t, checkout.CanTransitionTo(checkout.StatusIdle, checkout.StatusAllCommitted))
	for _, terminal := range []checkout.Status{
		checkout.StatusAllCommitted,
		checkout.StatusPartiallyCommitted,
		checkout.StatusNoneCommitted,
		checkout.StatusAbortedFatal,
	} {
		assert.True(t, checkout.CanTransitionTo(checkout.StatusInProgress, terminal))
		assert.False(t, checkout.CanTransitionTo(terminal, checkout.StatusInProgress))
	}
}

func TestReasonIsFatal(t *testing.T) {
	assert.False(t, checkout.ReasonInsufficientStock.IsFatal())
	for _, r := range []checkout.Reason{
		checkout.ReasonUnauthorized,
		checkout.ReasonItemNotFound,
		checkout.ReasonServiceUnavailable,
		checkout.ReasonNetwork,
		checkout.ReasonRejected,
	} {
		assert.True(t, r.IsFatal(), string(r))
	}
}
