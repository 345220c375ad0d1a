package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

import (
	"context"

	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// CriteriaInput carries raw filter values as entered by the user. Nil means
// the filter is not set.
type CriteriaInput struct {
	Text       string
	CategoryID *catalog.ID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

type CatalogQueries interface {
	// SubmitCriteria validates input and hands it to the sequencer. It
	// returns before any network call is made.
	SubmitCriteria(input CriteriaInput) (catalog.FilterCriteria, error)
	Refresh()
	Latest() (Result, bool)
	Subscribe() (<-chan Result, func())
	Categories(ctx context.Context) ([]catalog.Category, error)
}

type catalogQueriesImpl struct {
	sequencer *Sequencer
	feed      *Feed
	gateway   shared.CatalogGateway
}

func NewCatalogQueries(sequencer *Sequencer, feed *Feed, gateway shared.CatalogGateway) CatalogQueries {
	return &catalogQueriesImpl{sequencer: sequencer, feed: feed, gateway: gateway}
}

func (q *catalogQueriesImpl) SubmitCriteria(input CriteriaInput) (catalog.FilterCriteria, error) {
	criteria, err := catalog.NewFilterCriteria(input.Text, input.CategoryID, input.MinPrice, input.MaxPrice)
	if err != nil {
		return catalog.FilterCriteria{}, err
	}
	q.sequencer.Submit(criteria)
	return criteria, nil
}

func (q *catalogQueriesImpl) Refresh() {
	q.sequencer.Refresh()
}

func (q *catalogQueriesImpl) Latest() (Result, bool) {
	return q.feed.Latest()
}

func (q *catalogQueriesImpl) Subscribe() (<-chan Result, func()) {
	return q.feed.Subscribe()
}

func (q *catalogQueriesImpl) Categories(ctx context.Context) ([]catalog.Category, error) {
	return q.gateway.Categories(ctx)
}
