package shared

//go:generate mockgen -source=gateways.go -destination=../../../tests/mock/shared/gateways.go -package=sharedmock

import (
	"context"
	"time"

	"storefront-engine/internal/domain/catalog"
)

// CatalogGateway is the read side of the remote storefront API.
type CatalogGateway interface {
	Search(ctx context.Context, criteria catalog.FilterCriteria) ([]catalog.Item, error)
	Item(ctx context.Context, id catalog.ID) (catalog.Item, error)
	Categories(ctx context.Context) ([]catalog.Category, error)
}

// InventoryGateway purchases one item at a time. Failures carry one of the
// errs remote-call markers (ErrInsufficientStock, ErrUnauthorized, ...).
type InventoryGateway interface {
	Purchase(ctx context.Context, itemID catalog.ID, quantity int) error
}

// CredentialSource yields the bearer credential to attach at call time.
type CredentialSource interface {
	Token() (string, bool)
}

type Session struct {
	Authenticated bool
	Subject       string
	Roles         []string
	ExpiresAt     *time.Time
}

// CredentialStore is the writable side of the credential, used by the
// session endpoints.
type CredentialStore interface {
	CredentialSource
	Set(token string) error
	Clear()
	Session() Session
}
