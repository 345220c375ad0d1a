package commands

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart.go -package=commandsmock

import (
	"context"

	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CartCommands interface {
	// AddItem fetches the current item from the catalog and adds it, so the
	// line snapshot always reflects the newest availability.
	AddItem(ctx context.Context, itemID catalog.ID, quantity int) (shared.CartView, error)
	SetQuantity(itemID catalog.ID, quantity int) (shared.CartView, error)
	Remove(itemID catalog.ID) shared.CartView
	Clear() shared.CartView
	View() shared.CartView
}

type cartUseCaseImpl struct {
	store   shared.CartStore
	catalog shared.CatalogGateway
	taxRate decimal.Decimal
}

func NewCartUseCase(store shared.CartStore, catalog shared.CatalogGateway, cfg config.CartConfig) (CartCommands, error) {
	rate, err := cfg.Tax()
	if err != nil {
		return nil, err
	}
	return &cartUseCaseImpl{store: store, catalog: catalog, taxRate: rate}, nil
}

func (uc *cartUseCaseImpl) AddItem(ctx context.Context, itemID catalog.ID, quantity int) (shared.CartView, error) {
	if quantity <= 0 {
		return shared.CartView{}, errs.Mark(errs.ErrInvalidQuantity, errs.ErrValidation)
	}

	item, err := uc.catalog.Item(ctx, itemID)
	if err != nil {
		return shared.CartView{}, err
	}
	if err = uc.store.Add(item, quantity); err != nil {
		return shared.CartView{}, err
	}
	return uc.store.View(uc.taxRate), nil
}

func (uc *cartUseCaseImpl) SetQuantity(itemID catalog.ID, quantity int) (shared.CartView, error) {
	if err := uc.store.SetQuantity(itemID, quantity); err != nil {
		return shared.CartView{}, err
	}
	return uc.store.View(uc.taxRate), nil
}

func (uc *cartUseCaseImpl) Remove(itemID catalog.ID) shared.CartView {
	uc.store.Remove(itemID)
	return uc.store.View(uc.taxRate)
}

func (uc *cartUseCaseImpl) Clear() shared.CartView {
	uc.store.Clear()
	return uc.store.View(uc.taxRate)
}

func (uc *cartUseCaseImpl) View() shared.CartView {
	return uc.store.View(uc.taxRate)
}
