package commands

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/domain/checkout"
	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutCommands interface {
	// Checkout purchases the cart's lines one at a time, in cart order, and
	// removes the committed ones. It fails only when no attempt could start
	// (ErrEmptyCart, ErrCheckoutInProgress); per-line failures are reported
	// in the returned attempt.
	Checkout(ctx context.Context) (*checkout.Attempt, error)
}

type checkoutUseCaseImpl struct {
	store     shared.CartStore
	inventory shared.InventoryGateway
	clock     clock.Clock
	logger    *slog.Logger
	timeout   time.Duration
}

func NewCheckoutUseCase(
	store shared.CartStore,
	inventory shared.InventoryGateway,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.CheckoutConfig,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		store:     store,
		inventory: inventory,
		clock:     clk,
		logger:    logger,
		timeout:   cfg.PurchaseTimeout,
	}
}

func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context) (*checkout.Attempt, error) {
	lines, err := uc.store.BeginCheckout()
	if err != nil {
		return nil, err
	}

	var attempt *checkout.Attempt
	defer func() {
		var committed []catalog.ID
		if attempt != nil {
			committed = attempt.CommittedItemIDs()
		}
		uc.store.FinishCheckout(committed)
	}()

	attempt, err = checkout.Start(uuid.New(), lines, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	logger := uc.logger.With("attempt_id", attempt.ID().String())
	logger.Info("Checkout started", "lines", len(lines))

	// Once started the attempt runs to a terminal state even if the caller
	// goes away; each purchase still has its own deadline.
	base := context.WithoutCancel(ctx)

	for {
		line, ok := attempt.Next()
		if !ok {
			break
		}

		result := uc.purchase(base, line.ItemID(), line.Quantity())
		if !result.IsCommitted() {
			logger.Warn("Checkout line rejected",
				"item_id", line.ItemID().String(),
				"reason", string(result.Reason()),
				"detail", result.Detail())
		}
		if err = attempt.Record(result); err != nil {
			return nil, err
		}
	}

	if err = attempt.Finish(uc.clock.Now()); err != nil {
		return nil, err
	}

	logger.Info("Checkout finished",
		"status", attempt.Status().String(),
		"committed", attempt.CommittedCount(),
		"lines", len(lines))
	return attempt, nil
}

func (uc *checkoutUseCaseImpl) purchase(ctx context.Context, itemID catalog.ID, quantity int) checkout.LineResult {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	err := uc.inventory.Purchase(ctx, itemID, quantity)
	if err == nil {
		return checkout.Committed(quantity)
	}
	return checkout.Rejected(ClassifyPurchaseError(err), err.Error())
}

// ClassifyPurchaseError maps a gateway failure to a rejection reason.
// Anything unrecognised is treated as a network failure.
func ClassifyPurchaseError(err error) checkout.Reason {
	switch {
	case errs.Is(err, errs.ErrInsufficientStock):
		return checkout.ReasonInsufficientStock
	case errs.Is(err, errs.ErrUnauthorized):
		return checkout.ReasonUnauthorized
	case errs.Is(err, errs.ErrItemNotFound):
		return checkout.ReasonItemNotFound
	case errs.Is(err, errs.ErrServiceUnavailable):
		return checkout.ReasonServiceUnavailable
	case errs.Is(err, errs.ErrRequestRejected):
		return checkout.ReasonRejected
	default:
		return checkout.ReasonNetwork
	}
}
