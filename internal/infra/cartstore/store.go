package cartstore

import (
	"sync"

	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Store is the process-wide in-memory cart. At most one checkout may hold it
// at a time; ordinary edits stay allowed while a checkout runs because the
// checkout works on its own snapshot.
type Store struct {
	mu          sync.Mutex
	cart        *cart.Cart
	checkingOut bool
}

func NewStore(cfg config.CartConfig) *Store {
	return &Store{cart: cart.New(cfg.MaxLineQuantity)}
}

func (s *Store) Add(item catalog.Item, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Add(item, quantity)
}

func (s *Store) SetQuantity(itemID catalog.ID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetQuantity(itemID, quantity)
}

func (s *Store) Remove(itemID catalog.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(itemID)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *Store) View(taxRate decimal.Decimal) shared.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return shared.CartView{
		Lines:              s.cart.Lines(),
		Summary:            cart.Summarize(s.cart, taxRate),
		CheckoutInProgress: s.checkingOut,
	}
}

func (s *Store) BeginCheckout() ([]cart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkingOut {
		return nil, errs.ErrCheckoutInProgress
	}
	if s.cart.IsEmpty() {
		return nil, errs.Mark(errs.ErrEmptyCart, errs.ErrValidation)
	}
	s.checkingOut = true
	return s.cart.Lines(), nil
}

// FinishCheckout removes committed lines by item id. Lines that were
// rejected, not attempted, or added while the checkout ran are left as they are.
func (s *Store) FinishCheckout(committed []catalog.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range committed {
		s.cart.Remove(id)
	}
	s.checkingOut = false
}
