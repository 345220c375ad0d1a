package credential

import (
	"strings"
	"sync"

	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/internal/pkg/jwt"
	"storefront-engine/internal/usecase/shared"
)

// Holder keeps the current bearer credential. Opaque tokens never expire
// locally; JWTs read as absent once their exp claim has passed.
type Holder struct {
	mu     sync.RWMutex
	token  string
	claims *jwt.Claims
	clock  clock.Clock
}

func NewHolder(cfg config.SessionConfig, clk clock.Clock) *Holder {
	h := &Holder{clock: clk}
	if cfg.AccessToken != "" {
		_ = h.Set(cfg.AccessToken)
	}
	return h
}

func (h *Holder) Set(token string) error {
	token = strings.TrimSpace(token)
	if fields := strings.Fields(token); len(fields) > 0 && strings.EqualFold(fields[0], "Bearer") {
		token = strings.TrimSpace(token[len(fields[0]):])
	}
	if token == "" {
		return errs.Wrap(errs.ErrValidation, "empty credential")
	}

	claims, err := jwt.Peek(token)
	if err != nil {
		claims = nil
	} else if claims.ExpiredAt(h.clock.Now()) {
		return errs.Wrap(errs.ErrValidation, "credential already expired")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.claims = claims
	return nil
}

func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
	h.claims = nil
}

func (h *Holder) Token() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token == "" {
		return "", false
	}
	if h.claims != nil && h.claims.ExpiredAt(h.clock.Now()) {
		return "", false
	}
	return h.token, true
}

func (h *Holder) Session() shared.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token == "" || (h.claims != nil && h.claims.ExpiredAt(h.clock.Now())) {
		return shared.Session{}
	}

	s := shared.Session{Authenticated: true}
	if h.claims != nil {
		s.Subject = h.claims.Subject
		s.Roles = h.claims.Roles
		s.ExpiresAt = h.claims.ExpiresAt
	}
	return s
}
