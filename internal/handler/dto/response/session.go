package response

import (
	"time"

	"storefront-engine/internal/usecase/shared"
)

type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Subject       string     `json:"subject,omitempty"`
	Roles         []string   `json:"roles,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

func FromSession(s shared.Session) SessionResponse {
	return SessionResponse{
		Authenticated: s.Authenticated,
		Subject:       s.Subject,
		Roles:         s.Roles,
		ExpiresAt:     s.ExpiresAt,
	}
}
