package middleware

import (
	"storefront-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const ctxSessionSubjectKey = "session_subject"

type SessionReader interface {
	Session() shared.Session
}

// SessionMiddleware exposes the current credential's identity to the rest of
// the request. It never rejects a request: authorization is decided by the
// store API.
type SessionMiddleware struct {
	sessions SessionReader
}

func NewSessionMiddleware(sessions SessionReader) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := m.sessions.Session()
		if s.Subject != "" {
			c.Set(ctxSessionSubjectKey, s.Subject)
		}
		c.Next()
	}
}

func GetSessionSubject(c *gin.Context) string {
	if v, exists := c.Get(ctxSessionSubjectKey); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
