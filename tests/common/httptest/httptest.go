//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// executes HTTP request with a JSON body
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return PerformRequestWithHeaders(t, router, method, path, body, nil)
}

// performs HTTP request with extra headers
func PerformRequestWithHeaders(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := newRequest(t, method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// StreamRecorder lets gin's Context.Stream run against a recorder, which
// does not implement http.CloseNotifier on its own.
type StreamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func NewStreamRecorder() *StreamRecorder {
	return &StreamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *StreamRecorder) CloseNotify() <-chan bool {
	return r.closed
}

// performs a streaming request; it returns once the handler finishes
func PerformStream(t *testing.T, router *gin.Engine, path string) *StreamRecorder {
	t.Helper()

	req := newRequest(t, http.MethodGet, path, nil)
	req.Header.Set("Accept", "text/event-stream")

	w := NewStreamRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
