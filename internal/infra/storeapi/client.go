package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"storefront-engine/internal/infra"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/usecase/shared"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 4 << 20

// Failure codes the remote API puts in the envelope. The code is the
// authoritative classification; HTTP status is only a fallback.
const (
	CodeInsufficientStock = "insufficient_stock"
	CodeUnauthorized      = "unauthorized"
	CodeNotFound          = "not_found"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code,omitempty"`
	Data    json.RawMessage `json:"data"`
}

type response struct {
	status int
	body   envelope
}

type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	credentials   shared.CredentialSource
	breaker       *gobreaker.CircuitBreaker[*response]
	logger        *slog.Logger
	onlyAvailable bool
}

func NewClient(
	cfg config.StoreAPIConfig,
	searchCfg config.SearchConfig,
	credentials shared.CredentialSource,
	logger *slog.Logger,
) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid STORE_API_BASE_URL %q", cfg.BaseURL)
	}

	c := &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		credentials:   credentials,
		logger:        logger,
		onlyAvailable: searchCfg.OnlyAvailable,
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	c.breaker = gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:        "store-api",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
		// Classified refusals (stock, auth, not found) mean the service is healthy.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				infra.IsKind(err, infra.KindInsufficientStock) ||
				infra.IsKind(err, infra.KindUnauthorized) ||
				infra.IsKind(err, infra.KindNotFound) ||
				infra.IsKind(err, infra.KindRejected)
		},
	})

	return c, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.breaker.Execute(func() (*response, error) {
		return c.roundTrip(ctx, method, path, query, body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return infra.WrapCallErr(c.logger, infra.KindServiceUnavailable, 0, "", "circuit breaker open for "+method+" "+path, err)
		}
		return err
	}

	if out == nil || len(resp.body.Data) == 0 || string(resp.body.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.body.Data, out); err != nil {
		return infra.WrapCallErr(c.logger, infra.KindServiceUnavailable, resp.status, "", "malformed response data from "+path, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) (*response, error) {
	endpoint := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.credentials.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapCallErr(c.logger, infra.KindNetwork, 0, "", "request to "+path+" failed", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, infra.WrapCallErr(c.logger, infra.KindNetwork, httpResp.StatusCode, "", "failed to read response from "+path, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		kind := classify(httpResp.StatusCode, env.Code)
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(httpResp.StatusCode)
		}
		return nil, infra.WrapCallErr(c.logger, kind, httpResp.StatusCode, env.Code, msg, nil)
	}
	if decodeErr != nil {
		return nil, infra.WrapCallErr(c.logger, infra.KindServiceUnavailable, httpResp.StatusCode, "", "malformed response envelope from "+path, decodeErr)
	}

	return &response{status: httpResp.StatusCode, body: env}, nil
}

func classify(status int, code string) infra.CallErrorKind {
	switch code {
	case CodeInsufficientStock:
		return infra.KindInsufficientStock
	case CodeUnauthorized:
		return infra.KindUnauthorized
	case CodeNotFound:
		return infra.KindNotFound
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.KindUnauthorized
	case status == http.StatusNotFound:
		return infra.KindNotFound
	case status >= 500:
		return infra.KindServiceUnavailable
	default:
		return infra.KindRejected
	}
}
