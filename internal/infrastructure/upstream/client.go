// Package upstream holds the HTTP adapters for the catalogue (BAPI),
// organisation (OAPI) and order (ORDAPI) services.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/config"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

const maxErrorBody = 4 << 10

// Client talks JSON to one upstream base URL on behalf of the signed-in user.
type Client struct {
	service    string
	baseURL    string
	httpClient *http.Client
	retry      *retrier
	logger     *slog.Logger
}

func NewClient(service, baseURL string, timeout time.Duration, retryCfg config.RetryConfig, logger *slog.Logger) *Client {
	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retry:  newRetrier(retryCfg),
		logger: logger.With("upstream", service),
	}
}

type errorBody struct {
	Errors []domain.ValidationError `json:"errors"`
}

// getData is the only verb that is retried; reads have no side effects.
func getData[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var out T
	err := c.retry.do(ctx, func(ctx context.Context) error {
		var zero T
		out = zero
		return c.send(ctx, http.MethodGet, path, query, nil, &out)
	})
	return out, err
}

func putData[Req any](ctx context.Context, c *Client, path string, body Req) error {
	return c.send(ctx, http.MethodPut, path, nil, &body, nil)
}

func postData[Req any, Resp any](ctx context.Context, c *Client, path string, body Req) (*Resp, error) {
	var out Resp
	if err := c.send(ctx, http.MethodPost, path, nil, &body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, reqBody any, respBody any) error {
	identity, ok := application.IdentityFromContext(ctx)
	if !ok || identity.AccessToken == "" {
		return application.NewUnauthenticatedError("no access token for upstream call")
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+identity.AccessToken)
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "upstream call failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s %s: %w", c.service, method, path, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "upstream call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		upErr := &application.UpstreamError{
			Service:    c.service,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
		if resp.StatusCode == http.StatusBadRequest {
			var parsed errorBody
			if json.Unmarshal(body, &parsed) == nil {
				upErr.Errors = parsed.Errors
			}
		}
		c.logger.WarnContext(ctx, "upstream returned error status",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return upErr
	}

	if respBody == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("error decoding json response from %s %s: %w", c.service, path, err)
	}
	return nil
}

func pathID(id string) string {
	return url.PathEscape(id)
}
