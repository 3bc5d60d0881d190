// Package remote is the authenticated client of the back office API and the
// typed gateways built on it.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/infra/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"
)

const (
	mimeJSON = "application/json"

	// maxAuthRetries caps how many times one call is re-issued after a refresh.
	maxAuthRetries = 1

	refreshPath     = "account/token/refresh/"
	maxResponseSize = 16 << 20

	defaultRefreshTimeout = 30 * time.Second
)

var errNoRefreshToken = errors.New("no refresh token available")

// Client issues calls against the API with the tokens of one session.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	refreshTimeout time.Duration
	tokens         service.TokenStore
	refreshes      *singleflight.Group
	metrics        *metrics.APIClient
	logger         *slog.Logger
}

// Do issues the request. A 401 is answered by one token refresh and one
// re-issue. A rejected refresh clears the session and returns the original
// error joined with ErrSessionCleared.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	return c.send(ctx, req, 0)
}

// Tokens exposes the session token storage the client was opened with.
func (c *Client) Tokens() service.TokenStore {
	return c.tokens
}

func (c *Client) send(ctx context.Context, req *Request, attempt int) (*Response, error) {
	pair, err := c.tokens.Tokens(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load tokens")
	}

	resp, err := c.roundTrip(ctx, req, pair.Access)
	if err == nil {
		return resp, nil
	}

	if !domainerrors.IsUnauthorized(err) || attempt >= maxAuthRetries {
		return nil, err
	}

	current, loadErr := c.tokens.Tokens(ctx)
	if loadErr != nil {
		return nil, errors.Wrap(loadErr, "load tokens")
	}
	// Another call refreshed while this one was in flight.
	if current.Access != "" && current.Access != pair.Access {
		return c.send(ctx, req, attempt+1)
	}

	if refreshErr := c.refresh(ctx, pair); refreshErr != nil {
		if errors.IsAny(refreshErr, context.Canceled, context.DeadlineExceeded) {
			c.logger.WarnContext(ctx, "Token refresh interrupted",
				slog.String("path", req.Path),
				slog.Any("error", refreshErr),
			)

			return nil, errors.Join(err, refreshErr)
		}

		c.logger.WarnContext(ctx, "Token refresh failed, clearing session",
			slog.String("path", req.Path),
			slog.Any("error", refreshErr),
		)
		if clearErr := c.tokens.Clear(context.WithoutCancel(ctx)); clearErr != nil {
			c.logger.ErrorContext(ctx, "Failed to clear tokens", slog.Any("error", clearErr))
		}

		return nil, errors.WithStack(errors.Join(ErrSessionCleared, err))
	}

	return c.send(ctx, req, attempt+1)
}

func (c *Client) roundTrip(ctx context.Context, req *Request, accessToken string) (*Response, error) {
	start := time.Now()
	attrs := metric.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("api.path", routeOf(req.Path)),
	)

	resp, err := c.execute(ctx, req, accessToken)

	elapsed := time.Since(start)
	c.metrics.Requests.Add(ctx, 1, attrs)
	c.metrics.Duration.Record(ctx, float64(elapsed.Milliseconds()), attrs)

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	if err != nil {
		c.metrics.Failures.Add(ctx, 1, attrs)
		logger.LogAttrs(ctx, slog.LevelWarn, "API call failed",
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)

		return nil, err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "API call",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", elapsed),
	)

	return resp, nil
}

func (c *Client) execute(ctx context.Context, req *Request, accessToken string) (*Response, error) {
	body, contentType, err := req.encode(ctx)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.url(req.Path, req.Query), body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", mimeJSON)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	return c.doHTTP(httpReq)
}

func (c *Client) doHTTP(httpReq *http.Request) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.WithStack(errors.Join(ErrGeneric, err))
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.WithStack(errors.Join(ErrGeneric, err))
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, newAPIError(httpResp.StatusCode, payload)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       payload,
	}, nil
}

// refresh exchanges the refresh token of a rejected pair for a new one and
// stores it. Concurrent refreshes of the same token share one exchange, which
// is not tied to the cancellation of the caller that started it. A pair that
// was already replaced in storage is not exchanged again.
func (c *Client) refresh(ctx context.Context, rejected entity.TokenPair) error {
	if rejected.Refresh == "" {
		return errNoRefreshToken
	}

	_, err, shared := c.refreshes.Do(rejected.Refresh, func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.refreshTimeout)
		defer cancel()

		stored, err := c.tokens.Tokens(refreshCtx)
		if err != nil {
			return nil, errors.Wrap(err, "load tokens")
		}
		if stored.Access != "" && stored.Access != rejected.Access {
			return nil, nil
		}

		c.metrics.Refreshes.Add(refreshCtx, 1)

		pair, err := c.exchange(refreshCtx, rejected.Refresh)
		if err != nil {
			return nil, err
		}

		return nil, errors.Wrap(c.tokens.SetTokens(refreshCtx, pair), "store refreshed tokens")
	})
	if err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "Access token refreshed", slog.Bool("shared", shared))

	return nil
}

func (c *Client) exchange(ctx context.Context, refreshToken string) (entity.TokenPair, error) {
	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return entity.TokenPair{}, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(refreshPath, nil), bytes.NewReader(payload))
	if err != nil {
		return entity.TokenPair{}, errors.Wrap(err, "build refresh request")
	}
	httpReq.Header.Set("Content-Type", mimeJSON)
	httpReq.Header.Set("Accept", mimeJSON)

	resp, err := c.doHTTP(httpReq)
	if err != nil {
		return entity.TokenPair{}, err
	}

	var out struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := resp.Decode(&out); err != nil {
		return entity.TokenPair{}, err
	}
	if out.Access == "" {
		return entity.TokenPair{}, errors.New("refresh response carried no access token")
	}

	// The server may not rotate the refresh token.
	if out.Refresh == "" {
		out.Refresh = refreshToken
	}

	return entity.TokenPair{Access: out.Access, Refresh: out.Refresh}, nil
}

func (c *Client) url(path string, query url.Values) string {
	target := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return target
}

func newAPIError(status int, payload []byte) *APIError {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || !json.Valid(payload) {
		return &APIError{StatusCode: status}
	}

	return &APIError{StatusCode: status, Payload: json.RawMessage(payload)}
}

// routeOf strips numeric path segments so metrics are not keyed by id.
func routeOf(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, segment := range segments {
		if segment != "" && strings.Trim(segment, "0123456789") == "" {
			segments[i] = ":id"
		}
	}

	return strings.Join(segments, "/")
}
