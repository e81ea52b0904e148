package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/domain"
)

// Client issues JSON requests against the REST backend. Failed calls fail
// once; retry policy is the caller's business.
type Client struct {
	base   string
	hc     *http.Client
	tokens domain.TokenStore
	rl     *rate.Limiter
}

func New(base string, tokens domain.TokenStore, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		hc:     &http.Client{Timeout: 20 * time.Second},
		tokens: tokens,
		rl:     rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// do performs one request. Authenticated operations resolve the bearer
// token first and fail with ErrNoToken before any network I/O.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out any, authed bool) error {
	var bearer string
	if authed {
		tok, err := c.tokens.Token()
		if err != nil {
			return err
		}
		bearer = tok
	}

	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travelbook/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveBackend("rest", op, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveBackend("rest", op, resp.StatusCode, time.Since(start))
	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend request")

	return handleResponse(resp, out)
}

// handleResponse maps status codes onto the error taxonomy: 400 carries
// the field-error map, 401/403 read as an auth failure, 404 as not found.
func handleResponse(resp *http.Response, out any) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || resp.StatusCode == http.StatusNoContent {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		return nil

	case resp.StatusCode == http.StatusBadRequest:
		var body struct {
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &domain.APIError{Status: resp.StatusCode, Message: body.Message, Errors: body.Errors}

	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.ErrUnauthorized

	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.ErrNotFound

	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(b))}
	}
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any, authed bool) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out, authed)
}

func (c *Client) post(ctx context.Context, op, path string, in, out any, authed bool) error {
	return c.do(ctx, op, http.MethodPost, path, nil, in, out, authed)
}

func (c *Client) put(ctx context.Context, op, path string, in, out any, authed bool) error {
	return c.do(ctx, op, http.MethodPut, path, nil, in, out, authed)
}

func (c *Client) delete(ctx context.Context, op, path string, authed bool) error {
	return c.do(ctx, op, http.MethodDelete, path, nil, nil, nil, authed)
}
