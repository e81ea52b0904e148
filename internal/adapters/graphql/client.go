package graphql

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/domain"
)

// Client speaks GraphQL-over-HTTP against the single /graphql endpoint.
// Read queries are front-ended by an optional cache; ResetCache bumps a
// generation counter so logout invalidates every cached result at once.
// The counter is stored in the cache itself, next to the entries it
// guards, so invalidation survives process restarts.
type Client struct {
	endpoint string
	hc       *http.Client
	tokens   domain.TokenStore
	cache    domain.Cache
	ttl      time.Duration
	rl       *rate.Limiter
	gen      atomic.Int64
}

// genKey holds the current cache generation; it never expires.
const genKey = "gql:gen"

// New builds a client. cache may be nil to disable query caching.
func New(endpoint string, tokens domain.TokenStore, cache domain.Cache, ttl time.Duration, rps int) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("graphql endpoint is required")
	}
	if rps <= 0 {
		rps = 10
	}
	c := &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: 20 * time.Second},
		tokens:   tokens,
		cache:    cache,
		ttl:      ttl,
		rl:       rate.NewLimiter(rate.Limit(rps), rps),
	}
	if cache != nil {
		var g int64
		if ok, err := cache.Get(context.Background(), genKey, &g); err == nil && ok {
			c.gen.Store(g)
		}
	}
	return c, nil
}

type gqlRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// Query runs a read operation with cache-aside semantics. The returned
// payload is the raw data object; callers own the null check per field.
func (c *Client) Query(ctx context.Context, op, query string, vars map[string]any, authed bool) (json.RawMessage, error) {
	if c.cache == nil {
		return c.run(ctx, op, query, vars, authed)
	}

	key := c.cacheKey(op, vars)
	var cached json.RawMessage
	if ok, _ := c.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	data, err := c.run(ctx, op, query, vars, authed)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, data, int(c.ttl.Seconds()))
	return data, nil
}

// Mutate runs a write operation. A successful write invalidates every
// cached query so subsequent reads see fresh data.
func (c *Client) Mutate(ctx context.Context, op, query string, vars map[string]any, authed bool) (json.RawMessage, error) {
	data, err := c.run(ctx, op, query, vars, authed)
	if err == nil {
		c.bumpGen(ctx)
	}
	return data, err
}

// ResetCache makes every previously cached query unreachable, for this
// process and for any later one sharing the cache.
func (c *Client) ResetCache(ctx context.Context) {
	c.bumpGen(ctx)
}

func (c *Client) bumpGen(ctx context.Context) {
	g := c.gen.Add(1)
	if c.cache != nil {
		_ = c.cache.Set(ctx, genKey, g, 0)
	}
}

func (c *Client) cacheKey(op string, vars map[string]any) string {
	b, _ := json.Marshal(vars) // map keys marshal in sorted order
	sum := sha1.Sum(b)
	return fmt.Sprintf("gql:%d:%s:%s", c.gen.Load(), op, hex.EncodeToString(sum[:]))
}

func (c *Client) run(ctx context.Context, op, query string, vars map[string]any, authed bool) (json.RawMessage, error) {
	var bearer string
	if authed {
		tok, err := c.tokens.Token()
		if err != nil {
			return nil, err
		}
		bearer = tok
	}

	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(gqlRequest{Query: query, Variables: vars, OperationName: op}); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travelbook/1.0")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveBackend("graphql", op, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveBackend("graphql", op, resp.StatusCode, time.Since(start))
	log.Debug().
		Str("operation", op).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("graphql request")

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, domain.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("graphql: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var envelope gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	if len(envelope.Errors) > 0 && isNull(envelope.Data) {
		msg := envelope.Errors[0].Message
		if strings.Contains(strings.ToLower(msg), "unauthorized") || strings.Contains(strings.ToLower(msg), "access denied") {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("graphql: %s", msg)
	}
	return envelope.Data, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
