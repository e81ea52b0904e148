package graphql_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"travelbook/internal/adapters/graphql"
	"travelbook/internal/domain"
)

type fakeTokens struct {
	token string
}

func (f *fakeTokens) Token() (string, error) {
	if f.token == "" {
		return "", domain.ErrNoToken
	}
	return f.token, nil
}
func (f *fakeTokens) Save(token string) error { f.token = token; return nil }
func (f *fakeTokens) Clear() error            { f.token = ""; return nil }
func (f *fakeTokens) Authenticated() bool     { return f.token != "" }

// memCache is an in-memory domain.Cache with JSON round-tripping, same
// contract as the redis adapter.
type memCache struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemCache() *memCache { return &memCache{m: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) Set(_ context.Context, key string, v any, _ int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = b
	return nil
}

func (c *memCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
	return nil
}

type gqlCall struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// gqlServer dispatches on operationName; handlers return the value of
// the single data field keyed by the operation name.
func gqlServer(t *testing.T, hits *int32, handlers map[string]func(vars map[string]any) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		var call gqlCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		h, ok := handlers[call.OperationName]
		if !ok {
			t.Errorf("unexpected operation %q", call.OperationName)
			http.Error(w, "unknown operation", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{call.OperationName: h(call.Variables)},
		})
	}))
}

func testClient(t *testing.T, url string, tokens domain.TokenStore, cache domain.Cache) *graphql.Client {
	t.Helper()
	c, err := graphql.New(url, tokens, cache, time.Minute, 1000)
	if err != nil {
		t.Fatalf("graphql.New: %v", err)
	}
	return c
}

func TestGetStay_NullData_NotFound(t *testing.T) {
	var hits int32
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{
		"getStayById": func(map[string]any) any { return nil },
	})
	defer ts.Close()

	svc := graphql.NewStayService(testClient(t, ts.URL, &fakeTokens{}, nil))
	_, err := svc.GetStay(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListCities_NullData_FixedError(t *testing.T) {
	var hits int32
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{
		"getAllCities": func(map[string]any) any { return nil },
	})
	defer ts.Close()

	svc := graphql.NewCityService(testClient(t, ts.URL, &fakeTokens{}, nil))
	_, err := svc.ListCities(context.Background(), domain.CitiesQuery{})
	if err == nil || err.Error() != "failed to fetch cities" {
		t.Fatalf("expected fixed fetch error, got %v", err)
	}
}

func TestListCities_StringIDsParsed(t *testing.T) {
	var hits int32
	featured := true
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{
		"getAllCities": func(vars map[string]any) any {
			if got, ok := vars["featured"].(bool); !ok || !got {
				t.Errorf("featured variable not forwarded: %v", vars)
			}
			return map[string]any{
				"content": []map[string]any{
					{"id": "17", "name": "Lisbon", "featured": true,
						"country": map[string]any{"id": "3", "name": "Portugal"}},
				},
				"totalPages": 1, "totalElements": 1, "number": 0, "size": 20,
			}
		},
	})
	defer ts.Close()

	svc := graphql.NewCityService(testClient(t, ts.URL, &fakeTokens{}, nil))
	cities, err := svc.ListCities(context.Background(), domain.CitiesQuery{Featured: &featured})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cities) != 1 || cities[0].ID != 17 {
		t.Fatalf("cities = %+v", cities)
	}
	if cities[0].Country == nil || cities[0].Country.ID != 3 {
		t.Fatalf("country id not parsed: %+v", cities[0].Country)
	}
}

func TestQueryCache_SecondCallServedWithoutRequest(t *testing.T) {
	var hits int32
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{
		"getAllServices": func(map[string]any) any {
			return []map[string]any{{"id": "1", "name": "WiFi"}}
		},
	})
	defer ts.Close()

	svc := graphql.NewStayService(testClient(t, ts.URL, &fakeTokens{}, newMemCache()))
	for i := 0; i < 2; i++ {
		services, err := svc.ListServices(context.Background())
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if len(services) != 1 || services[0].ID != 1 {
			t.Fatalf("call %d: services = %+v", i, services)
		}
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected 1 request with warm cache, got %d", n)
	}
}

func TestLogout_ClearsTokenAndResetsCache(t *testing.T) {
	var hits int32
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{
		"login": func(map[string]any) any {
			return map[string]any{"token": "jwt-xyz"}
		},
		"getAllServices": func(map[string]any) any {
			return []map[string]any{{"id": "1", "name": "WiFi"}}
		},
	})
	defer ts.Close()

	tokens := &fakeTokens{}
	client := testClient(t, ts.URL, tokens, newMemCache())
	auth := graphql.NewAuthService(client, tokens)
	stays := graphql.NewStayService(client)

	if _, err := auth.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !auth.Authenticated() {
		t.Fatal("expected authenticated after login")
	}

	if _, err := stays.ListServices(context.Background()); err != nil {
		t.Fatalf("first list: %v", err)
	}
	before := atomic.LoadInt32(&hits)

	if err := auth.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if auth.Authenticated() {
		t.Fatal("expected unauthenticated after logout")
	}

	// Cache was reset, so the same read must hit the network again.
	if _, err := stays.ListServices(context.Background()); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if after := atomic.LoadInt32(&hits); after != before+1 {
		t.Fatalf("expected a fresh request after logout, hits %d -> %d", before, after)
	}
}

func TestAuthedQuery_NoToken_NoRequestIssued(t *testing.T) {
	var hits int32
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{})
	defer ts.Close()

	svc := graphql.NewTripService(testClient(t, ts.URL, &fakeTokens{}, nil))
	_, err := svc.ListItineraries(context.Background())
	if !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Fatalf("expected 0 network calls, got %d", n)
	}
}

func TestEnvelopeErrors_UnauthorizedMapped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":   nil,
			"errors": []map[string]any{{"message": "Unauthorized"}},
		})
	}))
	defer ts.Close()

	svc := graphql.NewTripService(testClient(t, ts.URL, &fakeTokens{token: "stale"}, nil))
	_, err := svc.ListItineraries(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestChat_SessionThreading(t *testing.T) {
	var hits int32
	var gotSession []any
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{
		"chatWithAgent": func(vars map[string]any) any {
			gotSession = append(gotSession, vars["sessionId"])
			return map[string]any{
				"response":  "How about Lisbon?",
				"sessionId": "sess-42",
				"hotels":    []any{},
			}
		},
	})
	defer ts.Close()

	svc := graphql.NewAgentService(testClient(t, ts.URL, &fakeTokens{token: "jwt"}, nil))

	first, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "beach trip"})
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}
	if first.SessionID != "sess-42" {
		t.Fatalf("SessionID = %q", first.SessionID)
	}
	if _, err := svc.Chat(context.Background(), domain.ChatRequest{
		Message:   "cheaper options",
		SessionID: &first.SessionID,
	}); err != nil {
		t.Fatalf("second turn: %v", err)
	}

	if gotSession[0] != nil {
		t.Fatalf("first turn must omit sessionId, got %v", gotSession[0])
	}
	if gotSession[1] != "sess-42" {
		t.Fatalf("second turn must carry sessionId, got %v", gotSession[1])
	}
}

// A fresh client over an already-populated cache (a later CLI run) must
// not see entries cached before a logout or a write.
func TestLogout_InvalidatesCacheForLaterClients(t *testing.T) {
	var hits int32
	email := "alice@test"
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{
		"getUserProfile": func(map[string]any) any {
			return map[string]any{"email": email, "firstName": "A", "lastName": "B"}
		},
	})
	defer ts.Close()

	cache := newMemCache()

	first := &fakeTokens{token: "jwt-alice"}
	auth1 := graphql.NewAuthService(testClient(t, ts.URL, first, cache), first)
	if _, err := auth1.Profile(context.Background()); err != nil {
		t.Fatalf("first profile: %v", err)
	}
	if err := auth1.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}

	email = "bob@test"
	second := &fakeTokens{token: "jwt-bob"}
	auth2 := graphql.NewAuthService(testClient(t, ts.URL, second, cache), second)
	got, err := auth2.Profile(context.Background())
	if err != nil {
		t.Fatalf("second profile: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Fatalf("post-logout profile must hit the network, got %d hits", n)
	}
	if got.Email != "bob@test" {
		t.Fatalf("served stale profile %q after logout", got.Email)
	}
}

func TestMutation_InvalidatesCacheForLaterClients(t *testing.T) {
	var hits int32
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{
		"getAllServices": func(map[string]any) any {
			return []map[string]any{{"id": "1", "name": "WiFi"}}
		},
		"login": func(map[string]any) any {
			return map[string]any{"token": "jwt-xyz"}
		},
	})
	defer ts.Close()

	cache := newMemCache()
	tokens := &fakeTokens{token: "jwt"}

	c1 := testClient(t, ts.URL, tokens, cache)
	if _, err := graphql.NewStayService(c1).ListServices(context.Background()); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	if _, err := graphql.NewAuthService(c1, tokens).Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	before := atomic.LoadInt32(&hits)

	c2 := testClient(t, ts.URL, tokens, cache)
	if _, err := graphql.NewStayService(c2).ListServices(context.Background()); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if after := atomic.LoadInt32(&hits); after != before+1 {
		t.Fatalf("expected a fresh request after a write, hits %d -> %d", before, after)
	}
}

func TestDeleteItinerary_FalseIsNotFound(t *testing.T) {
	var hits int32
	ts := gqlServer(t, &hits, map[string]func(map[string]any) any{
		"deleteItinerary":             func(map[string]any) any { return false },
		"deleteStayUnit":              func(map[string]any) any { return false },
		"removeStayUnitFromItinerary": func(map[string]any) any { return false },
	})
	defer ts.Close()

	client := testClient(t, ts.URL, &fakeTokens{token: "jwt"}, nil)
	trips := graphql.NewTripService(client)
	stays := graphql.NewStayService(client)

	if err := trips.DeleteItinerary(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deleteItinerary=false: expected ErrNotFound, got %v", err)
	}
	if err := trips.RemoveStayUnit(context.Background(), 7, 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("removeStayUnitFromItinerary=false: expected ErrNotFound, got %v", err)
	}
	if err := stays.DeleteStayUnit(context.Background(), 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deleteStayUnit=false: expected ErrNotFound, got %v", err)
	}
}
