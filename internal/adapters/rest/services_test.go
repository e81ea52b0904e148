package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelbook/internal/adapters/rest"
	"travelbook/internal/domain"
)

func TestListCities_FeaturedEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cities" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("featured"); got != "true" {
			t.Errorf("featured = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"id": 1, "name": "Lisbon", "featured": true},
				{"id": 2, "name": "Porto", "featured": true},
			},
			"totalPages":    9,
			"totalElements": 88,
			"number":        0,
			"size":          10,
		})
	}))
	defer ts.Close()

	svc := rest.NewCityService(testClient(t, ts.URL, &fakeTokens{}))
	featured := true
	cities, err := svc.ListCities(context.Background(), domain.CitiesQuery{Featured: &featured})
	if err != nil {
		t.Fatalf("ListCities: %v", err)
	}
	// exactly the mapped content, metadata discarded
	if len(cities) != 2 || cities[0].Name != "Lisbon" || cities[1].ID != 2 {
		t.Fatalf("unexpected cities: %+v", cities)
	}
}

func TestListStays_PageMetadataKept(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("size") != "5" {
			t.Errorf("unexpected query: %v", q)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content":       []map[string]any{{"id": 7, "name": "Harbor View"}},
			"totalPages":    4,
			"totalElements": 17,
			"number":        2,
			"size":          5,
		})
	}))
	defer ts.Close()

	svc := rest.NewStayService(testClient(t, ts.URL, &fakeTokens{}))
	page, err := svc.ListStays(context.Background(), domain.PageQuery{Page: 2, Size: 5})
	if err != nil {
		t.Fatalf("ListStays: %v", err)
	}
	if page.TotalPages != 4 || page.TotalElements != 17 || page.Page != 2 || page.Size != 5 {
		t.Fatalf("metadata lost: %+v", page)
	}
	if len(page.Items) != 1 || page.Items[0].Units == nil {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
}

func TestLogin_PersistsToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "ana@test" {
			t.Errorf("email = %q", body.Email)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "jwt-new"})
	}))
	defer ts.Close()

	tokens := &fakeTokens{}
	svc := rest.NewAuthService(testClient(t, ts.URL, tokens), tokens)

	res, err := svc.Login(context.Background(), "ana@test", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "jwt-new" {
		t.Fatalf("Token = %q", res.Token)
	}
	if !tokens.Authenticated() {
		t.Fatal("token not persisted")
	}

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if tokens.Authenticated() {
		t.Fatal("token survived logout")
	}
}

func TestChat_SessionIDThreading(t *testing.T) {
	var gotSession *string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Message   string  `json:"message"`
			SessionID *string `json:"sessionId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotSession = body.SessionID
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response":  "How about Lisbon?",
			"sessionId": "new-session-456",
			"hotels":    []map[string]any{{"id": 7, "name": "Harbor View"}},
		})
	}))
	defer ts.Close()

	svc := rest.NewAgentService(testClient(t, ts.URL, &fakeTokens{token: "jwt"}))

	res, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "Hello"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if gotSession != nil {
		t.Fatalf("first turn must omit sessionId, sent %q", *gotSession)
	}
	if res.SessionID != "new-session-456" {
		t.Fatalf("SessionID = %q", res.SessionID)
	}
	if len(res.Hotels) != 1 || res.Hotels[0].Name != "Harbor View" {
		t.Fatalf("hotels = %+v", res.Hotels)
	}

	// second turn carries the returned id
	sid := res.SessionID
	if _, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "More", SessionID: &sid}); err != nil {
		t.Fatalf("Chat 2: %v", err)
	}
	if gotSession == nil || *gotSession != "new-session-456" {
		t.Fatalf("second turn sessionId = %v", gotSession)
	}
}
