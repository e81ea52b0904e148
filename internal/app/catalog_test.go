package app_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"travelbook/internal/app"
	"travelbook/internal/domain"
)

// ---- fakes ----

type fakeCities struct {
	cities []domain.City
	calls  int
}

func (f *fakeCities) ListCities(ctx context.Context, q domain.CitiesQuery) ([]domain.City, error) {
	f.calls++
	return f.cities, nil
}
func (f *fakeCities) GetCity(ctx context.Context, id int64) (domain.City, error) {
	f.calls++
	for _, c := range f.cities {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.City{}, domain.ErrNotFound
}

type fakeStays struct {
	stays map[int64]domain.Stay
	calls int
}

func (f *fakeStays) ListStays(ctx context.Context, q domain.PageQuery) (domain.StaysPage, error) {
	f.calls++
	page := domain.StaysPage{Items: []domain.Stay{}}
	for _, s := range f.stays {
		page.Items = append(page.Items, s)
	}
	page.TotalElements = len(page.Items)
	page.TotalPages = 1
	return page, nil
}
func (f *fakeStays) GetStay(ctx context.Context, id int64) (domain.Stay, error) {
	f.calls++
	s, ok := f.stays[id]
	if !ok {
		return domain.Stay{}, domain.ErrNotFound
	}
	return s, nil
}
func (f *fakeStays) ListStaysByCity(ctx context.Context, cityID int64) ([]domain.Stay, error) {
	f.calls++
	return []domain.Stay{}, nil
}
func (f *fakeStays) ListNearbyStays(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Stay, error) {
	f.calls++
	return []domain.Stay{}, nil
}
func (f *fakeStays) ListStayTypes(ctx context.Context) ([]domain.StayType, error) {
	f.calls++
	return []domain.StayType{{ID: 1, Name: "Hotel"}}, nil
}
func (f *fakeStays) ListServices(ctx context.Context) ([]domain.Service, error) {
	f.calls++
	return []domain.Service{{ID: 1, Name: "WiFi"}}, nil
}
func (f *fakeStays) CreateStayUnit(ctx context.Context, stayID int64, in domain.StayUnitInput) (domain.StayUnit, error) {
	return domain.StayUnit{}, nil
}
func (f *fakeStays) UpdateStayUnit(ctx context.Context, id int64, in domain.StayUnitInput) (domain.StayUnit, error) {
	return domain.StayUnit{}, nil
}
func (f *fakeStays) DeleteStayUnit(ctx context.Context, id int64) error { return nil }

// fakeCache JSON round-trips values, same contract as the redis adapter.
type fakeCache struct {
	store map[string][]byte
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// ---- tests ----

func TestCatalogStay_CacheMissThenHit(t *testing.T) {
	stays := &fakeStays{stays: map[int64]domain.Stay{
		42: {ID: 42, Name: "Harbor Inn", Units: []domain.StayUnit{{ID: 1, StayID: 42}}},
	}}
	catalog := app.NewCatalog(&fakeCities{}, stays, &fakeCache{}, 10*time.Minute)

	s, err := catalog.Stay(context.Background(), 42)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if s.Name != "Harbor Inn" || len(s.Units) != 1 {
		t.Fatalf("unexpected stay: %+v", s)
	}

	// Mutate backend; second read must come from cache.
	stays.stays[42] = domain.Stay{ID: 42, Name: "SHOULD NOT SEE THIS"}

	s2, err := catalog.Stay(context.Background(), 42)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if s2.Name != "Harbor Inn" {
		t.Fatalf("expected cached stay, got %q", s2.Name)
	}
	if stays.calls != 1 {
		t.Fatalf("expected 1 backend call, got %d", stays.calls)
	}
}

func TestCatalogFeaturedCities_Cached(t *testing.T) {
	cities := &fakeCities{cities: []domain.City{{ID: 7, Name: "Lisbon", Featured: true}}}
	catalog := app.NewCatalog(cities, &fakeStays{}, &fakeCache{}, 10*time.Minute)

	for i := 0; i < 3; i++ {
		got, err := catalog.FeaturedCities(context.Background())
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if len(got) != 1 || got[0].Name != "Lisbon" {
			t.Fatalf("call %d: cities = %+v", i, got)
		}
	}
	if cities.calls != 1 {
		t.Fatalf("expected 1 backend call, got %d", cities.calls)
	}
}

func TestCatalogNearby_NotCached(t *testing.T) {
	stays := &fakeStays{}
	catalog := app.NewCatalog(&fakeCities{}, stays, &fakeCache{}, 10*time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := catalog.NearbyStays(context.Background(), 38.7, -9.1, 10); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if stays.calls != 2 {
		t.Fatalf("nearby must bypass the cache, got %d calls", stays.calls)
	}
}
