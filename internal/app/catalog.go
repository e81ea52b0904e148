package app

import (
	"context"
	"fmt"
	"time"

	"travelbook/internal/domain"
)

// Catalog fronts the read-side entity services with a shared cache.
// The transport underneath may be REST or GraphQL; cache keys are
// transport-agnostic so switching transports keeps the cache warm.
type Catalog struct {
	cities domain.CityService
	stays  domain.StayService
	cache  domain.Cache
	ttl    time.Duration
}

func NewCatalog(cities domain.CityService, stays domain.StayService, cache domain.Cache, ttl time.Duration) *Catalog {
	return &Catalog{cities: cities, stays: stays, cache: cache, ttl: ttl}
}

func (c *Catalog) FeaturedCities(ctx context.Context) ([]domain.City, error) {
	const key = "cities:featured"
	var out []domain.City
	if ok, _ := c.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	featured := true
	cities, err := c.cities.ListCities(ctx, domain.CitiesQuery{Featured: &featured})
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, cities, int(c.ttl.Seconds()))
	return cities, nil
}

func (c *Catalog) City(ctx context.Context, id int64) (domain.City, error) {
	key := fmt.Sprintf("city:%d", id)
	var out domain.City
	if ok, _ := c.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	city, err := c.cities.GetCity(ctx, id)
	if err != nil {
		return domain.City{}, err
	}
	_ = c.cache.Set(ctx, key, city, int(c.ttl.Seconds()))
	return city, nil
}

func (c *Catalog) Stay(ctx context.Context, id int64) (domain.Stay, error) {
	key := fmt.Sprintf("stay:%d", id)
	var out domain.Stay
	if ok, _ := c.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	stay, err := c.stays.GetStay(ctx, id)
	if err != nil {
		return domain.Stay{}, err
	}
	// copy the units slice so callers can't mutate the cached value
	_ = c.cache.Set(ctx, key, deepCopyStay(stay), int(c.ttl.Seconds()))
	return stay, nil
}

func (c *Catalog) Stays(ctx context.Context, q domain.PageQuery) (domain.StaysPage, error) {
	key := fmt.Sprintf("stays:%d:%d", q.Page, q.Size)
	var out domain.StaysPage
	if ok, _ := c.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	page, err := c.stays.ListStays(ctx, q)
	if err != nil {
		return domain.StaysPage{}, err
	}
	_ = c.cache.Set(ctx, key, page, int(c.ttl.Seconds()))
	return page, nil
}

func (c *Catalog) StaysInCity(ctx context.Context, cityID int64) ([]domain.Stay, error) {
	key := fmt.Sprintf("stays:city:%d", cityID)
	var out []domain.Stay
	if ok, _ := c.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	stays, err := c.stays.ListStaysByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, stays, int(c.ttl.Seconds()))
	return stays, nil
}

// NearbyStays is never cached; coordinates rarely repeat exactly.
func (c *Catalog) NearbyStays(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Stay, error) {
	return c.stays.ListNearbyStays(ctx, lat, lon, radiusKm)
}

func (c *Catalog) StayTypes(ctx context.Context) ([]domain.StayType, error) {
	const key = "staytypes"
	var out []domain.StayType
	if ok, _ := c.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	types, err := c.stays.ListStayTypes(ctx)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, types, int(c.ttl.Seconds()))
	return types, nil
}

func (c *Catalog) Services(ctx context.Context) ([]domain.Service, error) {
	const key = "services"
	var out []domain.Service
	if ok, _ := c.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	services, err := c.stays.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, services, int(c.ttl.Seconds()))
	return services, nil
}

func deepCopyStay(in domain.Stay) domain.Stay {
	out := in
	out.Units = make([]domain.StayUnit, len(in.Units))
	copy(out.Units, in.Units)
	if n := len(in.Services); n > 0 {
		out.Services = make([]domain.Service, n)
		copy(out.Services, in.Services)
	}
	if n := len(in.Images); n > 0 {
		out.Images = make([]domain.Image, n)
		copy(out.Images, in.Images)
	}
	return out
}
