package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"travelbook/internal/domain"
)

type CityService struct{ c *Client }

func NewCityService(c *Client) *CityService { return &CityService{c: c} }

// ListCities returns the mapped page content; pagination metadata is
// deliberately discarded on this endpoint.
func (s *CityService) ListCities(ctx context.Context, q domain.CitiesQuery) ([]domain.City, error) {
	vars := map[string]any{}
	if q.Featured != nil {
		vars["featured"] = *q.Featured
	}
	if q.Page > 0 {
		vars["page"] = q.Page
	}
	if q.Size > 0 {
		vars["size"] = q.Size
	}

	data, err := s.c.Query(ctx, "getAllCities", qGetAllCities, vars, false)
	if err != nil {
		return nil, err
	}
	var out struct {
		Page *pagePayload[cityPayload] `json:"getAllCities"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Page == nil {
		return nil, fmt.Errorf("failed to fetch cities")
	}
	cities := make([]domain.City, 0, len(out.Page.Content))
	for _, dto := range out.Page.Content {
		cities = append(cities, cityFromPayload(dto))
	}
	return cities, nil
}

func (s *CityService) GetCity(ctx context.Context, id int64) (domain.City, error) {
	data, err := s.c.Query(ctx, "getCityById", qGetCityByID, map[string]any{
		"id": strconv.FormatInt(id, 10),
	}, false)
	if err != nil {
		return domain.City{}, err
	}
	var out struct {
		City *cityPayload `json:"getCityById"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.City{}, err
	}
	if out.City == nil {
		return domain.City{}, fmt.Errorf("city %d: %w", id, domain.ErrNotFound)
	}
	return cityFromPayload(*out.City), nil
}
