package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"travelbook/internal/domain"
)

type CityService struct{ c *Client }

func NewCityService(c *Client) *CityService { return &CityService{c: c} }

// ListCities returns the mapped page content; pagination metadata is
// deliberately discarded on this endpoint.
func (s *CityService) ListCities(ctx context.Context, q domain.CitiesQuery) ([]domain.City, error) {
	query := url.Values{}
	if q.Featured != nil {
		query.Set("featured", strconv.FormatBool(*q.Featured))
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		query.Set("size", strconv.Itoa(q.Size))
	}

	var out pageResponse[cityResponse]
	if err := s.c.get(ctx, "cities.list", "/cities", query, &out, false); err != nil {
		return nil, err
	}
	cities := make([]domain.City, 0, len(out.Content))
	for _, dto := range out.Content {
		cities = append(cities, cityFromResponse(dto))
	}
	return cities, nil
}

func (s *CityService) GetCity(ctx context.Context, id int64) (domain.City, error) {
	var out cityResponse
	if err := s.c.get(ctx, "cities.get", fmt.Sprintf("/cities/%d", id), nil, &out, false); err != nil {
		return domain.City{}, err
	}
	return cityFromResponse(out), nil
}
