package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"travelbook/internal/domain"
)

type StayService struct{ c *Client }

func NewStayService(c *Client) *StayService { return &StayService{c: c} }

func (s *StayService) ListStays(ctx context.Context, q domain.PageQuery) (domain.StaysPage, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		query.Set("size", strconv.Itoa(q.Size))
	}

	var out pageResponse[stayResponse]
	if err := s.c.get(ctx, "stays.list", "/stays", query, &out, false); err != nil {
		return domain.StaysPage{}, err
	}
	page := domain.StaysPage{
		Items:         make([]domain.Stay, 0, len(out.Content)),
		TotalPages:    out.TotalPages,
		TotalElements: out.TotalElements,
		Page:          out.Number,
		Size:          out.Size,
	}
	for _, dto := range out.Content {
		page.Items = append(page.Items, stayFromResponse(dto))
	}
	return page, nil
}

func (s *StayService) GetStay(ctx context.Context, id int64) (domain.Stay, error) {
	var out stayResponse
	if err := s.c.get(ctx, "stays.get", fmt.Sprintf("/stays/%d", id), nil, &out, false); err != nil {
		return domain.Stay{}, err
	}
	return stayFromResponse(out), nil
}

func (s *StayService) ListStaysByCity(ctx context.Context, cityID int64) ([]domain.Stay, error) {
	var out []stayResponse
	if err := s.c.get(ctx, "stays.byCity", fmt.Sprintf("/stays/city/%d", cityID), nil, &out, false); err != nil {
		return nil, err
	}
	stays := make([]domain.Stay, 0, len(out))
	for _, dto := range out {
		stays = append(stays, stayFromResponse(dto))
	}
	return stays, nil
}

func (s *StayService) ListNearbyStays(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Stay, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))
	query.Set("radius", strconv.FormatFloat(radiusKm, 'f', 1, 64))

	var out []stayResponse
	if err := s.c.get(ctx, "stays.nearby", "/stays/nearby", query, &out, false); err != nil {
		return nil, err
	}
	stays := make([]domain.Stay, 0, len(out))
	for _, dto := range out {
		stays = append(stays, stayFromResponse(dto))
	}
	return stays, nil
}

func (s *StayService) ListStayTypes(ctx context.Context) ([]domain.StayType, error) {
	var out []stayTypeResponse
	if err := s.c.get(ctx, "stayTypes.list", "/stay-types", nil, &out, false); err != nil {
		return nil, err
	}
	types := make([]domain.StayType, 0, len(out))
	for _, dto := range out {
		types = append(types, stayTypeFromResponse(dto))
	}
	return types, nil
}

func (s *StayService) ListServices(ctx context.Context) ([]domain.Service, error) {
	var out []serviceResponse
	if err := s.c.get(ctx, "services.list", "/services", nil, &out, false); err != nil {
		return nil, err
	}
	services := make([]domain.Service, 0, len(out))
	for _, dto := range out {
		services = append(services, serviceFromResponse(dto))
	}
	return services, nil
}

type stayUnitRequest struct {
	StayID        int64   `json:"stayId,omitempty"`
	StayNumber    int     `json:"stayNumber"`
	NumberOfBeds  int     `json:"numberOfBeds"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"pricePerNight"`
	RoomType      string  `json:"roomType"`
}

func (s *StayService) CreateStayUnit(ctx context.Context, stayID int64, in domain.StayUnitInput) (domain.StayUnit, error) {
	body := stayUnitRequest{
		StayID:        stayID,
		StayNumber:    in.StayNumber,
		NumberOfBeds:  in.NumberOfBeds,
		Capacity:      in.Capacity,
		PricePerNight: in.PricePerNight,
		RoomType:      in.RoomType,
	}
	var out stayUnitResponse
	if err := s.c.post(ctx, "stayUnits.create", "/stay-units", body, &out, true); err != nil {
		return domain.StayUnit{}, err
	}
	return stayUnitFromResponse(out), nil
}

func (s *StayService) UpdateStayUnit(ctx context.Context, id int64, in domain.StayUnitInput) (domain.StayUnit, error) {
	body := stayUnitRequest{
		StayNumber:    in.StayNumber,
		NumberOfBeds:  in.NumberOfBeds,
		Capacity:      in.Capacity,
		PricePerNight: in.PricePerNight,
		RoomType:      in.RoomType,
	}
	var out stayUnitResponse
	if err := s.c.put(ctx, "stayUnits.update", fmt.Sprintf("/stay-units/%d", id), body, &out, true); err != nil {
		return domain.StayUnit{}, err
	}
	return stayUnitFromResponse(out), nil
}

func (s *StayService) DeleteStayUnit(ctx context.Context, id int64) error {
	return s.c.delete(ctx, "stayUnits.delete", fmt.Sprintf("/stay-units/%d", id), true)
}
