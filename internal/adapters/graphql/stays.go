package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"travelbook/internal/domain"
)

type StayService struct{ c *Client }

func NewStayService(c *Client) *StayService { return &StayService{c: c} }

func (s *StayService) ListStays(ctx context.Context, q domain.PageQuery) (domain.StaysPage, error) {
	vars := map[string]any{}
	if q.Page > 0 {
		vars["page"] = q.Page
	}
	if q.Size > 0 {
		vars["size"] = q.Size
	}

	data, err := s.c.Query(ctx, "getAllStays", qGetAllStays, vars, false)
	if err != nil {
		return domain.StaysPage{}, err
	}
	var out struct {
		Page *pagePayload[stayPayload] `json:"getAllStays"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.StaysPage{}, err
	}
	if out.Page == nil {
		return domain.StaysPage{}, fmt.Errorf("failed to fetch stays")
	}
	page := domain.StaysPage{
		Items:         make([]domain.Stay, 0, len(out.Page.Content)),
		TotalPages:    out.Page.TotalPages,
		TotalElements: out.Page.TotalElements,
		Page:          out.Page.Number,
		Size:          out.Page.Size,
	}
	for _, dto := range out.Page.Content {
		page.Items = append(page.Items, stayFromPayload(dto))
	}
	return page, nil
}

func (s *StayService) GetStay(ctx context.Context, id int64) (domain.Stay, error) {
	data, err := s.c.Query(ctx, "getStayById", qGetStayByID, map[string]any{
		"id": strconv.FormatInt(id, 10),
	}, false)
	if err != nil {
		return domain.Stay{}, err
	}
	var out struct {
		Stay *stayPayload `json:"getStayById"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.Stay{}, err
	}
	if out.Stay == nil {
		return domain.Stay{}, fmt.Errorf("stay %d: %w", id, domain.ErrNotFound)
	}
	return stayFromPayload(*out.Stay), nil
}

func (s *StayService) ListStaysByCity(ctx context.Context, cityID int64) ([]domain.Stay, error) {
	data, err := s.c.Query(ctx, "getStaysByCity", qGetStaysByCity, map[string]any{
		"cityId": strconv.FormatInt(cityID, 10),
	}, false)
	if err != nil {
		return nil, err
	}
	var out struct {
		Stays []stayPayload `json:"getStaysByCity"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Stays == nil {
		return nil, fmt.Errorf("failed to fetch stays")
	}
	return staysFromPayloads(out.Stays), nil
}

func (s *StayService) ListNearbyStays(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Stay, error) {
	data, err := s.c.Query(ctx, "getNearbyStays", qGetNearbyStays, map[string]any{
		"lat":    lat,
		"lon":    lon,
		"radius": radiusKm,
	}, false)
	if err != nil {
		return nil, err
	}
	var out struct {
		Stays []stayPayload `json:"getNearbyStays"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Stays == nil {
		return nil, fmt.Errorf("failed to fetch stays")
	}
	return staysFromPayloads(out.Stays), nil
}

func (s *StayService) ListStayTypes(ctx context.Context) ([]domain.StayType, error) {
	data, err := s.c.Query(ctx, "getAllStayTypes", qGetAllStayTypes, nil, false)
	if err != nil {
		return nil, err
	}
	var out struct {
		Types []stayTypePayload `json:"getAllStayTypes"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Types == nil {
		return nil, fmt.Errorf("failed to fetch stay types")
	}
	types := make([]domain.StayType, 0, len(out.Types))
	for _, dto := range out.Types {
		types = append(types, stayTypeFromPayload(dto))
	}
	return types, nil
}

func (s *StayService) ListServices(ctx context.Context) ([]domain.Service, error) {
	data, err := s.c.Query(ctx, "getAllServices", qGetAllServices, nil, false)
	if err != nil {
		return nil, err
	}
	var out struct {
		Services []servicePayload `json:"getAllServices"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Services == nil {
		return nil, fmt.Errorf("failed to fetch services")
	}
	services := make([]domain.Service, 0, len(out.Services))
	for _, dto := range out.Services {
		services = append(services, serviceFromPayload(dto))
	}
	return services, nil
}

func stayUnitVars(in domain.StayUnitInput) map[string]any {
	return map[string]any{
		"stayNumber":    in.StayNumber,
		"numberOfBeds":  in.NumberOfBeds,
		"capacity":      in.Capacity,
		"pricePerNight": in.PricePerNight,
		"roomType":      in.RoomType,
	}
}

func (s *StayService) CreateStayUnit(ctx context.Context, stayID int64, in domain.StayUnitInput) (domain.StayUnit, error) {
	input := stayUnitVars(in)
	input["stayId"] = strconv.FormatInt(stayID, 10)

	data, err := s.c.Mutate(ctx, "createStayUnit", mCreateStayUnit, map[string]any{"input": input}, true)
	if err != nil {
		return domain.StayUnit{}, err
	}
	var out struct {
		Unit *stayUnitPayload `json:"createStayUnit"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.StayUnit{}, err
	}
	if out.Unit == nil {
		return domain.StayUnit{}, fmt.Errorf("failed to create stay unit")
	}
	return stayUnitFromPayload(*out.Unit), nil
}

func (s *StayService) UpdateStayUnit(ctx context.Context, id int64, in domain.StayUnitInput) (domain.StayUnit, error) {
	data, err := s.c.Mutate(ctx, "updateStayUnit", mUpdateStayUnit, map[string]any{
		"id":    strconv.FormatInt(id, 10),
		"input": stayUnitVars(in),
	}, true)
	if err != nil {
		return domain.StayUnit{}, err
	}
	var out struct {
		Unit *stayUnitPayload `json:"updateStayUnit"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.StayUnit{}, err
	}
	if out.Unit == nil {
		return domain.StayUnit{}, fmt.Errorf("stay unit %d: %w", id, domain.ErrNotFound)
	}
	return stayUnitFromPayload(*out.Unit), nil
}

func (s *StayService) DeleteStayUnit(ctx context.Context, id int64) error {
	data, err := s.c.Mutate(ctx, "deleteStayUnit", mDeleteStayUnit, map[string]any{
		"id": strconv.FormatInt(id, 10),
	}, true)
	if err != nil {
		return err
	}
	var out struct {
		Deleted bool `json:"deleteStayUnit"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if !out.Deleted {
		return fmt.Errorf("stay unit %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func staysFromPayloads(dtos []stayPayload) []domain.Stay {
	stays := make([]domain.Stay, 0, len(dtos))
	for _, dto := range dtos {
		stays = append(stays, stayFromPayload(dto))
	}
	return stays
}
