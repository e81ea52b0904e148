package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"travelbook/internal/domain"
)

type TripService struct{ c *Client }

func NewTripService(c *Client) *TripService { return &TripService{c: c} }

// Dates go over the wire as RFC 3339; both transports normalize them to
// time.Time at the mapper.
const wireDate = time.RFC3339

func (s *TripService) ListItineraries(ctx context.Context) ([]domain.Trip, error) {
	data, err := s.c.Query(ctx, "getItineraries", qGetItineraries, nil, true)
	if err != nil {
		return nil, err
	}
	var out struct {
		Trips []tripPayload `json:"getItineraries"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Trips == nil {
		return nil, fmt.Errorf("failed to fetch itineraries")
	}
	trips := make([]domain.Trip, 0, len(out.Trips))
	for _, dto := range out.Trips {
		trips = append(trips, tripFromPayload(dto))
	}
	return trips, nil
}

func (s *TripService) GetItinerary(ctx context.Context, id int64) (domain.Trip, error) {
	data, err := s.c.Query(ctx, "getItineraryById", qGetItineraryByID, map[string]any{
		"id": strconv.FormatInt(id, 10),
	}, true)
	if err != nil {
		return domain.Trip{}, err
	}
	var out struct {
		Trip *tripPayload `json:"getItineraryById"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.Trip{}, err
	}
	if out.Trip == nil {
		return domain.Trip{}, fmt.Errorf("itinerary %d: %w", id, domain.ErrNotFound)
	}
	return tripFromPayload(*out.Trip), nil
}

func tripVars(in domain.TripInput) map[string]any {
	input := map[string]any{
		"name":      in.Name,
		"startDate": in.StartDate.Format(wireDate),
		"endDate":   in.EndDate.Format(wireDate),
	}
	if in.CityID != nil {
		input["cityId"] = strconv.FormatInt(*in.CityID, 10)
	}
	return input
}

func (s *TripService) CreateItinerary(ctx context.Context, in domain.TripInput) (domain.Trip, error) {
	data, err := s.c.Mutate(ctx, "createItinerary", mCreateItinerary, map[string]any{
		"input": tripVars(in),
	}, true)
	if err != nil {
		return domain.Trip{}, err
	}
	var out struct {
		Trip *tripPayload `json:"createItinerary"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.Trip{}, err
	}
	if out.Trip == nil {
		return domain.Trip{}, fmt.Errorf("failed to create itinerary")
	}
	return tripFromPayload(*out.Trip), nil
}

func (s *TripService) UpdateItinerary(ctx context.Context, id int64, in domain.TripInput) (domain.Trip, error) {
	data, err := s.c.Mutate(ctx, "updateItinerary", mUpdateItinerary, map[string]any{
		"id":    strconv.FormatInt(id, 10),
		"input": tripVars(in),
	}, true)
	if err != nil {
		return domain.Trip{}, err
	}
	var out struct {
		Trip *tripPayload `json:"updateItinerary"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.Trip{}, err
	}
	if out.Trip == nil {
		return domain.Trip{}, fmt.Errorf("itinerary %d: %w", id, domain.ErrNotFound)
	}
	return tripFromPayload(*out.Trip), nil
}

func (s *TripService) DeleteItinerary(ctx context.Context, id int64) error {
	data, err := s.c.Mutate(ctx, "deleteItinerary", mDeleteItinerary, map[string]any{
		"id": strconv.FormatInt(id, 10),
	}, true)
	if err != nil {
		return err
	}
	var out struct {
		Deleted bool `json:"deleteItinerary"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if !out.Deleted {
		return fmt.Errorf("itinerary %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *TripService) AddStayUnit(ctx context.Context, tripID int64, in domain.TripStayUnitInput) (domain.TripStayUnit, error) {
	data, err := s.c.Mutate(ctx, "addStayUnitToItinerary", mAddStayUnitToItinerary, map[string]any{
		"itineraryId": strconv.FormatInt(tripID, 10),
		"input": map[string]any{
			"stayUnitId": strconv.FormatInt(in.StayUnitID, 10),
			"startDate":  in.StartDate.Format(wireDate),
			"endDate":    in.EndDate.Format(wireDate),
		},
	}, true)
	if err != nil {
		return domain.TripStayUnit{}, err
	}
	var out struct {
		Unit *tripStayUnitPayload `json:"addStayUnitToItinerary"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.TripStayUnit{}, err
	}
	if out.Unit == nil {
		return domain.TripStayUnit{}, fmt.Errorf("failed to add stay unit to itinerary")
	}
	unit := tripStayUnitFromPayload(*out.Unit)
	if unit.TripID == 0 {
		unit.TripID = tripID
	}
	return unit, nil
}

func (s *TripService) RemoveStayUnit(ctx context.Context, tripID, unitID int64) error {
	data, err := s.c.Mutate(ctx, "removeStayUnitFromItinerary", mRemoveStayUnitFromItinerary, map[string]any{
		"itineraryId": strconv.FormatInt(tripID, 10),
		"stayUnitId":  strconv.FormatInt(unitID, 10),
	}, true)
	if err != nil {
		return err
	}
	var out struct {
		Removed bool `json:"removeStayUnitFromItinerary"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if !out.Removed {
		return fmt.Errorf("itinerary %d stay unit %d: %w", tripID, unitID, domain.ErrNotFound)
	}
	return nil
}
