package rest

import (
	"context"
	"fmt"
	"time"

	"travelbook/internal/domain"
)

type TripService struct{ c *Client }

func NewTripService(c *Client) *TripService { return &TripService{c: c} }

// Dates go over the wire as RFC 3339; both transports normalize them to
// time.Time at the mapper.
const wireDate = time.RFC3339

type tripRequest struct {
	Name      string `json:"name"`
	CityID    *int64 `json:"cityId,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type tripStayUnitRequest struct {
	StayUnitID int64  `json:"stayUnitId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

func (s *TripService) ListItineraries(ctx context.Context) ([]domain.Trip, error) {
	var out []tripResponse
	if err := s.c.get(ctx, "trips.list", "/trips/itineraries", nil, &out, true); err != nil {
		return nil, err
	}
	trips := make([]domain.Trip, 0, len(out))
	for _, dto := range out {
		trips = append(trips, tripFromResponse(dto))
	}
	return trips, nil
}

func (s *TripService) GetItinerary(ctx context.Context, id int64) (domain.Trip, error) {
	var out tripResponse
	if err := s.c.get(ctx, "trips.get", fmt.Sprintf("/trips/itineraries/%d", id), nil, &out, true); err != nil {
		return domain.Trip{}, err
	}
	return tripFromResponse(out), nil
}

func (s *TripService) CreateItinerary(ctx context.Context, in domain.TripInput) (domain.Trip, error) {
	body := tripRequest{
		Name:      in.Name,
		CityID:    in.CityID,
		StartDate: in.StartDate.Format(wireDate),
		EndDate:   in.EndDate.Format(wireDate),
	}
	var out tripResponse
	if err := s.c.post(ctx, "trips.create", "/trips/itineraries", body, &out, true); err != nil {
		return domain.Trip{}, err
	}
	return tripFromResponse(out), nil
}

func (s *TripService) UpdateItinerary(ctx context.Context, id int64, in domain.TripInput) (domain.Trip, error) {
	body := tripRequest{
		Name:      in.Name,
		CityID:    in.CityID,
		StartDate: in.StartDate.Format(wireDate),
		EndDate:   in.EndDate.Format(wireDate),
	}
	var out tripResponse
	if err := s.c.put(ctx, "trips.update", fmt.Sprintf("/trips/itineraries/%d", id), body, &out, true); err != nil {
		return domain.Trip{}, err
	}
	return tripFromResponse(out), nil
}

func (s *TripService) DeleteItinerary(ctx context.Context, id int64) error {
	return s.c.delete(ctx, "trips.delete", fmt.Sprintf("/trips/itineraries/%d", id), true)
}

func (s *TripService) AddStayUnit(ctx context.Context, tripID int64, in domain.TripStayUnitInput) (domain.TripStayUnit, error) {
	body := tripStayUnitRequest{
		StayUnitID: in.StayUnitID,
		StartDate:  in.StartDate.Format(wireDate),
		EndDate:    in.EndDate.Format(wireDate),
	}
	var out tripStayUnitResponse
	if err := s.c.post(ctx, "trips.addUnit", fmt.Sprintf("/trips/itineraries/%d/stayunits", tripID), body, &out, true); err != nil {
		return domain.TripStayUnit{}, err
	}
	unit := tripStayUnitFromResponse(out)
	if unit.TripID == 0 {
		unit.TripID = tripID
	}
	return unit, nil
}

func (s *TripService) RemoveStayUnit(ctx context.Context, tripID, unitID int64) error {
	return s.c.delete(ctx, "trips.removeUnit", fmt.Sprintf("/trips/itineraries/%d/stayunits/%d", tripID, unitID), true)
}
