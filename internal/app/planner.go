package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"travelbook/internal/domain"
)

// Planner coordinates local drafts and backend itineraries. Drafts are
// assembled offline in the DraftStore; Submit replays one against the
// backend and deletes it on success.
type Planner struct {
	trips   domain.TripService
	drafts  domain.DraftStore
	catalog *Catalog
}

func NewPlanner(trips domain.TripService, drafts domain.DraftStore, catalog *Catalog) *Planner {
	return &Planner{trips: trips, drafts: drafts, catalog: catalog}
}

func (p *Planner) CreateDraft(ctx context.Context, in domain.TripInput) (domain.TripDraft, error) {
	return p.drafts.CreateDraft(ctx, in)
}

func (p *Planner) Drafts(ctx context.Context) ([]domain.TripDraft, error) {
	return p.drafts.ListDrafts(ctx)
}

func (p *Planner) DeleteDraft(ctx context.Context, id string) error {
	return p.drafts.DeleteDraft(ctx, id)
}

func (p *Planner) AddDraftUnit(ctx context.Context, draftID string, in domain.TripStayUnitInput) (domain.TripDraft, error) {
	return p.drafts.AddUnit(ctx, draftID, in)
}

func (p *Planner) RemoveDraftUnit(ctx context.Context, draftID string, unitID int64) error {
	return p.drafts.RemoveUnit(ctx, draftID, unitID)
}

// SubmitDraft creates the itinerary, attaches every draft unit in order,
// and deletes the draft. A unit failure leaves the itinerary on the
// backend and the draft intact so the user can retry.
func (p *Planner) SubmitDraft(ctx context.Context, draftID string) (domain.Trip, error) {
	draft, err := p.drafts.GetDraft(ctx, draftID)
	if err != nil {
		return domain.Trip{}, err
	}

	trip, err := p.trips.CreateItinerary(ctx, domain.TripInput{
		Name:      draft.Name,
		CityID:    draft.CityID,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
	})
	if err != nil {
		return domain.Trip{}, err
	}

	for _, u := range draft.Units {
		if _, err := p.trips.AddStayUnit(ctx, trip.ID, domain.TripStayUnitInput{
			StayUnitID: u.StayUnitID,
			StartDate:  u.StartDate,
			EndDate:    u.EndDate,
		}); err != nil {
			return domain.Trip{}, fmt.Errorf("itinerary %d created; attach unit %d: %w", trip.ID, u.StayUnitID, err)
		}
	}

	if err := p.drafts.DeleteDraft(ctx, draftID); err != nil {
		return domain.Trip{}, err
	}
	return p.trips.GetItinerary(ctx, trip.ID)
}

func (p *Planner) Itineraries(ctx context.Context) ([]domain.Trip, error) {
	return p.trips.ListItineraries(ctx)
}

func (p *Planner) DeleteItinerary(ctx context.Context, id int64) error {
	return p.trips.DeleteItinerary(ctx, id)
}

// TripDetails is an itinerary plus the full stay for each booked unit.
type TripDetails struct {
	Trip  domain.Trip
	Stays map[int64]domain.Stay
}

// Details resolves the stays behind a trip's units concurrently.
func (p *Planner) Details(ctx context.Context, tripID int64) (TripDetails, error) {
	trip, err := p.trips.GetItinerary(ctx, tripID)
	if err != nil {
		return TripDetails{}, err
	}

	ids := map[int64]struct{}{}
	for _, u := range trip.StayUnits {
		if u.StayUnit.StayID != 0 {
			ids[u.StayUnit.StayID] = struct{}{}
		}
	}

	stays := make(map[int64]domain.Stay, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	results := make(chan domain.Stay, len(ids))
	for id := range ids {
		id := id
		g.Go(func() error {
			stay, err := p.catalog.Stay(gctx, id)
			if err != nil {
				return fmt.Errorf("stay %d: %w", id, err)
			}
			results <- stay
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return TripDetails{}, err
	}
	close(results)
	for stay := range results {
		stays[stay.ID] = stay
	}
	return TripDetails{Trip: trip, Stays: stays}, nil
}
