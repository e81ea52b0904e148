package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"travelbook/internal/app"
	"travelbook/internal/domain"
)

type fakeTrips struct {
	nextID  int64
	trips   map[int64]domain.Trip
	addErr  error
	addedTo []int64
}

func newFakeTrips() *fakeTrips {
	return &fakeTrips{nextID: 100, trips: map[int64]domain.Trip{}}
}

func (f *fakeTrips) ListItineraries(ctx context.Context) ([]domain.Trip, error) {
	out := []domain.Trip{}
	for _, t := range f.trips {
		out = append(out, t)
	}
	return out, nil
}
func (f *fakeTrips) GetItinerary(ctx context.Context, id int64) (domain.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	return t, nil
}
func (f *fakeTrips) CreateItinerary(ctx context.Context, in domain.TripInput) (domain.Trip, error) {
	f.nextID++
	t := domain.Trip{ID: f.nextID, Name: in.Name, StartDate: in.StartDate, EndDate: in.EndDate}
	f.trips[t.ID] = t
	return t, nil
}
func (f *fakeTrips) UpdateItinerary(ctx context.Context, id int64, in domain.TripInput) (domain.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	t.Name = in.Name
	f.trips[id] = t
	return t, nil
}
func (f *fakeTrips) DeleteItinerary(ctx context.Context, id int64) error {
	delete(f.trips, id)
	return nil
}
func (f *fakeTrips) AddStayUnit(ctx context.Context, tripID int64, in domain.TripStayUnitInput) (domain.TripStayUnit, error) {
	if f.addErr != nil {
		return domain.TripStayUnit{}, f.addErr
	}
	t := f.trips[tripID]
	unit := domain.TripStayUnit{
		ID:        int64(len(t.StayUnits) + 1),
		TripID:    tripID,
		StayUnit:  domain.StayUnit{ID: in.StayUnitID, StayID: in.StayUnitID * 10},
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	t.StayUnits = append(t.StayUnits, unit)
	f.trips[tripID] = t
	f.addedTo = append(f.addedTo, in.StayUnitID)
	return unit, nil
}
func (f *fakeTrips) RemoveStayUnit(ctx context.Context, tripID, unitID int64) error { return nil }

// fakeDrafts is an in-memory DraftStore.
type fakeDrafts struct {
	drafts map[string]domain.TripDraft
}

func newFakeDrafts() *fakeDrafts { return &fakeDrafts{drafts: map[string]domain.TripDraft{}} }

func (f *fakeDrafts) CreateDraft(ctx context.Context, in domain.TripInput) (domain.TripDraft, error) {
	d := domain.TripDraft{
		ID:        fmt.Sprintf("draft-%d", len(f.drafts)+1),
		Name:      in.Name,
		CityID:    in.CityID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Units:     []domain.DraftUnit{},
		CreatedAt: time.Now(),
	}
	f.drafts[d.ID] = d
	return d, nil
}
func (f *fakeDrafts) GetDraft(ctx context.Context, id string) (domain.TripDraft, error) {
	d, ok := f.drafts[id]
	if !ok {
		return domain.TripDraft{}, domain.ErrNotFound
	}
	return d, nil
}
func (f *fakeDrafts) ListDrafts(ctx context.Context) ([]domain.TripDraft, error) {
	out := []domain.TripDraft{}
	for _, d := range f.drafts {
		out = append(out, d)
	}
	return out, nil
}
func (f *fakeDrafts) DeleteDraft(ctx context.Context, id string) error {
	if _, ok := f.drafts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.drafts, id)
	return nil
}
func (f *fakeDrafts) AddUnit(ctx context.Context, draftID string, in domain.TripStayUnitInput) (domain.TripDraft, error) {
	d, ok := f.drafts[draftID]
	if !ok {
		return domain.TripDraft{}, domain.ErrNotFound
	}
	d.Units = append(d.Units, domain.DraftUnit{
		ID:         int64(len(d.Units) + 1),
		StayUnitID: in.StayUnitID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
	})
	f.drafts[draftID] = d
	return d, nil
}
func (f *fakeDrafts) RemoveUnit(ctx context.Context, draftID string, unitID int64) error {
	return nil
}

func testPlanner(trips *fakeTrips, drafts *fakeDrafts, stays *fakeStays) *app.Planner {
	catalog := app.NewCatalog(&fakeCities{}, stays, &fakeCache{}, time.Minute)
	return app.NewPlanner(trips, drafts, catalog)
}

func TestSubmitDraft(t *testing.T) {
	trips := newFakeTrips()
	drafts := newFakeDrafts()
	p := testPlanner(trips, drafts, &fakeStays{})
	ctx := context.Background()

	draft, err := p.CreateDraft(ctx, domain.TripInput{Name: "Algarve week"})
	if err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}
	for _, unitID := range []int64{3, 4} {
		if _, err := p.AddDraftUnit(ctx, draft.ID, domain.TripStayUnitInput{StayUnitID: unitID}); err != nil {
			t.Fatalf("AddDraftUnit %d: %v", unitID, err)
		}
	}

	trip, err := p.SubmitDraft(ctx, draft.ID)
	if err != nil {
		t.Fatalf("SubmitDraft: %v", err)
	}
	if trip.Name != "Algarve week" {
		t.Fatalf("trip = %+v", trip)
	}
	if len(trip.StayUnits) != 2 {
		t.Fatalf("expected 2 attached units, got %d", len(trip.StayUnits))
	}
	if len(drafts.drafts) != 0 {
		t.Fatal("draft must be deleted after submit")
	}
}

func TestSubmitDraft_UnitFailureKeepsDraft(t *testing.T) {
	trips := newFakeTrips()
	trips.addErr = &domain.APIError{Status: 400, Message: "validation failed"}
	drafts := newFakeDrafts()
	p := testPlanner(trips, drafts, &fakeStays{})
	ctx := context.Background()

	draft, _ := p.CreateDraft(ctx, domain.TripInput{Name: "Broken"})
	_, _ = p.AddDraftUnit(ctx, draft.ID, domain.TripStayUnitInput{StayUnitID: 1})

	_, err := p.SubmitDraft(ctx, draft.ID)
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected wrapped APIError, got %v", err)
	}
	if _, err := drafts.GetDraft(ctx, draft.ID); err != nil {
		t.Fatal("draft must survive a failed submit")
	}
}

func TestDetails_ResolvesStays(t *testing.T) {
	trips := newFakeTrips()
	drafts := newFakeDrafts()
	stays := &fakeStays{stays: map[int64]domain.Stay{
		30: {ID: 30, Name: "Harbor Inn"},
		40: {ID: 40, Name: "Cliff House"},
	}}
	p := testPlanner(trips, drafts, stays)
	ctx := context.Background()

	trip, _ := trips.CreateItinerary(ctx, domain.TripInput{Name: "Two stops"})
	for _, unitID := range []int64{3, 4} {
		if _, err := trips.AddStayUnit(ctx, trip.ID, domain.TripStayUnitInput{StayUnitID: unitID}); err != nil {
			t.Fatalf("AddStayUnit: %v", err)
		}
	}

	details, err := p.Details(ctx, trip.ID)
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if len(details.Stays) != 2 {
		t.Fatalf("expected 2 resolved stays, got %d", len(details.Stays))
	}
	if details.Stays[30].Name != "Harbor Inn" || details.Stays[40].Name != "Cliff House" {
		t.Fatalf("stays = %+v", details.Stays)
	}
}
