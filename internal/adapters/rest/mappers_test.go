package rest

import (
	"testing"
	"time"
)

func TestStayFromResponse_UnitsNeverNil(t *testing.T) {
	dto := stayResponse{ID: 7, Name: "Harbor View"}

	got := stayFromResponse(dto)
	if got.Units == nil {
		t.Fatal("Units must be an empty slice when absent upstream, not nil")
	}
	if len(got.Units) != 0 {
		t.Fatalf("expected 0 units, got %d", len(got.Units))
	}
}

func TestStayFromResponse_MapsNestedEntities(t *testing.T) {
	code := "PT"
	dto := stayResponse{
		ID:        7,
		Name:      "Harbor View",
		Address:   "Rua do Mar 1",
		Latitude:  38.71,
		Longitude: -9.14,
		City: &cityResponse{
			ID:   3,
			Name: "Lisbon",
			Country: &countryResponse{ID: 1, Name: "Portugal", Code: &code,
				Region: &regionResponse{ID: 9, Name: "Europe"}},
		},
		StayType: &stayTypeResponse{ID: 2, Name: "Hotel"},
		Services: []serviceResponse{{ID: 11, Name: "wifi"}},
		Units: []stayUnitResponse{
			{ID: 21, StayNumber: 101, NumberOfBeds: 2, Capacity: 3, PricePerNight: 80.5, RoomType: "double"},
		},
		Images:  []imageResponse{{ID: 31, URL: "https://img/1.jpg", Main: true}},
		Company: &companyResponse{ID: 41, UserID: 5, Name: "HostCo", Email: "host@co.test"},
	}

	got := stayFromResponse(dto)
	if got.City == nil || got.City.Name != "Lisbon" {
		t.Fatalf("city not mapped: %+v", got.City)
	}
	if got.City.Country == nil || got.City.Country.Region == nil || got.City.Country.Region.Name != "Europe" {
		t.Fatalf("nested country/region not mapped: %+v", got.City.Country)
	}
	if got.StayType == nil || got.StayType.Name != "Hotel" {
		t.Fatalf("stay type not mapped: %+v", got.StayType)
	}
	if len(got.Units) != 1 || got.Units[0].ID != 21 {
		t.Fatalf("units not mapped: %+v", got.Units)
	}
	// parent id backfilled from the enclosing stay
	if got.Units[0].StayID != 7 {
		t.Fatalf("unit StayID = %d, want 7", got.Units[0].StayID)
	}
	if got.Company == nil || got.Company.UserID != 5 {
		t.Fatalf("company not mapped: %+v", got.Company)
	}
}

func TestStayUnitFromResponse_ParentOnlyWhenRequested(t *testing.T) {
	got := stayUnitFromResponse(stayUnitResponse{ID: 21, StayID: 7})
	if got.Stay != nil {
		t.Fatal("Stay back-reference must stay nil unless present in the DTO")
	}

	got = stayUnitFromResponse(stayUnitResponse{ID: 21, Stay: &stayResponse{ID: 7, Name: "Harbor View"}})
	if got.Stay == nil || got.Stay.Name != "Harbor View" {
		t.Fatalf("expected populated back-reference, got %+v", got.Stay)
	}
	if got.StayID != 7 {
		t.Fatalf("StayID backfilled from parent = %d, want 7", got.StayID)
	}
}

func TestTripFromResponse_DatesAndDuration(t *testing.T) {
	dto := tripResponse{
		ID:        5,
		Name:      "Summer break",
		City:      &cityResponse{ID: 3, Name: "Lisbon", Country: &countryResponse{ID: 1, Name: "Portugal"}},
		StartDate: "2025-07-01T00:00:00Z",
		EndDate:   "2025-07-08T00:00:00Z",
		StayUnits: []tripStayUnitResponse{
			{ID: 1, StayUnit: stayUnitResponse{ID: 21}, StartDate: "2025-07-01", EndDate: "2025-07-04"},
		},
	}

	got := tripFromResponse(dto)
	if got.StartDate.IsZero() || got.EndDate.IsZero() {
		t.Fatal("dates must be normalized to time.Time")
	}
	if got.DurationDays() != 7 {
		t.Fatalf("DurationDays() = %d, want 7", got.DurationDays())
	}
	if got.Destination() != "Lisbon, Portugal" {
		t.Fatalf("Destination() = %q", got.Destination())
	}
	if len(got.StayUnits) != 1 {
		t.Fatalf("stay units not mapped: %+v", got.StayUnits)
	}
	if got.StayUnits[0].TripID != 5 {
		t.Fatalf("TripID backfilled = %d, want 5", got.StayUnits[0].TripID)
	}
	if got.StayUnits[0].DurationDays() != 3 {
		t.Fatalf("unit DurationDays() = %d, want 3", got.StayUnits[0].DurationDays())
	}
}

func TestParseDate_AcceptedLayouts(t *testing.T) {
	for _, s := range []string{"2025-07-01T12:30:00Z", "2025-07-01T12:30:00", "2025-07-01"} {
		if parseDate(s).IsZero() {
			t.Fatalf("parseDate(%q) returned zero time", s)
		}
	}
	if !parseDate("garbage").IsZero() {
		t.Fatal("malformed input must map to the zero time, not an error")
	}
}

func TestUserFromResponse_CompanyNilMeansNoCompany(t *testing.T) {
	got := userFromResponse(userResponse{Email: "a@b.test", FirstName: "Ana", LastName: "Silva"})
	if got.Company != nil {
		t.Fatal("absent company must map to nil")
	}
	if got.FullName() != "Ana Silva" {
		t.Fatalf("FullName() = %q", got.FullName())
	}
}

func TestCompanyFromResponse_Timestamps(t *testing.T) {
	got := companyFromResponse(companyResponse{
		ID: 1, UserID: 2, Name: "HostCo", Email: "h@c.test",
		CreatedAt: "2024-02-01T10:00:00Z", UpdatedAt: "2024-03-01T10:00:00Z",
	})
	want := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	if !got.CreatedAt.Equal(want) {
		t.Fatalf("CreatedAt = %v", got.CreatedAt)
	}
}
