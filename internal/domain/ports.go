package domain

import (
	"context"
	"time"
)

// Per-entity service ports. Each has two sibling implementations, one per
// transport (REST and GraphQL); consumers depend on these interfaces only.

type AuthService interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResult, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (User, error)
	Authenticated() bool
}

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type CityService interface {
	ListCities(ctx context.Context, q CitiesQuery) ([]City, error)
	GetCity(ctx context.Context, id int64) (City, error)
}

type CitiesQuery struct {
	Featured *bool
	Page     int
	Size     int
}

type StayService interface {
	ListStays(ctx context.Context, q PageQuery) (StaysPage, error)
	GetStay(ctx context.Context, id int64) (Stay, error)
	ListStaysByCity(ctx context.Context, cityID int64) ([]Stay, error)
	ListNearbyStays(ctx context.Context, lat, lon, radiusKm float64) ([]Stay, error)
	ListStayTypes(ctx context.Context) ([]StayType, error)
	ListServices(ctx context.Context) ([]Service, error)

	// Host-side unit management.
	CreateStayUnit(ctx context.Context, stayID int64, in StayUnitInput) (StayUnit, error)
	UpdateStayUnit(ctx context.Context, id int64, in StayUnitInput) (StayUnit, error)
	DeleteStayUnit(ctx context.Context, id int64) error
}

type StayUnitInput struct {
	StayNumber    int
	NumberOfBeds  int
	Capacity      int
	PricePerNight float64
	RoomType      string
}

type PageQuery struct {
	Page int
	Size int
}

type StaysPage struct {
	Items         []Stay
	TotalPages    int
	TotalElements int
	Page          int
	Size          int
}

type TripService interface {
	ListItineraries(ctx context.Context) ([]Trip, error)
	GetItinerary(ctx context.Context, id int64) (Trip, error)
	CreateItinerary(ctx context.Context, in TripInput) (Trip, error)
	UpdateItinerary(ctx context.Context, id int64, in TripInput) (Trip, error)
	DeleteItinerary(ctx context.Context, id int64) error
	AddStayUnit(ctx context.Context, tripID int64, in TripStayUnitInput) (TripStayUnit, error)
	RemoveStayUnit(ctx context.Context, tripID, unitID int64) error
}

type TripInput struct {
	Name      string
	CityID    *int64
	StartDate time.Time
	EndDate   time.Time
}

type TripStayUnitInput struct {
	StayUnitID int64
	StartDate  time.Time
	EndDate    time.Time
}

type CompanyService interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	GetCompany(ctx context.Context, id int64) (Company, error)
	CreateCompany(ctx context.Context, in CompanyInput) (Company, error)
	UpdateCompany(ctx context.Context, id int64, in CompanyInput) (Company, error)
}

type CompanyInput struct {
	Name        string
	Email       string
	Phone       *string
	Description *string
}

type AgentService interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResult, error)
	SessionHistory(ctx context.Context, sessionID string) ([]ChatMessage, error)
}

// ChatRequest carries the user message; SessionID is nil on the first
// turn and the id returned by the previous ChatResult afterwards.
type ChatRequest struct {
	Message   string
	SessionID *string
}

// TokenStore holds the bearer token between calls (the cookie analog).
type TokenStore interface {
	Token() (string, error)
	Save(token string) error
	Clear() error
	Authenticated() bool
}

// Cache stores JSON-serializable values. ttlSec 0 means no expiry.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// DraftStore keeps client-only itinerary drafts; nothing reaches the
// backend until the draft is submitted.
type DraftStore interface {
	CreateDraft(ctx context.Context, in TripInput) (TripDraft, error)
	GetDraft(ctx context.Context, id string) (TripDraft, error)
	ListDrafts(ctx context.Context) ([]TripDraft, error)
	DeleteDraft(ctx context.Context, id string) error
	AddUnit(ctx context.Context, draftID string, in TripStayUnitInput) (TripDraft, error)
	RemoveUnit(ctx context.Context, draftID string, unitID int64) error
}

type TripDraft struct {
	ID        string
	Name      string
	CityID    *int64
	StartDate time.Time
	EndDate   time.Time
	Units     []DraftUnit
	CreatedAt time.Time
}

type DraftUnit struct {
	ID         int64
	StayUnitID int64
	StartDate  time.Time
	EndDate    time.Time
}
