package domain

// Service is an amenity a stay offers (wifi, parking, ...).
type Service struct {
	ID   int64
	Name string
	Icon *string
}

type StayType struct {
	ID   int64
	Name string
}

type Image struct {
	ID   int64
	URL  string
	Main bool
}

// StayUnit is a rentable room/unit within a Stay. Stay is the parent
// back-reference, populated only when explicitly requested upstream to
// avoid unbounded cyclic expansion; StayID is set whenever known.
type StayUnit struct {
	ID            int64
	StayID        int64
	StayNumber    int
	NumberOfBeds  int
	Capacity      int
	PricePerNight float64
	RoomType      string
	Stay          *Stay
}

// Stay is a bookable property. Units is never nil: mappers default it to
// an empty slice when the upstream list is absent.
type Stay struct {
	ID          int64
	Name        string
	Address     string
	Lat, Lon    float64
	Description string
	City        *City
	StayType    *StayType
	Services    []Service
	Units       []StayUnit
	Images      []Image
	Company     *Company
}
