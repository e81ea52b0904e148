package domain

import (
	"math"
	"time"
)

// Trip is a planned travel period tied to a destination, holding zero or
// more booked stay units.
type Trip struct {
	ID        int64
	Name      string
	City      *City
	Country   *Country
	StartDate time.Time
	EndDate   time.Time
	StayUnits []TripStayUnit
}

// Destination renders "{city}, {country}", or "Unknown" when either is
// missing.
func (t Trip) Destination() string {
	city := t.City
	country := t.Country
	if country == nil && city != nil {
		country = city.Country
	}
	if city == nil || country == nil {
		return "Unknown"
	}
	return city.Name + ", " + country.Name
}

func (t Trip) DurationDays() int {
	return daysBetween(t.StartDate, t.EndDate)
}

// TripStayUnit joins a Trip and a StayUnit with the stay dates within
// the trip.
type TripStayUnit struct {
	ID        int64
	TripID    int64
	StayUnit  StayUnit
	StartDate time.Time
	EndDate   time.Time
}

func (u TripStayUnit) DurationDays() int {
	return daysBetween(u.StartDate, u.EndDate)
}

// daysBetween is the ceiling of the day difference; same-day spans are 0.
func daysBetween(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
