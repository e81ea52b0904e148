package stubserver

import "sync"

// Wire shapes match the backend's REST contract.

type country struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code,omitempty"`
}

type city struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Featured bool     `json:"featured"`
	ImageURL *string  `json:"imageUrl,omitempty"`
	Country  *country `json:"country,omitempty"`
}

type stayType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type service struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon,omitempty"`
}

type stayUnit struct {
	ID            int64   `json:"id"`
	StayID        int64   `json:"stayId"`
	StayNumber    int     `json:"stayNumber"`
	NumberOfBeds  int     `json:"numberOfBeds"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"pricePerNight"`
	RoomType      string  `json:"roomType"`
}

type stay struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Description string     `json:"description"`
	City        *city      `json:"city,omitempty"`
	StayType    *stayType  `json:"stayType,omitempty"`
	Services    []service  `json:"services,omitempty"`
	Units       []stayUnit `json:"units"`
}

type tripUnit struct {
	ID        int64    `json:"id"`
	TripID    int64    `json:"tripId"`
	StayUnit  stayUnit `json:"stayUnit"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
}

type trip struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	City      *city      `json:"city,omitempty"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	StayUnits []tripUnit `json:"stayUnits"`
}

type account struct {
	Password  string
	FirstName string
	LastName  string
}

type chatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type state struct {
	mu sync.Mutex

	accounts map[string]account // email -> account
	tokens   map[string]string  // token -> email

	cities    []city
	stays     []stay
	stayTypes []stayType
	services  []service

	trips        map[int64]*trip
	nextTripID   int64
	nextUnitID   int64
	nextTripUnit int64

	sessions map[string][]chatMessage
}

func ptr[T any](v T) *T { return &v }

func seed() *state {
	pt := country{ID: 1, Name: "Portugal", Code: ptr("PT")}
	lisbon := city{ID: 1, Name: "Lisbon", Featured: true, Country: &pt}
	porto := city{ID: 2, Name: "Porto", Country: &pt}

	hotel := stayType{ID: 1, Name: "Hotel"}
	hostel := stayType{ID: 2, Name: "Hostel"}
	wifi := service{ID: 1, Name: "WiFi"}
	pool := service{ID: 2, Name: "Pool"}

	return &state{
		accounts: map[string]account{
			"demo@travelbook.dev": {Password: "demo", FirstName: "Demo", LastName: "User"},
		},
		tokens:    map[string]string{},
		cities:    []city{lisbon, porto},
		stayTypes: []stayType{hotel, hostel},
		services:  []service{wifi, pool},
		stays: []stay{
			{
				ID: 1, Name: "Harbor Inn", Address: "Rua do Cais 1",
				Latitude: 38.707, Longitude: -9.136,
				Description: "Riverside rooms near the old town.",
				City:        &lisbon, StayType: &hotel, Services: []service{wifi, pool},
				Units: []stayUnit{
					{ID: 1, StayID: 1, StayNumber: 101, NumberOfBeds: 1, Capacity: 2, PricePerNight: 90, RoomType: "double"},
					{ID: 2, StayID: 1, StayNumber: 102, NumberOfBeds: 2, Capacity: 4, PricePerNight: 150, RoomType: "family"},
				},
			},
			{
				ID: 2, Name: "Cliff House", Address: "Rua das Flores 20",
				Latitude: 41.141, Longitude: -8.611,
				Description: "Small hostel above the Douro.",
				City:        &porto, StayType: &hostel, Services: []service{wifi},
				Units: []stayUnit{
					{ID: 3, StayID: 2, StayNumber: 1, NumberOfBeds: 6, Capacity: 6, PricePerNight: 25, RoomType: "dorm"},
				},
			},
		},
		trips:        map[int64]*trip{},
		nextTripID:   100,
		nextUnitID:   100,
		nextTripUnit: 100,
		sessions:     map[string][]chatMessage{},
	}
}

func (st *state) findStay(id int64) *stay {
	for i := range st.stays {
		if st.stays[i].ID == id {
			return &st.stays[i]
		}
	}
	return nil
}

func (st *state) findUnit(id int64) *stayUnit {
	for i := range st.stays {
		for j := range st.stays[i].Units {
			if st.stays[i].Units[j].ID == id {
				return &st.stays[i].Units[j]
			}
		}
	}
	return nil
}
