package graphql

// Wire shapes of the GraphQL transport. Every id is a string (GraphQL ID
// scalar); parsing to int64 happens at the mapper and nowhere else.

type pagePayload[T any] struct {
	Content       []T `json:"content"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

type regionPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type statePayload struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code"`
}

type countryPayload struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Code   *string        `json:"code"`
	Region *regionPayload `json:"region"`
	States []statePayload `json:"states"`
	Cities []cityPayload  `json:"cities"`
}

type cityPayload struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Featured bool            `json:"featured"`
	ImageURL *string         `json:"imageUrl"`
	Country  *countryPayload `json:"country"`
	State    *statePayload   `json:"state"`
}

type servicePayload struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

type stayTypePayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type imagePayload struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Main bool   `json:"main"`
}

type stayUnitPayload struct {
	ID            string       `json:"id"`
	StayID        string       `json:"stayId"`
	StayNumber    int          `json:"stayNumber"`
	NumberOfBeds  int          `json:"numberOfBeds"`
	Capacity      int          `json:"capacity"`
	PricePerNight float64      `json:"pricePerNight"`
	RoomType      string       `json:"roomType"`
	Stay          *stayPayload `json:"stay"`
}

type stayPayload struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Description string            `json:"description"`
	City        *cityPayload      `json:"city"`
	StayType    *stayTypePayload  `json:"stayType"`
	Services    []servicePayload  `json:"services"`
	Units       []stayUnitPayload `json:"units"`
	Images      []imagePayload    `json:"images"`
	Company     *companyPayload   `json:"company"`
}

type companyPayload struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type userPayload struct {
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Company   *companyPayload `json:"company"`
}

type tripStayUnitPayload struct {
	ID        string          `json:"id"`
	TripID    string          `json:"tripId"`
	StayUnit  stayUnitPayload `json:"stayUnit"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
}

type tripPayload struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	City      *cityPayload          `json:"city"`
	Country   *countryPayload       `json:"country"`
	StartDate string                `json:"startDate"`
	EndDate   string                `json:"endDate"`
	StayUnits []tripStayUnitPayload `json:"stayUnits"`
}

type authPayload struct {
	Token string `json:"token"`
}

type chatMessagePayload struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type chatPayload struct {
	Response  string        `json:"response"`
	SessionID string        `json:"sessionId"`
	Hotels    []stayPayload `json:"hotels"`
}
