package rest

// Wire shapes of the REST backend. Ids are numeric on this transport; the
// GraphQL sibling carries string ids. Never used outside this package.

type pageResponse[T any] struct {
	Content       []T `json:"content"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

type regionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type stateResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code"`
}

type countryResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Code   *string         `json:"code"`
	Region *regionResponse `json:"region"`
	States []stateResponse `json:"states"`
	Cities []cityResponse  `json:"cities"`
}

type cityResponse struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Featured bool             `json:"featured"`
	ImageURL *string          `json:"imageUrl"`
	Country  *countryResponse `json:"country"`
	State    *stateResponse   `json:"state"`
}

type serviceResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

type stayTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type imageResponse struct {
	ID   int64  `json:"id"`
	URL  string `json:"url"`
	Main bool   `json:"main"`
}

type stayUnitResponse struct {
	ID            int64         `json:"id"`
	StayID        int64         `json:"stayId"`
	StayNumber    int           `json:"stayNumber"`
	NumberOfBeds  int           `json:"numberOfBeds"`
	Capacity      int           `json:"capacity"`
	PricePerNight float64       `json:"pricePerNight"`
	RoomType      string        `json:"roomType"`
	Stay          *stayResponse `json:"stay"`
}

type stayResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Description string             `json:"description"`
	City        *cityResponse      `json:"city"`
	StayType    *stayTypeResponse  `json:"stayType"`
	Services    []serviceResponse  `json:"services"`
	Units       []stayUnitResponse `json:"units"`
	Images      []imageResponse    `json:"images"`
	Company     *companyResponse   `json:"company"`
}

type companyResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type userResponse struct {
	Email     string           `json:"email"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Company   *companyResponse `json:"company"`
}

type tripStayUnitResponse struct {
	ID        int64            `json:"id"`
	TripID    int64            `json:"tripId"`
	StayUnit  stayUnitResponse `json:"stayUnit"`
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
}

type tripResponse struct {
	ID        int64                  `json:"id"`
	Name      string                 `json:"name"`
	City      *cityResponse          `json:"city"`
	Country   *countryResponse       `json:"country"`
	StartDate string                 `json:"startDate"`
	EndDate   string                 `json:"endDate"`
	StayUnits []tripStayUnitResponse `json:"stayUnits"`
}

type authResponse struct {
	Token string `json:"token"`
}

type chatMessageResponse struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type chatResponse struct {
	Response  string         `json:"response"`
	SessionID string         `json:"sessionId"`
	Hotels    []stayResponse `json:"hotels"`
}
