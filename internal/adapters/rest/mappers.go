package rest

import (
	"time"

	"travelbook/internal/domain"
)

// Pure DTO -> domain mappers. Total functions: a malformed field becomes
// a zero value, never an error; the backend contract guarantees shape.

// parseDate accepts RFC 3339 or bare dates; zero time otherwise.
func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func regionFromResponse(dto regionResponse) domain.Region {
	return domain.Region{ID: dto.ID, Name: dto.Name}
}

func stateFromResponse(dto stateResponse) domain.State {
	return domain.State{ID: dto.ID, Name: dto.Name, Code: dto.Code}
}

func countryFromResponse(dto countryResponse) domain.Country {
	out := domain.Country{ID: dto.ID, Name: dto.Name, Code: dto.Code}
	if dto.Region != nil {
		r := regionFromResponse(*dto.Region)
		out.Region = &r
	}
	for _, s := range dto.States {
		out.States = append(out.States, stateFromResponse(s))
	}
	for _, c := range dto.Cities {
		out.Cities = append(out.Cities, cityFromResponse(c))
	}
	return out
}

func cityFromResponse(dto cityResponse) domain.City {
	out := domain.City{ID: dto.ID, Name: dto.Name, Featured: dto.Featured, ImageURL: dto.ImageURL}
	if dto.Country != nil {
		c := countryFromResponse(*dto.Country)
		out.Country = &c
	}
	if dto.State != nil {
		s := stateFromResponse(*dto.State)
		out.State = &s
	}
	return out
}

func serviceFromResponse(dto serviceResponse) domain.Service {
	return domain.Service{ID: dto.ID, Name: dto.Name, Icon: dto.Icon}
}

func stayTypeFromResponse(dto stayTypeResponse) domain.StayType {
	return domain.StayType{ID: dto.ID, Name: dto.Name}
}

func imageFromResponse(dto imageResponse) domain.Image {
	return domain.Image{ID: dto.ID, URL: dto.URL, Main: dto.Main}
}

func stayUnitFromResponse(dto stayUnitResponse) domain.StayUnit {
	out := domain.StayUnit{
		ID:            dto.ID,
		StayID:        dto.StayID,
		StayNumber:    dto.StayNumber,
		NumberOfBeds:  dto.NumberOfBeds,
		Capacity:      dto.Capacity,
		PricePerNight: dto.PricePerNight,
		RoomType:      dto.RoomType,
	}
	if dto.Stay != nil {
		s := stayFromResponse(*dto.Stay)
		out.Stay = &s
		if out.StayID == 0 {
			out.StayID = s.ID
		}
	}
	return out
}

func stayFromResponse(dto stayResponse) domain.Stay {
	out := domain.Stay{
		ID:          dto.ID,
		Name:        dto.Name,
		Address:     dto.Address,
		Lat:         dto.Latitude,
		Lon:         dto.Longitude,
		Description: dto.Description,
		// Units is never nil so consumers can range without guards.
		Units: make([]domain.StayUnit, 0, len(dto.Units)),
	}
	if dto.City != nil {
		c := cityFromResponse(*dto.City)
		out.City = &c
	}
	if dto.StayType != nil {
		st := stayTypeFromResponse(*dto.StayType)
		out.StayType = &st
	}
	for _, s := range dto.Services {
		out.Services = append(out.Services, serviceFromResponse(s))
	}
	for _, u := range dto.Units {
		unit := stayUnitFromResponse(u)
		if unit.StayID == 0 {
			unit.StayID = dto.ID
		}
		out.Units = append(out.Units, unit)
	}
	for _, img := range dto.Images {
		out.Images = append(out.Images, imageFromResponse(img))
	}
	if dto.Company != nil {
		c := companyFromResponse(*dto.Company)
		out.Company = &c
	}
	return out
}

func companyFromResponse(dto companyResponse) domain.Company {
	return domain.Company{
		ID:          dto.ID,
		UserID:      dto.UserID,
		Name:        dto.Name,
		Email:       dto.Email,
		Phone:       dto.Phone,
		Description: dto.Description,
		CreatedAt:   parseDate(dto.CreatedAt),
		UpdatedAt:   parseDate(dto.UpdatedAt),
	}
}

func userFromResponse(dto userResponse) domain.User {
	out := domain.User{Email: dto.Email, FirstName: dto.FirstName, LastName: dto.LastName}
	if dto.Company != nil {
		c := companyFromResponse(*dto.Company)
		out.Company = &c
	}
	return out
}

func tripStayUnitFromResponse(dto tripStayUnitResponse) domain.TripStayUnit {
	return domain.TripStayUnit{
		ID:        dto.ID,
		TripID:    dto.TripID,
		StayUnit:  stayUnitFromResponse(dto.StayUnit),
		StartDate: parseDate(dto.StartDate),
		EndDate:   parseDate(dto.EndDate),
	}
}

func tripFromResponse(dto tripResponse) domain.Trip {
	out := domain.Trip{
		ID:        dto.ID,
		Name:      dto.Name,
		StartDate: parseDate(dto.StartDate),
		EndDate:   parseDate(dto.EndDate),
	}
	if dto.City != nil {
		c := cityFromResponse(*dto.City)
		out.City = &c
	}
	if dto.Country != nil {
		c := countryFromResponse(*dto.Country)
		out.Country = &c
	}
	for _, u := range dto.StayUnits {
		unit := tripStayUnitFromResponse(u)
		if unit.TripID == 0 {
			unit.TripID = dto.ID
		}
		out.StayUnits = append(out.StayUnits, unit)
	}
	return out
}

func messageFromResponse(dto chatMessageResponse) domain.ChatMessage {
	return domain.ChatMessage{
		Role:      domain.MessageRole(dto.Role),
		Content:   dto.Content,
		Timestamp: parseDate(dto.Timestamp),
	}
}

func chatFromResponse(dto chatResponse) domain.ChatResult {
	out := domain.ChatResult{Response: dto.Response, SessionID: dto.SessionID}
	for _, h := range dto.Hotels {
		out.Hotels = append(out.Hotels, stayFromResponse(h))
	}
	return out
}
