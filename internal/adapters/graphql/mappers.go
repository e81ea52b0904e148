package graphql

import (
	"strconv"
	"time"

	"travelbook/internal/domain"
)

// GraphQL serves ids as strings. The mappers own the numeric parse so
// string ids never leak past this package; an unparseable id maps to
// zero, same as any other malformed field.

func parseID(s string) int64 {
	id, _ := strconv.ParseInt(s, 10, 64)
	return id
}

func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func regionFromPayload(dto regionPayload) domain.Region {
	return domain.Region{ID: parseID(dto.ID), Name: dto.Name}
}

func stateFromPayload(dto statePayload) domain.State {
	return domain.State{ID: parseID(dto.ID), Name: dto.Name, Code: dto.Code}
}

func countryFromPayload(dto countryPayload) domain.Country {
	out := domain.Country{ID: parseID(dto.ID), Name: dto.Name, Code: dto.Code}
	if dto.Region != nil {
		r := regionFromPayload(*dto.Region)
		out.Region = &r
	}
	for _, s := range dto.States {
		out.States = append(out.States, stateFromPayload(s))
	}
	for _, c := range dto.Cities {
		out.Cities = append(out.Cities, cityFromPayload(c))
	}
	return out
}

func cityFromPayload(dto cityPayload) domain.City {
	out := domain.City{ID: parseID(dto.ID), Name: dto.Name, Featured: dto.Featured, ImageURL: dto.ImageURL}
	if dto.Country != nil {
		c := countryFromPayload(*dto.Country)
		out.Country = &c
	}
	if dto.State != nil {
		s := stateFromPayload(*dto.State)
		out.State = &s
	}
	return out
}

func serviceFromPayload(dto servicePayload) domain.Service {
	return domain.Service{ID: parseID(dto.ID), Name: dto.Name, Icon: dto.Icon}
}

func stayTypeFromPayload(dto stayTypePayload) domain.StayType {
	return domain.StayType{ID: parseID(dto.ID), Name: dto.Name}
}

func imageFromPayload(dto imagePayload) domain.Image {
	return domain.Image{ID: parseID(dto.ID), URL: dto.URL, Main: dto.Main}
}

func stayUnitFromPayload(dto stayUnitPayload) domain.StayUnit {
	out := domain.StayUnit{
		ID:            parseID(dto.ID),
		StayID:        parseID(dto.StayID),
		StayNumber:    dto.StayNumber,
		NumberOfBeds:  dto.NumberOfBeds,
		Capacity:      dto.Capacity,
		PricePerNight: dto.PricePerNight,
		RoomType:      dto.RoomType,
	}
	if dto.Stay != nil {
		s := stayFromPayload(*dto.Stay)
		out.Stay = &s
		if out.StayID == 0 {
			out.StayID = s.ID
		}
	}
	return out
}

func stayFromPayload(dto stayPayload) domain.Stay {
	id := parseID(dto.ID)
	out := domain.Stay{
		ID:          id,
		Name:        dto.Name,
		Address:     dto.Address,
		Lat:         dto.Latitude,
		Lon:         dto.Longitude,
		Description: dto.Description,
		// Units is never nil so consumers can range without guards.
		Units: make([]domain.StayUnit, 0, len(dto.Units)),
	}
	if dto.City != nil {
		c := cityFromPayload(*dto.City)
		out.City = &c
	}
	if dto.StayType != nil {
		st := stayTypeFromPayload(*dto.StayType)
		out.StayType = &st
	}
	for _, s := range dto.Services {
		out.Services = append(out.Services, serviceFromPayload(s))
	}
	for _, u := range dto.Units {
		unit := stayUnitFromPayload(u)
		if unit.StayID == 0 {
			unit.StayID = id
		}
		out.Units = append(out.Units, unit)
	}
	for _, img := range dto.Images {
		out.Images = append(out.Images, imageFromPayload(img))
	}
	if dto.Company != nil {
		c := companyFromPayload(*dto.Company)
		out.Company = &c
	}
	return out
}

func companyFromPayload(dto companyPayload) domain.Company {
	return domain.Company{
		ID:          parseID(dto.ID),
		UserID:      parseID(dto.UserID),
		Name:        dto.Name,
		Email:       dto.Email,
		Phone:       dto.Phone,
		Description: dto.Description,
		CreatedAt:   parseDate(dto.CreatedAt),
		UpdatedAt:   parseDate(dto.UpdatedAt),
	}
}

func userFromPayload(dto userPayload) domain.User {
	out := domain.User{Email: dto.Email, FirstName: dto.FirstName, LastName: dto.LastName}
	if dto.Company != nil {
		c := companyFromPayload(*dto.Company)
		out.Company = &c
	}
	return out
}

func tripStayUnitFromPayload(dto tripStayUnitPayload) domain.TripStayUnit {
	return domain.TripStayUnit{
		ID:        parseID(dto.ID),
		TripID:    parseID(dto.TripID),
		StayUnit:  stayUnitFromPayload(dto.StayUnit),
		StartDate: parseDate(dto.StartDate),
		EndDate:   parseDate(dto.EndDate),
	}
}

func tripFromPayload(dto tripPayload) domain.Trip {
	id := parseID(dto.ID)
	out := domain.Trip{
		ID:        id,
		Name:      dto.Name,
		StartDate: parseDate(dto.StartDate),
		EndDate:   parseDate(dto.EndDate),
	}
	if dto.City != nil {
		c := cityFromPayload(*dto.City)
		out.City = &c
	}
	if dto.Country != nil {
		c := countryFromPayload(*dto.Country)
		out.Country = &c
	}
	for _, u := range dto.StayUnits {
		unit := tripStayUnitFromPayload(u)
		if unit.TripID == 0 {
			unit.TripID = id
		}
		out.StayUnits = append(out.StayUnits, unit)
	}
	return out
}

func messageFromPayload(dto chatMessagePayload) domain.ChatMessage {
	return domain.ChatMessage{
		Role:      domain.MessageRole(dto.Role),
		Content:   dto.Content,
		Timestamp: parseDate(dto.Timestamp),
	}
}

func chatFromPayload(dto chatPayload) domain.ChatResult {
	out := domain.ChatResult{Response: dto.Response, SessionID: dto.SessionID}
	for _, h := range dto.Hotels {
		out.Hotels = append(out.Hotels, stayFromPayload(h))
	}
	return out
}
