package stubserver

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type page struct {
	Content       any `json:"content"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeValidation(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"message": "validation failed",
		"errors":  fields,
	})
}

func urlID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id
}

// ---- auth ----

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.state.mu.Lock()
		_, ok := s.state.tokens[token]
		s.state.mu.Unlock()
		if token == "" || !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid or expired token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	acct, ok := s.state.accounts[in.Email]
	if !ok || acct.Password != in.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "bad credentials"})
		return
	}
	token := uuid.NewString()
	s.state.tokens[token] = in.Email
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)

	fields := map[string][]string{}
	if in.Email == "" {
		fields["email"] = append(fields["email"], "must not be blank")
	}
	if in.Password == "" {
		fields["password"] = append(fields["password"], "must not be blank")
	}
	if len(fields) > 0 {
		writeValidation(w, fields)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if _, exists := s.state.accounts[in.Email]; exists {
		writeValidation(w, map[string][]string{"email": {"already registered"}})
		return
	}
	s.state.accounts[in.Email] = account{Password: in.Password, FirstName: in.FirstName, LastName: in.LastName}
	token := uuid.NewString()
	s.state.tokens[token] = in.Email
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	email := s.state.tokens[token]
	acct := s.state.accounts[email]
	writeJSON(w, http.StatusOK, map[string]any{
		"email":     email,
		"firstName": acct.FirstName,
		"lastName":  acct.LastName,
	})
}

// ---- catalog ----

func (s *Server) listCities(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []city{}
	featuredOnly := r.URL.Query().Get("featured") == "true"
	for _, c := range s.state.cities {
		if featuredOnly && !c.Featured {
			continue
		}
		out = append(out, c)
	}
	writeJSON(w, http.StatusOK, page{Content: out, TotalPages: 1, TotalElements: len(out), Size: len(out)})
}

func (s *Server) getCity(w http.ResponseWriter, r *http.Request) {
	id := urlID(r, "id")
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, c := range s.state.cities {
		if c.ID == id {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	http.NotFound(w, r)
}

func (s *Server) listStays(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	writeJSON(w, http.StatusOK, page{
		Content: s.state.stays, TotalPages: 1,
		TotalElements: len(s.state.stays), Size: len(s.state.stays),
	})
}

func (s *Server) getStay(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if st := s.state.findStay(urlID(r, "id")); st != nil {
		writeJSON(w, http.StatusOK, st)
		return
	}
	http.NotFound(w, r)
}

func (s *Server) staysByCity(w http.ResponseWriter, r *http.Request) {
	cityID := urlID(r, "id")
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := []stay{}
	for _, st := range s.state.stays {
		if st.City != nil && st.City.ID == cityID {
			out = append(out, st)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) nearbyStays(w http.ResponseWriter, r *http.Request) {
	lat, _ := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, _ := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	radius, _ := strconv.ParseFloat(r.URL.Query().Get("radius"), 64)
	if radius == 0 {
		radius = 10
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := []stay{}
	for _, st := range s.state.stays {
		if haversineKm(lat, lon, st.Latitude, st.Longitude) <= radius {
			out = append(out, st)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const r = 6371
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * r * math.Asin(math.Sqrt(a))
}

func (s *Server) listStayTypes(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	writeJSON(w, http.StatusOK, s.state.stayTypes)
}

func (s *Server) listServices(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	writeJSON(w, http.StatusOK, s.state.services)
}

// ---- trips ----

func validateTrip(name, start, end string) map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = append(fields["name"], "must not be blank")
	}
	s, serr := time.Parse(time.RFC3339, start)
	if serr != nil {
		fields["startDate"] = append(fields["startDate"], "must be a valid date")
	}
	e, eerr := time.Parse(time.RFC3339, end)
	if eerr != nil {
		fields["endDate"] = append(fields["endDate"], "must be a valid date")
	}
	if serr == nil && eerr == nil && e.Before(s) {
		fields["endDate"] = append(fields["endDate"], "must not precede startDate")
	}
	return fields
}

type tripRequest struct {
	Name      string `json:"name"`
	CityID    *int64 `json:"cityId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := []*trip{}
	for _, t := range s.state.trips {
		out = append(out, t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if t, ok := s.state.trips[urlID(r, "id")]; ok {
		writeJSON(w, http.StatusOK, t)
		return
	}
	http.NotFound(w, r)
}

func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var in tripRequest
	_ = json.NewDecoder(r.Body).Decode(&in)
	if fields := validateTrip(in.Name, in.StartDate, in.EndDate); len(fields) > 0 {
		writeValidation(w, fields)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.nextTripID++
	t := &trip{
		ID: s.state.nextTripID, Name: in.Name,
		StartDate: in.StartDate, EndDate: in.EndDate,
		StayUnits: []tripUnit{},
	}
	if in.CityID != nil {
		for _, c := range s.state.cities {
			if c.ID == *in.CityID {
				cc := c
				t.City = &cc
			}
		}
	}
	s.state.trips[t.ID] = t
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	var in tripRequest
	_ = json.NewDecoder(r.Body).Decode(&in)
	if fields := validateTrip(in.Name, in.StartDate, in.EndDate); len(fields) > 0 {
		writeValidation(w, fields)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	t, ok := s.state.trips[urlID(r, "id")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	t.Name, t.StartDate, t.EndDate = in.Name, in.StartDate, in.EndDate
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	id := urlID(r, "id")
	if _, ok := s.state.trips[id]; !ok {
		http.NotFound(w, r)
		return
	}
	delete(s.state.trips, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addTripUnit(w http.ResponseWriter, r *http.Request) {
	var in struct {
		StayUnitID int64  `json:"stayUnitId"`
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	t, ok := s.state.trips[urlID(r, "id")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	unit := s.state.findUnit(in.StayUnitID)
	if unit == nil {
		writeValidation(w, map[string][]string{"stayUnitId": {"unknown stay unit"}})
		return
	}
	s.state.nextTripUnit++
	tu := tripUnit{
		ID: s.state.nextTripUnit, TripID: t.ID,
		StayUnit: *unit, StartDate: in.StartDate, EndDate: in.EndDate,
	}
	t.StayUnits = append(t.StayUnits, tu)
	writeJSON(w, http.StatusOK, tu)
}

func (s *Server) removeTripUnit(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	t, ok := s.state.trips[urlID(r, "id")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	unitID := urlID(r, "unitId")
	for i, u := range t.StayUnits {
		if u.ID == unitID {
			t.StayUnits = append(t.StayUnits[:i], t.StayUnits[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.NotFound(w, r)
}

// ---- assistant ----

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Message   string  `json:"message"`
		SessionID *string `json:"sessionId"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	session := uuid.NewString()
	if in.SessionID != nil && *in.SessionID != "" {
		session = *in.SessionID
	}

	reply := "Harbor Inn in Lisbon fits that; want me to add it to a draft?"
	now := time.Now().UTC().Format(time.RFC3339)
	s.state.sessions[session] = append(s.state.sessions[session],
		chatMessage{Role: "user", Content: in.Message, Timestamp: now},
		chatMessage{Role: "agent", Content: reply, Timestamp: now},
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"response":  reply,
		"sessionId": session,
		"hotels":    []stay{s.state.stays[0]},
	})
}

func (s *Server) chatHistory(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	msgs, ok := s.state.sessions[chi.URLParam(r, "id")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
