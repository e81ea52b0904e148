package stubserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server is an in-memory stand-in for the travel backend's REST API.
// It exists for offline development and for the end-to-end tests; data
// lives in process and resets on restart.
type Server struct {
	mux   *chi.Mux
	state *state
}

func New(l zerolog.Logger) *Server {
	m := chi.NewRouter()
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Logger(l))

	s := &Server{mux: m, state: seed()}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Post("/auth/login", s.login)
	s.mux.Post("/auth/register", s.register)

	s.mux.Get("/cities", s.listCities)
	s.mux.Get("/cities/{id}", s.getCity)
	s.mux.Get("/stays", s.listStays)
	s.mux.Get("/stays/nearby", s.nearbyStays)
	s.mux.Get("/stays/city/{id}", s.staysByCity)
	s.mux.Get("/stays/{id}", s.getStay)
	s.mux.Get("/stay-types", s.listStayTypes)
	s.mux.Get("/services", s.listServices)

	s.mux.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/user/profile", s.profile)
		r.Route("/trips/itineraries", func(r chi.Router) {
			r.Get("/", s.listTrips)
			r.Post("/", s.createTrip)
			r.Get("/{id}", s.getTrip)
			r.Put("/{id}", s.updateTrip)
			r.Delete("/{id}", s.deleteTrip)
			r.Post("/{id}/stayunits", s.addTripUnit)
			r.Delete("/{id}/stayunits/{unitId}", s.removeTripUnit)
		})
		r.Post("/agent/chat", s.chat)
		r.Get("/agent/session/{id}/history", s.chatHistory)
	})
}
