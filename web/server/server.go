// Package server is a small read-only HTTP API for events.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/starshine-sys/rsvp/store"
)

type Server struct {
	Events store.EventStore
}

// New returns the API's router.
func New(events store.EventStore) http.Handler {
	s := &Server{Events: events}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", s.health)
	r.Route("/guilds/{guildID}/events", func(r chi.Router) {
		r.Get("/", s.guildEvents)
		r.Get("/{messageID}", s.event)
		r.Get("/{messageID}/calendar.ics", s.eventICS)
	})

	return r
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s *Server) error(w http.ResponseWriter, r *http.Request, code int, msg string) {
	render.Status(r, code)
	render.JSON(w, r, apiError{Code: code, Message: msg})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
