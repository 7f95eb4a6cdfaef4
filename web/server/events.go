package server

import (
	"net/http"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/starshine-sys/rsvp/store"
)

type apiEvent struct {
	ID        uuid.UUID         `json:"id"`
	GuildID   discord.GuildID   `json:"guild_id"`
	ChannelID discord.ChannelID `json:"channel_id"`
	MessageID discord.MessageID `json:"message_id"`
	CreatorID discord.UserID    `json:"creator_id"`
	URL       string            `json:"url"`

	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Time        time.Time `json:"time"`
	Image       string    `json:"image,omitempty"`

	Attendees []discord.UserID `json:"attendees"`
	Maybe     []discord.UserID `json:"maybe"`
	Pass      []discord.UserID `json:"pass"`
	Started   bool             `json:"started"`
}

func newAPIEvent(ev store.Event) apiEvent {
	rosters := ev.Rosters.Clone()
	return apiEvent{
		ID:          ev.ID,
		GuildID:     ev.GuildID,
		ChannelID:   ev.ChannelID,
		MessageID:   ev.MessageID,
		CreatorID:   ev.CreatorID,
		URL:         ev.MessageURL(),
		Title:       ev.Title,
		Description: ev.Description,
		Time:        ev.Time.UTC(),
		Image:       ev.Image,
		Attendees:   rosters.Attendees,
		Maybe:       rosters.Maybe,
		Pass:        rosters.Pass,
		Started:     ev.Started,
	}
}

func (s *Server) guildEvents(w http.ResponseWriter, r *http.Request) {
	sf, err := discord.ParseSnowflake(chi.URLParam(r, "guildID"))
	if err != nil {
		s.error(w, r, http.StatusBadRequest, "invalid guild ID")
		return
	}
	guildID := discord.GuildID(sf)

	evs, err := s.Events.GuildEvents(r.Context(), guildID)
	if err != nil {
		log.Errorf("getting events for guild %v: %v", guildID, err)
		s.error(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]apiEvent, 0, len(evs))
	for _, ev := range evs {
		out = append(out, newAPIEvent(ev))
	}
	render.JSON(w, r, out)
}

func (s *Server) event(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.lookupEvent(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, newAPIEvent(ev))
}

// lookupEvent returns the event named by the request's URL parameters.
// If it returns false, an error response has already been written.
func (s *Server) lookupEvent(w http.ResponseWriter, r *http.Request) (store.Event, bool) {
	guildSf, err := discord.ParseSnowflake(chi.URLParam(r, "guildID"))
	if err != nil {
		s.error(w, r, http.StatusBadRequest, "invalid guild ID")
		return store.Event{}, false
	}
	msgSf, err := discord.ParseSnowflake(chi.URLParam(r, "messageID"))
	if err != nil {
		s.error(w, r, http.StatusBadRequest, "invalid message ID")
		return store.Event{}, false
	}

	ev, err := s.Events.EventByMessage(r.Context(), discord.GuildID(guildSf), discord.MessageID(msgSf))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.error(w, r, http.StatusNotFound, "event not found")
			return ev, false
		}
		log.Errorf("getting event for message %v: %v", msgSf, err)
		s.error(w, r, http.StatusInternalServerError, "internal server error")
		return ev, false
	}
	return ev, true
}
