// Package memory provides an in-memory store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/google/uuid"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/store"
)

var _ store.EventStore = (*Store)(nil)
var _ store.PendingEditStore = (*Store)(nil)

type Store struct {
	events   map[uuid.UUID]*store.Event
	eventsMu sync.RWMutex

	pending *common.Map[discord.UserID, store.PendingEdit]
}

func New() *Store {
	return &Store{
		events:  make(map[uuid.UUID]*store.Event),
		pending: common.NewMap[discord.UserID, store.PendingEdit](),
	}
}

// clone returns a copy of ev that shares no slices with it.
func clone(ev *store.Event) store.Event {
	out := *ev
	out.Rosters = ev.Rosters.Clone()
	return out
}

func (s *Store) CreateEvent(_ context.Context, ev store.Event) (store.Event, error) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	ev.ID = uuid.New()
	ev.CreatedAt = time.Now().UTC()
	ev.Rosters = ev.Rosters.Clone()

	s.events[ev.ID] = &ev
	return clone(&ev), nil
}

func (s *Store) SetEventMessage(_ context.Context, id uuid.UUID, channelID discord.ChannelID, messageID discord.MessageID) error {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	ev, ok := s.events[id]
	if !ok {
		return store.ErrNotFound
	}
	ev.ChannelID = channelID
	ev.MessageID = messageID
	return nil
}

func (s *Store) DeleteEvent(_ context.Context, id uuid.UUID) error {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	delete(s.events, id)
	return nil
}

// find must be called with eventsMu held.
func (s *Store) find(guildID discord.GuildID, messageID discord.MessageID) (*store.Event, bool) {
	if !messageID.IsValid() {
		return nil, false
	}

	for _, ev := range s.events {
		if ev.GuildID == guildID && ev.MessageID == messageID {
			return ev, true
		}
	}
	return nil, false
}

func (s *Store) EventByMessage(_ context.Context, guildID discord.GuildID, messageID discord.MessageID) (store.Event, error) {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()

	ev, ok := s.find(guildID, messageID)
	if !ok {
		return store.Event{}, store.ErrNotFound
	}
	return clone(ev), nil
}

func (s *Store) UpdateEvent(_ context.Context, guildID discord.GuildID, messageID discord.MessageID, u store.EventUpdate) error {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	ev, ok := s.find(guildID, messageID)
	if !ok {
		return store.ErrNotFound
	}
	u.Apply(ev)
	return nil
}

func (s *Store) ToggleRSVP(_ context.Context, guildID discord.GuildID, messageID discord.MessageID, userID discord.UserID, status store.RSVP) (store.Event, store.RSVP, error) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	ev, ok := s.find(guildID, messageID)
	if !ok {
		return store.Event{}, store.RSVPNone, store.ErrNotFound
	}
	newStatus := ev.Rosters.Toggle(userID, status)
	return clone(ev), newStatus, nil
}

func (s *Store) GuildEvents(_ context.Context, guildID discord.GuildID) ([]store.Event, error) {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()

	var evs []store.Event
	for _, ev := range s.events {
		if ev.GuildID == guildID && ev.MessageID.IsValid() {
			evs = append(evs, clone(ev))
		}
	}

	sort.Slice(evs, func(i, j int) bool {
		return evs[i].Time.Before(evs[j].Time)
	})
	return evs, nil
}

// Events returns every stored event, including ones that were never linked to a status card.
func (s *Store) Events() []store.Event {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()

	evs := make([]store.Event, 0, len(s.events))
	for _, ev := range s.events {
		evs = append(evs, clone(ev))
	}
	return evs
}

func (s *Store) PendingEdit(_ context.Context, userID discord.UserID) (store.PendingEdit, error) {
	pe, ok := s.pending.Get(userID)
	if !ok {
		return pe, store.ErrNotFound
	}
	return pe, nil
}

func (s *Store) SetPendingEdit(_ context.Context, userID discord.UserID, pe store.PendingEdit) error {
	s.pending.Set(userID, pe)
	return nil
}

func (s *Store) ClearPendingEdit(_ context.Context, userID discord.UserID) error {
	s.pending.Remove(userID)
	return nil
}

// PendingEdits returns the number of users with a pending edit.
func (s *Store) PendingEdits() int {
	return s.pending.Length()
}
