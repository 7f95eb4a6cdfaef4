// Package store defines the persisted event model and the interfaces for storing it.
// Events live in a single collection keyed by guild and status card message;
// pending edits are a single slot per user.
package store

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/google/uuid"
)

const ErrNotFound = errors.Sentinel("value not found in store")

// ErrPersistence is matched by every *PersistenceError.
const ErrPersistence = errors.Sentinel("persistence error")

// PersistenceError is returned when a store fails to read or write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// Persistence wraps err in a *PersistenceError. It returns nil if err is nil, and returns ErrNotFound unchanged.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// Event is a single scheduled event.
type Event struct {
	ID        uuid.UUID         `db:"id"`
	GuildID   discord.GuildID   `db:"guild_id"`
	ChannelID discord.ChannelID `db:"channel_id"`
	// MessageID is the status card. It is not valid until the card has been posted.
	MessageID discord.MessageID `db:"message_id"`
	CreatorID discord.UserID    `db:"creator_id"`

	Title       string    `db:"title"`
	Description string    `db:"description"`
	Time        time.Time `db:"time"`
	Image       string    `db:"image"`

	Rosters Rosters `db:"rosters"`
	// Started events no longer accept RSVPs.
	Started bool `db:"started"`

	CreatedAt time.Time `db:"created_at"`
}

// MessageURL returns a link to the event's status card, or an empty string if it has none.
func (e Event) MessageURL() string {
	if !e.MessageID.IsValid() {
		return ""
	}
	return "https://discord.com/channels/" + e.GuildID.String() + "/" + e.ChannelID.String() + "/" + e.MessageID.String()
}

// EventUpdate is a partial update. Nil fields are left unchanged; set fields overwrite, including with empty strings.
type EventUpdate struct {
	Title       *string
	Description *string
	Time        *time.Time
	Image       *string
	Rosters     *Rosters
	Started     *bool
}

// Apply applies u to ev in place.
func (u EventUpdate) Apply(ev *Event) {
	if u.Title != nil {
		ev.Title = *u.Title
	}
	if u.Description != nil {
		ev.Description = *u.Description
	}
	if u.Time != nil {
		ev.Time = *u.Time
	}
	if u.Image != nil {
		ev.Image = *u.Image
	}
	if u.Rosters != nil {
		ev.Rosters = u.Rosters.Clone()
	}
	if u.Started != nil {
		ev.Started = *u.Started
	}
}

// PendingEdit points at the event a user is currently editing through the edit form.
type PendingEdit struct {
	GuildID   discord.GuildID   `json:"guild_id"`
	ChannelID discord.ChannelID `json:"channel_id"`
	MessageID discord.MessageID `json:"message_id"`
}

type EventStore interface {
	// CreateEvent stores a new event and returns it with its ID and creation time set.
	CreateEvent(ctx context.Context, ev Event) (Event, error)
	// SetEventMessage links an event to its status card.
	SetEventMessage(ctx context.Context, id uuid.UUID, channelID discord.ChannelID, messageID discord.MessageID) error
	// DeleteEvent removes an event by ID.
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	EventByMessage(ctx context.Context, guildID discord.GuildID, messageID discord.MessageID) (Event, error)
	UpdateEvent(ctx context.Context, guildID discord.GuildID, messageID discord.MessageID, u EventUpdate) error
	// ToggleRSVP atomically toggles a user's status on an event's rosters,
	// returning the event as it is after the change and the user's new status.
	ToggleRSVP(ctx context.Context, guildID discord.GuildID, messageID discord.MessageID, userID discord.UserID, status RSVP) (Event, RSVP, error)

	// GuildEvents returns all linked events in a guild, ordered by time.
	GuildEvents(ctx context.Context, guildID discord.GuildID) ([]Event, error)
}

type PendingEditStore interface {
	PendingEdit(ctx context.Context, userID discord.UserID) (PendingEdit, error)
	// SetPendingEdit overwrites any existing pending edit for the user.
	SetPendingEdit(ctx context.Context, userID discord.UserID, pe PendingEdit) error
	ClearPendingEdit(ctx context.Context, userID discord.UserID) error
}
