package store

import (
	"database/sql/driver"
	"encoding/json"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
)

// RSVP is a user's answer to an event.
type RSVP int

const (
	RSVPNone RSVP = iota
	RSVPAttend
	RSVPMaybe
	RSVPPass
)

func (r RSVP) String() string {
	switch r {
	case RSVPAttend:
		return "attend"
	case RSVPMaybe:
		return "maybe"
	case RSVPPass:
		return "pass"
	}
	return "none"
}

// Rosters holds the three attendance lists. A user is in at most one of them.
// It is stored as a single JSON document.
type Rosters struct {
	Attendees []discord.UserID `json:"attendees"`
	Maybe     []discord.UserID `json:"maybe"`
	Pass      []discord.UserID `json:"pass"`
}

func (r *Rosters) list(status RSVP) *[]discord.UserID {
	switch status {
	case RSVPAttend:
		return &r.Attendees
	case RSVPMaybe:
		return &r.Maybe
	case RSVPPass:
		return &r.Pass
	}
	return nil
}

// Status returns which roster the user is in.
func (r Rosters) Status(userID discord.UserID) RSVP {
	for _, status := range []RSVP{RSVPAttend, RSVPMaybe, RSVPPass} {
		for _, id := range *r.list(status) {
			if id == userID {
				return status
			}
		}
	}
	return RSVPNone
}

// Toggle moves the user into the given roster, removing them from the other two.
// If they were already in it, they are removed instead. It returns the user's new status.
func (r *Rosters) Toggle(userID discord.UserID, status RSVP) RSVP {
	current := r.Status(userID)
	if current != RSVPNone {
		l := r.list(current)
		*l = remove(*l, userID)
	}

	if current == status || status == RSVPNone {
		return RSVPNone
	}

	l := r.list(status)
	*l = append(*l, userID)
	return status
}

// Clone returns a deep copy of r.
func (r Rosters) Clone() Rosters {
	return Rosters{
		Attendees: append([]discord.UserID{}, r.Attendees...),
		Maybe:     append([]discord.UserID{}, r.Maybe...),
		Pass:      append([]discord.UserID{}, r.Pass...),
	}
}

// Value implements driver.Valuer.
func (r Rosters) Value() (driver.Value, error) {
	b, err := json.Marshal(r.Clone())
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (r *Rosters) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*r = Rosters{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.Errorf("cannot scan %T into Rosters", src)
	}

	var out Rosters
	if err := json.Unmarshal(b, &out); err != nil {
		return errors.Wrap(err, "unmarshaling rosters")
	}
	*r = out.Clone()
	return nil
}

func remove[T comparable](slice []T, val T) []T {
	out := slice[:0]
	for _, v := range slice {
		if v != val {
			out = append(out, v)
		}
	}
	return out
}
