package db

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/starshine-sys/rsvp/store"
)

var _ store.EventStore = (*DB)(nil)

var eventColumns = []string{
	"id", "guild_id", "channel_id", "message_id", "creator_id",
	"title", "description", "time", "image", "rosters", "started", "created_at",
}

func (db *DB) CreateEvent(ctx context.Context, ev store.Event) (store.Event, error) {
	ev.ID = uuid.New()
	ev.CreatedAt = time.Now().UTC()
	ev.Rosters = ev.Rosters.Clone()

	sql, args, err := sq.Insert("events").
		Columns(eventColumns...).
		Values(ev.ID, ev.GuildID, ev.ChannelID, ev.MessageID, ev.CreatorID,
			ev.Title, ev.Description, ev.Time.UTC(), ev.Image, ev.Rosters, ev.Started, ev.CreatedAt).
		ToSql()
	if err != nil {
		return ev, store.Persistence("building sql", err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return ev, store.Persistence("inserting event", err)
	}
	return ev, nil
}

func (db *DB) SetEventMessage(ctx context.Context, id uuid.UUID, channelID discord.ChannelID, messageID discord.MessageID) error {
	sql, args, err := sq.Update("events").
		Set("channel_id", channelID).
		Set("message_id", messageID).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return store.Persistence("building sql", err)
	}

	ct, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return store.Persistence("setting event message", err)
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (db *DB) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	_, err := db.Exec(ctx, "delete from events where id = $1", id)
	return store.Persistence("deleting event", err)
}

func (db *DB) EventByMessage(ctx context.Context, guildID discord.GuildID, messageID discord.MessageID) (ev store.Event, err error) {
	if !messageID.IsValid() {
		return ev, store.ErrNotFound
	}

	sql, args, err := sq.Select(eventColumns...).From("events").
		Where("guild_id = ?", guildID).
		Where("message_id = ?", messageID).
		ToSql()
	if err != nil {
		return ev, store.Persistence("building sql", err)
	}

	err = pgxscan.Get(ctx, db, &ev, sql, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return ev, store.ErrNotFound
		}
		return ev, store.Persistence("getting event", err)
	}
	return ev, nil
}

func (db *DB) UpdateEvent(ctx context.Context, guildID discord.GuildID, messageID discord.MessageID, u store.EventUpdate) error {
	builder := sq.Update("events").
		Where("guild_id = ?", guildID).
		Where("message_id = ?", messageID)

	var changed bool
	set := func(column string, v any) {
		builder = builder.Set(column, v)
		changed = true
	}

	if u.Title != nil {
		set("title", *u.Title)
	}
	if u.Description != nil {
		set("description", *u.Description)
	}
	if u.Time != nil {
		set("time", u.Time.UTC())
	}
	if u.Image != nil {
		set("image", *u.Image)
	}
	if u.Rosters != nil {
		set("rosters", u.Rosters.Clone())
	}
	if u.Started != nil {
		set("started", *u.Started)
	}

	if !changed {
		return nil
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return store.Persistence("building sql", err)
	}

	ct, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return store.Persistence("updating event", errors.WithDetails(err, "guild", guildID, "message", messageID))
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ToggleRSVP locks the event's row for the read-toggle-write, so concurrent clicks are applied in turn.
func (db *DB) ToggleRSVP(ctx context.Context, guildID discord.GuildID, messageID discord.MessageID, userID discord.UserID, status store.RSVP) (ev store.Event, newStatus store.RSVP, err error) {
	if !messageID.IsValid() {
		return ev, store.RSVPNone, store.ErrNotFound
	}

	sql, args, err := sq.Select(eventColumns...).From("events").
		Where("guild_id = ?", guildID).
		Where("message_id = ?", messageID).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return ev, store.RSVPNone, store.Persistence("building sql", err)
	}

	err = db.Pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		start := time.Now()
		defer warnIfSlow(sql, start)

		err := pgxscan.Get(ctx, tx, &ev, sql, args...)
		if err != nil {
			if pgxscan.NotFound(err) {
				return store.ErrNotFound
			}
			return store.Persistence("getting event", err)
		}

		newStatus = ev.Rosters.Toggle(userID, status)

		_, err = tx.Exec(ctx, "update events set rosters = $1 where id = $2", ev.Rosters, ev.ID)
		if err != nil {
			return store.Persistence("updating rosters", errors.WithDetails(err, "event", ev.ID))
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) && !errors.Is(err, store.ErrPersistence) {
			err = store.Persistence("committing rsvp", err)
		}
		return ev, store.RSVPNone, err
	}
	return ev, newStatus, nil
}

func (db *DB) GuildEvents(ctx context.Context, guildID discord.GuildID) (evs []store.Event, err error) {
	sql, args, err := sq.Select(eventColumns...).From("events").
		Where("guild_id = ?", guildID).
		Where("message_id <> 0").
		OrderBy("time").
		ToSql()
	if err != nil {
		return nil, store.Persistence("building sql", err)
	}

	err = pgxscan.Select(ctx, db, &evs, sql, args...)
	if err != nil {
		return nil, store.Persistence("getting guild events", err)
	}
	return evs, nil
}
