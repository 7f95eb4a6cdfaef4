package redis

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/mediocregopher/radix/v4"
	"github.com/starshine-sys/rsvp/store"
)

func pendingEditKey(userID discord.UserID) string {
	return "pendingEdit:" + userID.String()
}

func (s *Store) PendingEdit(ctx context.Context, userID discord.UserID) (pe store.PendingEdit, err error) {
	var raw []byte
	mb := radix.Maybe{Rcv: &raw}

	err = s.client.Do(ctx, radix.Cmd(&mb, "GET", pendingEditKey(userID)))
	if err != nil {
		return pe, store.Persistence("getting pending edit", err)
	}

	if mb.Null || len(raw) == 0 {
		return pe, store.ErrNotFound
	}

	err = json.Unmarshal(raw, &pe)
	if err != nil {
		return pe, store.Persistence("unmarshaling pending edit", err)
	}
	return pe, nil
}

func (s *Store) SetPendingEdit(ctx context.Context, userID discord.UserID, pe store.PendingEdit) error {
	b, err := json.Marshal(pe)
	if err != nil {
		return store.Persistence("marshaling pending edit", err)
	}

	args := []string{pendingEditKey(userID), string(b)}
	if s.ttl > 0 {
		args = append(args, "PX", strconv.FormatInt(s.ttl.Milliseconds(), 10))
	}

	return store.Persistence("setting pending edit", s.client.Do(ctx, radix.Cmd(nil, "SET", args...)))
}

func (s *Store) ClearPendingEdit(ctx context.Context, userID discord.UserID) error {
	return store.Persistence("clearing pending edit", s.client.Do(ctx, radix.Cmd(nil, "DEL", pendingEditKey(userID))))
}
