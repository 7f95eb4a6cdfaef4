package events

import (
	"context"
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editableEvent(t *testing.T, env *testEnv) store.Event {
	t.Helper()

	ev := env.linkedEvent(t, store.Event{
		Title:       "Old title",
		Description: "Old description",
		Image:       "https://i.imgur.com/old.png",
		Rosters: store.Rosters{
			Attendees: []discord.UserID{10, 11},
			Maybe:     []discord.UserID{12},
			Pass:      []discord.UserID{13},
		},
	})

	err := env.store.SetPendingEdit(context.Background(), creatorID, store.PendingEdit{
		GuildID:   ev.GuildID,
		ChannelID: ev.ChannelID,
		MessageID: ev.MessageID,
	})
	require.NoError(t, err)

	return ev
}

func TestEditOverwritesEvent(t *testing.T) {
	env := newTestEnv(t)
	before := editableEvent(t, env)

	env.run(t, modalEvent(creatorID, editModalID, input{
		Title:       "New title",
		Description: "New description",
		DateTime:    "2023-11-05 18:30",
		Image:       "https://i.imgur.com/new.png",
	}))

	after, err := env.store.EventByMessage(context.Background(), guildID, cardID)
	require.NoError(t, err)

	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "New title", after.Title)
	assert.Equal(t, "New description", after.Description)
	assert.True(t, after.Time.Equal(time.Date(2023, 11, 5, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, "https://i.imgur.com/new.png", after.Image)
	assert.Equal(t, before.Rosters, after.Rosters)

	_, err = env.store.PendingEdit(context.Background(), creatorID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.Len(t, env.client.edits, 1)
	edit := env.client.edits[0]
	assert.Equal(t, channelID, edit.ChannelID)
	assert.Equal(t, cardID, edit.MessageID)
	require.NotNil(t, edit.Data.Embeds)
	assert.Contains(t, (*edit.Data.Embeds)[0].Title, "New title")

	resp := env.client.lastResponse(t)
	assert.Equal(t, api.MessageInteractionWithSource, resp.Type)
	assert.Contains(t, env.client.lastEmbed(t).Description, after.MessageURL())

	env.bot.Notifier.Wait()
	assert.Equal(t, map[discord.UserID]int{10: 1, 11: 1}, env.client.dms)
}

func TestEditClearsOptionalFields(t *testing.T) {
	env := newTestEnv(t)
	editableEvent(t, env)

	env.run(t, modalEvent(creatorID, editModalID, input{
		Title:    "Old title",
		DateTime: "2023-10-02 22:00",
	}))

	after, err := env.store.EventByMessage(context.Background(), guildID, cardID)
	require.NoError(t, err)
	assert.Empty(t, after.Description)
	assert.Empty(t, after.Image)
}

func TestEditWithoutPendingEdit(t *testing.T) {
	env := newTestEnv(t)
	before := env.linkedEvent(t, store.Event{
		Rosters: store.Rosters{Attendees: []discord.UserID{10}},
	})

	env.run(t, modalEvent(creatorID, editModalID, input{
		Title:    "New title",
		DateTime: "2023-11-05 18:30",
	}))

	after, err := env.store.EventByMessage(context.Background(), guildID, cardID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	assert.Equal(t, updateFailed, env.client.lastEmbed(t).Description)
	assert.Empty(t, env.client.edits)

	env.bot.Notifier.Wait()
	assert.Empty(t, env.client.dms)
}

func TestEditInvalidInputKeepsPendingEdit(t *testing.T) {
	env := newTestEnv(t)
	before := editableEvent(t, env)

	env.run(t, modalEvent(creatorID, editModalID, input{
		Title:    "New title",
		DateTime: "not a date",
	}))

	after, err := env.store.EventByMessage(context.Background(), guildID, cardID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	pe, err := env.store.PendingEdit(context.Background(), creatorID)
	require.NoError(t, err)
	assert.Equal(t, cardID, pe.MessageID)

	assert.Empty(t, env.client.edits)
}

func TestEditStoreFailureClearsPendingEdit(t *testing.T) {
	env := newTestEnv(t)
	before := editableEvent(t, env)
	env.store.failUpdate = true

	env.run(t, modalEvent(creatorID, editModalID, input{
		Title:    "New title",
		DateTime: "2023-11-05 18:30",
	}))

	after, err := env.store.EventByMessage(context.Background(), guildID, cardID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = env.store.PendingEdit(context.Background(), creatorID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Equal(t, updateFailed, env.client.lastEmbed(t).Description)
	assert.Empty(t, env.client.edits)
}

func TestEditDeletedEventClearsPendingEdit(t *testing.T) {
	env := newTestEnv(t)
	ev := editableEvent(t, env)
	require.NoError(t, env.store.DeleteEvent(context.Background(), ev.ID))

	env.run(t, modalEvent(creatorID, editModalID, input{
		Title:    "New title",
		DateTime: "2023-11-05 18:30",
	}))

	_, err := env.store.PendingEdit(context.Background(), creatorID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Equal(t, updateFailed, env.client.lastEmbed(t).Description)
	assert.Empty(t, env.client.edits)

	env.bot.Notifier.Wait()
	assert.Empty(t, env.client.dms)
}

func TestEditCardFailure(t *testing.T) {
	env := newTestEnv(t)
	editableEvent(t, env)
	env.client.editErr = errTest

	env.run(t, modalEvent(creatorID, editModalID, input{
		Title:    "New title",
		DateTime: "2023-11-05 18:30",
	}))

	// the stored record was already updated
	after, err := env.store.EventByMessage(context.Background(), guildID, cardID)
	require.NoError(t, err)
	assert.Equal(t, "New title", after.Title)

	assert.Equal(t, updateFailed, env.client.lastEmbed(t).Description)

	env.bot.Notifier.Wait()
	assert.Empty(t, env.client.dms)
}
