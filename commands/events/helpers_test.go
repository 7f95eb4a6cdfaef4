package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/google/uuid"
	"github.com/starshine-sys/rsvp/bot"
	"github.com/starshine-sys/rsvp/store"
	"github.com/starshine-sys/rsvp/store/memory"
	"github.com/stretchr/testify/require"
)

const (
	guildID   discord.GuildID       = 100
	channelID discord.ChannelID     = 200
	cardID    discord.MessageID     = 300
	creatorID discord.UserID        = 400
	otherID   discord.UserID        = 401
	appID     discord.AppID         = 500
	eventID   discord.InteractionID = 600
)

var errTest = errors.New("test error")

type editCall struct {
	ChannelID discord.ChannelID
	MessageID discord.MessageID
	Data      api.EditMessageData
}

type fakeClient struct {
	mu sync.Mutex

	channelType discord.ChannelType
	respondErr  error
	originalErr error
	editErr     error

	responses []api.InteractionResponse
	edits     []editCall
	dms       map[discord.UserID]int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		channelType: discord.GuildText,
		dms:         make(map[discord.UserID]int),
	}
}

func (c *fakeClient) RespondInteraction(_ discord.InteractionID, _ string, resp api.InteractionResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.respondErr != nil {
		return c.respondErr
	}
	c.responses = append(c.responses, resp)
	return nil
}

func (c *fakeClient) InteractionResponse(discord.AppID, string) (*discord.Message, error) {
	if c.originalErr != nil {
		return nil, c.originalErr
	}
	return &discord.Message{ID: cardID, ChannelID: channelID, GuildID: guildID}, nil
}

func (c *fakeClient) Channel(id discord.ChannelID) (*discord.Channel, error) {
	return &discord.Channel{ID: id, GuildID: guildID, Type: c.channelType}, nil
}

func (c *fakeClient) EditMessageComplex(channelID discord.ChannelID, messageID discord.MessageID, data api.EditMessageData) (*discord.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editErr != nil {
		return nil, c.editErr
	}
	c.edits = append(c.edits, editCall{channelID, messageID, data})
	return &discord.Message{ID: messageID, ChannelID: channelID}, nil
}

func (c *fakeClient) User(id discord.UserID) (*discord.User, error) {
	u := &discord.User{ID: id, Username: "user" + id.String()}
	if id == creatorID {
		u.DisplayName = "Event Creator"
	}
	return u, nil
}

func (c *fakeClient) CreatePrivateChannel(id discord.UserID) (*discord.Channel, error) {
	return &discord.Channel{ID: discord.ChannelID(id), Type: discord.DirectMessage}, nil
}

func (c *fakeClient) SendMessageComplex(channelID discord.ChannelID, _ api.SendMessageData) (*discord.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dms[discord.UserID(channelID)]++
	return &discord.Message{ChannelID: channelID}, nil
}

// lastResponse returns the most recent interaction response.
func (c *fakeClient) lastResponse(t *testing.T) api.InteractionResponse {
	t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	require.NotEmpty(t, c.responses, "no interaction response was sent")
	return c.responses[len(c.responses)-1]
}

// lastEmbed returns the first embed of the most recent interaction response.
func (c *fakeClient) lastEmbed(t *testing.T) discord.Embed {
	t.Helper()

	resp := c.lastResponse(t)
	require.NotNil(t, resp.Data)
	require.NotNil(t, resp.Data.Embeds)
	require.NotEmpty(t, *resp.Data.Embeds)
	return (*resp.Data.Embeds)[0]
}

// faultyStore is a memory store that can be told to fail.
type faultyStore struct {
	*memory.Store

	failCreate bool
	failLink   bool
	failUpdate bool
}

func (s *faultyStore) CreateEvent(ctx context.Context, ev store.Event) (store.Event, error) {
	if s.failCreate {
		return ev, store.Persistence("inserting event", errTest)
	}
	return s.Store.CreateEvent(ctx, ev)
}

func (s *faultyStore) SetEventMessage(ctx context.Context, id uuid.UUID, channelID discord.ChannelID, messageID discord.MessageID) error {
	if s.failLink {
		return store.Persistence("setting event message", errTest)
	}
	return s.Store.SetEventMessage(ctx, id, channelID, messageID)
}

func (s *faultyStore) UpdateEvent(ctx context.Context, g discord.GuildID, m discord.MessageID, u store.EventUpdate) error {
	if s.failUpdate {
		return store.Persistence("updating event", errTest)
	}
	return s.Store.UpdateEvent(ctx, g, m, u)
}

func (s *faultyStore) ToggleRSVP(ctx context.Context, g discord.GuildID, m discord.MessageID, u discord.UserID, status store.RSVP) (store.Event, store.RSVP, error) {
	if s.failUpdate {
		return store.Event{}, store.RSVPNone, store.Persistence("updating rosters", errTest)
	}
	return s.Store.ToggleRSVP(ctx, g, m, u, status)
}

type testEnv struct {
	bot    *Bot
	client *fakeClient
	store  *faultyStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	client := newFakeClient()
	s := &faultyStore{Store: memory.New()}

	root := bot.NewFromClient(bot.Config{}, client, s, s)
	t.Cleanup(func() { root.Notifier.Wait() })

	return &testEnv{
		bot:    Setup(root),
		client: client,
		store:  s,
	}
}

// run routes ev through the bot's router, like the gateway handler does.
func (env *testEnv) run(t *testing.T, ev *discord.InteractionEvent) {
	t.Helper()

	err := env.bot.Router.Execute(context.Background(), ev)
	require.NoError(t, err)
}

// linkedEvent stores an event that's linked to cardID.
func (env *testEnv) linkedEvent(t *testing.T, ev store.Event) store.Event {
	t.Helper()
	ctx := context.Background()

	if ev.GuildID == 0 {
		ev.GuildID = guildID
	}
	if ev.CreatorID == 0 {
		ev.CreatorID = creatorID
	}
	if ev.Title == "" {
		ev.Title = "Game night"
	}
	if ev.Time.IsZero() {
		ev.Time = time.Date(2023, 10, 2, 22, 0, 0, 0, time.UTC)
	}

	created, err := env.store.Store.CreateEvent(ctx, ev)
	require.NoError(t, err)
	require.NoError(t, env.store.Store.SetEventMessage(ctx, created.ID, channelID, cardID))

	linked, err := env.store.EventByMessage(ctx, guildID, cardID)
	require.NoError(t, err)
	return linked
}

func interaction(userID discord.UserID, data discord.InteractionData) *discord.InteractionEvent {
	return &discord.InteractionEvent{
		ID:        eventID,
		AppID:     appID,
		Token:     "token",
		GuildID:   guildID,
		ChannelID: channelID,
		Member:    &discord.Member{User: discord.User{ID: userID, Username: "user" + userID.String()}},
		Data:      data,
	}
}

func commandEvent(t *testing.T, options map[string]string) *discord.InteractionEvent {
	t.Helper()

	data := &discord.CommandInteraction{Name: "event"}
	for name, value := range options {
		b, err := json.Marshal(value)
		require.NoError(t, err)

		data.Options = append(data.Options, discord.CommandInteractionOption{
			Type:  discord.StringOptionType,
			Name:  name,
			Value: b,
		})
	}

	return interaction(creatorID, data)
}

func modalEvent(userID discord.UserID, id discord.ComponentID, in input) *discord.InteractionEvent {
	return interaction(userID, &discord.ModalInteraction{
		CustomID:   id,
		Components: eventForm(in),
	})
}

func buttonEvent(userID discord.UserID, id discord.ComponentID) *discord.InteractionEvent {
	ev := interaction(userID, &discord.ButtonInteraction{CustomID: id})
	ev.Message = &discord.Message{ID: cardID, ChannelID: channelID, GuildID: guildID}
	return ev
}

// buttonIDs returns the custom IDs of all buttons in components.
func buttonIDs(t *testing.T, components discord.ContainerComponents) []discord.ComponentID {
	t.Helper()

	var ids []discord.ComponentID
	for _, c := range components {
		row, ok := c.(*discord.ActionRowComponent)
		require.True(t, ok, "container component is %T, not an action row", c)

		for _, inner := range *row {
			button, ok := inner.(*discord.ButtonComponent)
			require.True(t, ok, "component is %T, not a button", inner)
			ids = append(ids, button.CustomID)
		}
	}
	return ids
}
