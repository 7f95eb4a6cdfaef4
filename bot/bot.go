package bot

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/starshine-sys/rsvp/db"
	"github.com/starshine-sys/rsvp/store"
	"github.com/starshine-sys/rsvp/store/memory"
	"github.com/starshine-sys/rsvp/store/redis"
)

const Intents = gateway.IntentGuilds

type Bot struct {
	// State is nil if the bot was created with NewFromClient.
	State  *state.State
	Client Client
	Config Config

	DB      *db.DB
	Events  store.EventStore
	Pending store.PendingEditStore

	Images   *common.ImageValidator
	Location *time.Location
	Notifier *Notifier

	Router *Router

	users *ttlcache.Cache
}

func newState(c Config) *state.State {
	// set up debug logging
	ws.WSDebug = log.Debug
	ws.WSError = func(err error) {
		log.SugaredLogger.Error("ws error: ", err)
	}

	s := state.New("Bot " + c.Auth.Discord)
	s.AddIntents(Intents)
	return s
}

// New creates a new Bot connected to Discord, Postgres, and Redis.
func New(c Config) (*Bot, error) {
	s := newState(c)

	database, err := db.New(c.Auth.Postgres, !c.Bot.NoAutoMigrate)
	if err != nil {
		return nil, errors.Wrap(err, "creating database")
	}

	redisStore, err := redis.New(c.Auth.Redis, time.Duration(c.Bot.PendingEditTTL))
	if err != nil {
		return nil, errors.Wrap(err, "creating redis store")
	}

	bot := NewFromClient(c, s, database, redisStore)
	bot.State = s
	bot.DB = database

	s.AddHandler(bot.interactionCreate)

	return bot, nil
}

// NewInMemory creates a new Bot connected to Discord that keeps events and pending edits in memory.
// Nothing survives a restart, and pending edits don't expire.
func NewInMemory(c Config) *Bot {
	s := newState(c)
	mem := memory.New()

	bot := NewFromClient(c, s, mem, mem)
	bot.State = s

	s.AddHandler(bot.interactionCreate)

	return bot
}

// NewFromClient creates a Bot that talks to Discord through client and stores data in the given stores.
// It does not connect to the gateway.
func NewFromClient(c Config, client Client, events store.EventStore, pending store.PendingEditStore) *Bot {
	c.applyDefaults()

	users := ttlcache.NewCache()
	_ = users.SetTTL(30 * time.Minute)
	users.SetCacheSizeLimit(10000)

	return &Bot{
		Client:   client,
		Config:   c,
		Events:   events,
		Pending:  pending,
		Images:   common.NewImageValidator(c.Bot.CheckImages),
		Location: c.Location(),
		Notifier: NewNotifier(client, c.Bot.NotifyConcurrency),
		Router:   NewRouter(),
		users:    users,
	}
}

func (bot *Bot) Open(ctx context.Context) error {
	log.Debug("opening gateway connection")

	return bot.State.Open(ctx)
}

// Close waits for outstanding notifications, then closes all connections.
func (bot *Bot) Close() error {
	bot.Notifier.Wait()
	_ = bot.users.Close()

	if closer, ok := bot.Pending.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Errorf("closing pending edit store: %v", err)
		}
	}

	if bot.DB != nil {
		bot.DB.Close()
	}

	if bot.State != nil {
		return bot.State.Close()
	}
	return nil
}

// Me returns the bot user.
func (bot *Bot) Me() (*discord.User, error) {
	if bot.State == nil {
		return nil, errors.New("bot is not connected")
	}
	return bot.State.Me()
}

func (bot *Bot) interactionCreate(ev *gateway.InteractionCreateEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := bot.Router.Execute(ctx, &ev.InteractionEvent)
	if err != nil {
		log.Errorf("handling interaction %v: %v", ev.ID, err)
	}
}
