package bot

import (
	"os"
	"time"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	"github.com/diamondburned/arikawa/v3/discord"
)

type Config struct {
	Auth AuthConfig `toml:"auth"`
	Bot  BotConfig  `toml:"bot"`
	Web  WebConfig  `toml:"web"`
	Info InfoConfig `toml:"info"`
}

type AuthConfig struct {
	Discord  string `toml:"discord"`
	Postgres string `toml:"postgres"`
	Redis    string `toml:"redis"`
	Sentry   string `toml:"sentry"`
}

type BotConfig struct {
	CommandsGuildID discord.GuildID `toml:"commands_guild_id"`
	NoSyncCommands  bool            `toml:"no_sync_commands"`

	// NoAutoMigrate specifies if migrations should be done automatically when the bot starts.
	// If this is set to true, migrations must be done manually by running the `migrate` command.
	NoAutoMigrate bool `toml:"no_auto_migrate"`

	// Timezone is used for dates and times that don't specify one. Defaults to UTC.
	Timezone string `toml:"timezone"`
	// CheckImages makes image links get requested before they're accepted.
	CheckImages bool `toml:"check_images"`
	// PendingEditTTL is how long an opened edit form stays valid.
	PendingEditTTL Duration `toml:"pending_edit_ttl"`
	// NotifyConcurrency is the most DMs sent at once when notifying attendees.
	NotifyConcurrency int `toml:"notify_concurrency"`
}

type WebConfig struct {
	// Port is the address the HTTP API listens on. If empty, the API is disabled.
	Port string `toml:"port"`
}

type InfoConfig struct {
	SupportServer string `toml:"support_server"`

	HelpFields []discord.EmbedField `toml:"help_fields"`
}

// Duration is a time.Duration that can be read from a TOML string like "15m".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(err, "parsing duration")
	}
	*d = Duration(v)
	return nil
}

// Location returns the configured timezone, falling back to UTC if it's invalid.
func (c Config) Location() *time.Location {
	if c.Bot.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Bot.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) applyDefaults() {
	if c.Bot.PendingEditTTL == 0 {
		c.Bot.PendingEditTTL = Duration(15 * time.Minute)
	}
	if c.Bot.NotifyConcurrency <= 0 {
		c.Bot.NotifyConcurrency = 5
	}
}

func (c Config) validate() error {
	if c.Bot.Timezone != "" {
		if _, err := time.LoadLocation(c.Bot.Timezone); err != nil {
			return errors.Wrapf(err, "invalid timezone %q", c.Bot.Timezone)
		}
	}
	return nil
}

func ReadConfig(path string) (c Config, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read config file")
	}

	err = toml.Unmarshal(b, &c)
	if err != nil {
		return c, errors.Wrap(err, "unmarshal config")
	}

	c.applyDefaults()
	return c, c.validate()
}
