package bot

import (
	"emperror.dev/errors"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/common/log"
)

// SyncCommands overwrites the bot's slash commands, in the configured commands guild if one is set.
func (bot *Bot) SyncCommands() error {
	if bot.State == nil {
		return errors.New("bot is not connected")
	}

	app, err := bot.State.CurrentApplication()
	if err != nil {
		return errors.Wrap(err, "getting application")
	}

	guildID := bot.Config.Bot.CommandsGuildID
	if guildID.IsValid() {
		_, err = bot.State.BulkOverwriteGuildCommands(app.ID, guildID, common.Commands)
	} else {
		_, err = bot.State.BulkOverwriteCommands(app.ID, common.Commands)
	}
	if err != nil {
		return errors.Wrap(err, "overwriting commands")
	}

	if guildID.IsValid() {
		log.Infof("Synced slash commands in %v", guildID)
	} else {
		log.Infof("Synced slash commands")
	}
	return nil
}
