// Package events has the commands, forms, and buttons for creating and managing events.
package events

import (
	"github.com/starshine-sys/rsvp/bot"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/starshine-sys/rsvp/render"
)

// Modal custom IDs
const (
	createModalID = "createevent"
	editModalID   = "editevent"
)

// Settings menu button prefixes, followed by the status card's message ID.
const (
	editButtonPrefix  = "event:edit:"
	startButtonPrefix = "event:start:"
)

// User-facing failure messages.
const (
	createFailed = "This event could not be created."
	updateFailed = "This event could not be updated."
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) *Bot {
	log.Debug("Adding event commands")

	bot := &Bot{Bot: root}

	bot.Router.Command("event", bot.createCommand)
	bot.Router.Modal(createModalID, bot.createModal)
	bot.Router.Modal(editModalID, bot.editModal)

	bot.Router.Button(render.AttendID, bot.rsvp)
	bot.Router.Button(render.MaybeID, bot.rsvp)
	bot.Router.Button(render.PassID, bot.rsvp)
	bot.Router.Button(render.SettingsID, bot.settings)
	bot.Router.ButtonPrefix(editButtonPrefix, bot.openEditForm)
	bot.Router.ButtonPrefix(startButtonPrefix, bot.start)

	return bot
}
