package meta

import (
	"github.com/starshine-sys/rsvp/bot"
	"github.com/starshine-sys/rsvp/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding meta commands")

	bot := &Bot{Bot: root}

	bot.Router.Command("eventbot/help", bot.help)
}
