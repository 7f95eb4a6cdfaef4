package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/store"
)

// Message is a plain embed for replies.
func Message(text string) discord.Embed {
	return discord.Embed{
		Description: text,
		Color:       common.ColourPurple,
	}
}

// ErrorMessage is a plain embed for replies that report a failure.
func ErrorMessage(text string) discord.Embed {
	return discord.Embed{
		Description: text,
		Color:       common.ColourRed,
	}
}

// Updated is the reply sent to the user after an event was edited.
func Updated(ev store.Event) discord.Embed {
	return Message(fmt.Sprintf("[**%v**](%v) has been updated.", ev.Title, ev.MessageURL()))
}

// maxSummaryDescription keeps a summary well inside an embed field's 1024 characters,
// even with the longest title.
const maxSummaryDescription = 500

func summary(ev store.Event) string {
	s := "**" + ev.Title + "**\n" + Timestamp(ev)
	if ev.Description != "" {
		s += "\n" + shorten(ev.Description, maxSummaryDescription)
	}
	return s
}

// shorten cuts s to at most limit runes, ending it with an ellipsis if anything was cut.
func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit-1]) + "…"
}

// EditNotification is sent to attendees when an event they're attending is edited.
func EditNotification(before, after store.Event) discord.Embed {
	embed := discord.Embed{
		Title:       ":calendar_spiral: An event you're attending was changed",
		Description: fmt.Sprintf("[**%v**](%v) has been updated.", after.Title, after.MessageURL()),
		Color:       common.ColourBlue,
		Fields: []discord.EmbedField{
			{Name: "Before", Value: summary(before), Inline: true},
			{Name: "After", Value: summary(after), Inline: true},
		},
	}

	if !before.Time.Equal(after.Time) {
		embed.Footer = &discord.EmbedFooter{
			Text: "Moved " + humanize.RelTime(before.Time, after.Time, "later", "earlier"),
		}
	}

	return embed
}
