// Package render builds the messages the bot sends: status cards, notifications, and replies.
package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/store"
)

// Component IDs on the status card.
const (
	AttendID   discord.ComponentID = "event:attend"
	MaybeID    discord.ComponentID = "event:maybe"
	PassID     discord.ComponentID = "event:pass"
	SettingsID discord.ComponentID = "event:settings"
)

// Timestamp formats t as a Discord timestamp followed by a relative one.
func Timestamp(ev store.Event) string {
	unix := ev.Time.Unix()
	return fmt.Sprintf("<t:%d> (<t:%d:R>)", unix, unix)
}

// MaxEmbedTitle is the longest title Discord accepts on an embed.
const MaxEmbedTitle = 256

const (
	titlePrefix = ":calendar_spiral: **"
	titleSuffix = "**"
)

// cardTitle decorates title, shortening it if the result would be too long for an embed.
func cardTitle(title string) string {
	limit := MaxEmbedTitle - utf8.RuneCountInString(titlePrefix+titleSuffix)
	title = shorten(title, limit)
	return titlePrefix + title + titleSuffix
}

// Card is a rendered status card.
type Card struct {
	Embed      discord.Embed
	Components discord.ContainerComponents
}

// Embeds returns a pointer to a slice holding the card's embed, for response data.
func (c Card) Embeds() *[]discord.Embed {
	return &[]discord.Embed{c.Embed}
}

// EventCard renders an event's status card. creator is the name shown in the footer.
func EventCard(ev store.Event, creator string) Card {
	embed := discord.Embed{
		Title:       cardTitle(ev.Title),
		Description: ev.Description,
		Color:       common.ColourGreen,
		Fields: []discord.EmbedField{
			{
				Name:  "Time",
				Value: Timestamp(ev),
			},
			{
				Name:   fmt.Sprintf(":white_check_mark: Attendees (%d)", len(ev.Rosters.Attendees)),
				Value:  Roster(ev.Rosters.Attendees),
				Inline: true,
			},
			{
				Name:   fmt.Sprintf(":person_shrugging: Maybe (%d)", len(ev.Rosters.Maybe)),
				Value:  Roster(ev.Rosters.Maybe),
				Inline: true,
			},
			{
				Name:   fmt.Sprintf(":x: Pass (%d)", len(ev.Rosters.Pass)),
				Value:  Roster(ev.Rosters.Pass),
				Inline: true,
			},
		},
		Footer: &discord.EmbedFooter{
			Text: "⚙️ Settings | Created by " + creator,
		},
	}

	if ev.Image != "" {
		embed.Image = &discord.EmbedImage{URL: ev.Image}
	}

	row := discord.ActionRowComponent{}
	// RSVPs are closed once the event has started
	if !ev.Started {
		row = append(row,
			&discord.ButtonComponent{
				Label:    "Attend",
				CustomID: AttendID,
				Style:    discord.SuccessButtonStyle(),
			},
			&discord.ButtonComponent{
				Label:    "Maybe",
				CustomID: MaybeID,
				Style:    discord.SecondaryButtonStyle(),
			},
			&discord.ButtonComponent{
				Label:    "Pass",
				CustomID: PassID,
				Style:    discord.DangerButtonStyle(),
			},
		)
	}
	row = append(row, &discord.ButtonComponent{
		Label:    "⚙️",
		CustomID: SettingsID,
		Style:    discord.SecondaryButtonStyle(),
	})

	return Card{
		Embed:      embed,
		Components: discord.ContainerComponents{&row},
	}
}
