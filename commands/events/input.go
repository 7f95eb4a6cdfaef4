package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/render"
)

const ErrUnsupportedContext = errors.Sentinel("unsupported context")

// ErrInvalidInput is the kind of input errors for fields other than the date and image.
const ErrInvalidInput = errors.Sentinel("invalid input")

// input is the raw, unvalidated fields of an event.
type input struct {
	Title       string
	Description string
	DateTime    string
	Image       string
}

// complete returns true if the required fields are set.
func (in input) complete() bool {
	return in.Title != "" && in.DateTime != ""
}

// validate checks all fields and returns the parsed time.
// The returned error is always an *common.InputError.
func (bot *Bot) validate(ctx context.Context, in input) (time.Time, error) {
	if in.Title == "" {
		return time.Time{}, &common.InputError{Kind: ErrInvalidInput, Message: "An event needs a title."}
	}
	if utf8.RuneCountInString(in.Title) > common.MaxTitleLength {
		return time.Time{}, &common.InputError{Kind: ErrInvalidInput, Message: "An event's title can be at most 256 characters long."}
	}
	if utf8.RuneCountInString(in.Description) > common.MaxDescriptionLength {
		return time.Time{}, &common.InputError{Kind: ErrInvalidInput, Message: "An event's description can be at most 3072 characters long."}
	}

	t, err := common.ParseDateTime(in.DateTime, bot.Location)
	if err != nil {
		return t, err
	}

	if in.Image != "" {
		err = bot.Images.Validate(ctx, in.Image)
		if err != nil {
			return time.Time{}, err
		}
	}

	return t, nil
}

// commandInput reads the event fields from slash command options.
func commandInput(data *discord.CommandInteraction) input {
	return input{
		Title:       stringOption(data, "title"),
		Description: stringOption(data, "description"),
		DateTime:    stringOption(data, "datetime"),
		Image:       stringOption(data, "image"),
	}
}

func stringOption(data *discord.CommandInteraction, name string) string {
	for _, opt := range data.Options {
		if opt.Name != name {
			continue
		}

		var s string
		if err := json.Unmarshal(opt.Value, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	return ""
}

// modalInput reads the event fields from a submitted form.
func modalInput(data *discord.ModalInteraction) input {
	values := make(map[discord.ComponentID]string, 4)
	for _, c := range data.Components {
		row, ok := c.(*discord.ActionRowComponent)
		if !ok {
			continue
		}

		for _, inner := range *row {
			if ti, ok := inner.(*discord.TextInputComponent); ok {
				values[ti.CustomID] = strings.TrimSpace(ti.Value)
			}
		}
	}

	return input{
		Title:       values["title"],
		Description: values["description"],
		DateTime:    values["datetime"],
		Image:       values["image"],
	}
}

// eventForm returns the components of the create and edit forms, pre-filled with in.
func eventForm(in input) discord.ContainerComponents {
	return discord.ContainerComponents{
		&discord.ActionRowComponent{
			&discord.TextInputComponent{
				CustomID:    "title",
				Label:       "Title",
				Style:       discord.TextInputShortStyle,
				Required:    true,
				Value:       in.Title,
				Placeholder: "My awesome event",
			},
		},
		&discord.ActionRowComponent{
			&discord.TextInputComponent{
				CustomID:    "description",
				Label:       "Description",
				Style:       discord.TextInputParagraphStyle,
				Value:       in.Description,
				Placeholder: "An epic event for epic gamers.",
			},
		},
		&discord.ActionRowComponent{
			&discord.TextInputComponent{
				CustomID:    "datetime",
				Label:       "Date and time",
				Style:       discord.TextInputShortStyle,
				Required:    true,
				Value:       in.DateTime,
				Placeholder: "October 2, 2023 10:00 PM",
			},
		},
		&discord.ActionRowComponent{
			&discord.TextInputComponent{
				CustomID:    "image",
				Label:       "Image link",
				Style:       discord.TextInputShortStyle,
				Value:       in.Image,
				Placeholder: "https://i.imgur.com/w8as1S9.png",
			},
		},
	}
}

// replyInputError tells the user why their input was rejected.
func (bot *Bot) replyInputError(ev *discord.InteractionEvent, err error) error {
	msg, ok := common.UserMessage(err)
	if !ok {
		msg = err.Error()
	}
	return bot.ReplyEmbed(ev, render.ErrorMessage(msg), true)
}
