package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/emersion/go-ical"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/starshine-sys/rsvp/store"
)

const productID = "-//starshine-sys//rsvp//EN"

// eventCalendar returns an iCalendar document with ev as its only VEVENT.
func eventCalendar(ev store.Event, now time.Time) *ical.Calendar {
	vevent := ical.NewComponent(ical.CompEvent)
	vevent.Props.SetText(ical.PropUID, ev.ID.String()+"@rsvp")
	vevent.Props.SetText(ical.PropSummary, ev.Title)
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	vevent.Props.SetDateTime(ical.PropDateTimeStart, ev.Time.UTC())

	desc := ev.Description
	if url := ev.MessageURL(); url != "" {
		if desc != "" {
			desc += "\n\n"
		}
		desc += url
	}
	if desc != "" {
		vevent.Props.SetText(ical.PropDescription, desc)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Children = append(cal.Children, vevent)
	return cal
}

func (s *Server) eventICS(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.lookupEvent(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := ical.NewEncoder(&buf).Encode(eventCalendar(ev, time.Now()))
	if err != nil {
		log.Errorf("encoding calendar for event %v: %v", ev.ID, err)
		s.error(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="event-`+ev.MessageID.String()+`.ics"`)
	_, _ = w.Write(buf.Bytes())
}
