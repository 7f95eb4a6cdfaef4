package common

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// CanonicalLayout is the layout dates are stored and pre-filled in. ParseDateTime accepts it.
const CanonicalLayout = time.RFC3339

const hour = 60 * 60

// zoneOffsets maps common timezone abbreviations to their UTC offset in seconds.
// Go only resolves an abbreviation when it belongs to the location being parsed in,
// and gives every other one an offset of zero.
var zoneOffsets = map[string]int{
	"UTC": 0, "GMT": 0, "Z": 0, "WET": 0,
	"WEST": 1 * hour, "BST": 1 * hour, "CET": 1 * hour, "MET": 1 * hour,
	"CEST": 2 * hour, "MEST": 2 * hour, "EET": 2 * hour, "SAST": 2 * hour,
	"EEST": 3 * hour, "MSK": 3 * hour,
	"IST": 5*hour + 30*60,
	"WIB": 7 * hour,
	"HKT": 8 * hour, "SGT": 8 * hour, "AWST": 8 * hour,
	"JST": 9 * hour, "KST": 9 * hour,
	"ACST": 9*hour + 30*60, "ACDT": 10*hour + 30*60,
	"AEST": 10 * hour, "AEDT": 11 * hour,
	"NZST": 12 * hour, "NZDT": 13 * hour,
	"NST": -(3*hour + 30*60), "NDT": -(2*hour + 30*60),
	"AST": -4 * hour, "ADT": -3 * hour,
	"EST": -5 * hour, "EDT": -4 * hour,
	"CST": -6 * hour, "CDT": -5 * hour,
	"MST": -7 * hour, "MDT": -6 * hour,
	"PST": -8 * hour, "PDT": -7 * hour,
	"AKST": -9 * hour, "AKDT": -8 * hour,
	"HST": -10 * hour,
}

// ParseDateTime parses a free-form date and time, such as "2023-10-02 22:00" or "October 2, 2023 10:00 PM".
// Expressions without a timezone are read in loc; a nil loc means UTC.
func ParseDateTime(text string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, inputError(ErrInvalidDate, "No date or time was given.")
	}

	if loc == nil {
		loc = time.UTC
	}

	t, err := dateparse.ParseIn(text, loc)
	if err != nil {
		return time.Time{}, inputError(ErrInvalidDate, "%q is not a valid date and time.", text)
	}

	t, ok := resolveZone(t, loc)
	if !ok {
		return time.Time{}, inputError(ErrInvalidDate, "%q uses a timezone that isn't recognised. Try a UTC offset such as -07:00 instead.", text)
	}

	if t.IsZero() || t.Year() < 1970 || t.Year() > 9999 {
		return time.Time{}, inputError(ErrInvalidDate, "%q is not a valid date and time.", text)
	}

	return t, nil
}

// resolveZone fixes up times whose zone abbreviation was parsed with a zero offset.
func resolveZone(t time.Time, loc *time.Location) (time.Time, bool) {
	name, offset := t.Zone()
	if offset != 0 || name == "" {
		return t, true
	}

	// the abbreviation belongs to loc, so zero is its real offset
	if locName, _ := t.In(loc).Zone(); locName == name {
		return t, true
	}

	fixed, ok := zoneOffsets[strings.ToUpper(name)]
	if !ok {
		return t, false
	}
	if fixed == 0 {
		return t, true
	}

	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, fixed),
	), true
}

// FormatDateTime formats t in the canonical layout, in loc.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(CanonicalLayout)
}
