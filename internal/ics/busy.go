// Package ics integrates with external iCalendar feeds: it extracts busy
// intervals from subscribed calendars and renders the generated weekly plan
// as a feed of its own.
package ics

import (
	"bytes"
	"errors"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/logging"
)

// maxOccurrences caps recurrence expansion per event so a runaway RRULE
// cannot flood the week window.
const maxOccurrences = 1000

// BusyWindow bounds busy-time extraction. Start and End are UTC; Location is
// the zone used to expand all-day events into concrete day intervals.
type BusyWindow struct {
	Start    time.Time
	End      time.Time
	Location *time.Location
}

// BusyFromICS parses an ICS payload and returns the busy intervals of its
// events clamped to the window, sorted but not merged. Events that cannot be
// interpreted are skipped with a log line; only an unparseable calendar is an
// error.
func BusyFromICS(body []byte, win BusyWindow) ([]domain.BusyInterval, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	loc := win.Location
	if loc == nil {
		loc = time.UTC
	}

	var busy []domain.BusyInterval
	for _, ve := range cal.Events() {
		intervals, err := eventIntervals(ve, win, loc)
		if err != nil {
			logging.Warn("skipping unreadable event", "reason", err.Error())
			continue
		}
		for _, iv := range intervals {
			if clamped, ok := iv.Clamp(win.Start, win.End); ok {
				busy = append(busy, clamped)
			}
		}
	}
	return busy, nil
}

// eventIntervals turns one VEVENT into zero or more busy intervals,
// expanding recurrence rules over the window.
func eventIntervals(ve *ical.VEvent, win BusyWindow, loc *time.Location) ([]domain.BusyInterval, error) {
	allDay := isAllDay(ve)

	var start, end time.Time
	if allDay {
		var err error
		start, end, err = allDayBounds(ve, loc)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		start, err = ve.GetStartAt()
		if err != nil {
			return nil, errors.New("missing or invalid DTSTART")
		}
		end, err = ve.GetEndAt()
		if err != nil || !end.After(start) {
			// Events without a usable DTEND occupy no time.
			return nil, nil
		}
	}

	rruleProp := ve.GetProperty(ical.ComponentPropertyRrule)
	if rruleProp == nil || rruleProp.Value == "" {
		return []domain.BusyInterval{{Start: start.UTC(), End: end.UTC()}}, nil
	}

	r, err := rrule.StrToRRule(rruleProp.Value)
	if err != nil {
		return nil, errors.New("invalid RRULE: " + rruleProp.Value)
	}
	r.DTStart(start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range exDates(ve) {
		set.ExDate(ex.In(start.Location()))
	}

	occStarts := set.Between(win.Start.In(start.Location()), win.End.In(start.Location()), true)
	if len(occStarts) > maxOccurrences {
		occStarts = occStarts[:maxOccurrences]
	}

	dur := end.Sub(start)
	out := make([]domain.BusyInterval, 0, len(occStarts))
	for _, s := range occStarts {
		out = append(out, domain.BusyInterval{Start: s.UTC(), End: s.Add(dur).UTC()})
	}
	return out, nil
}

// isAllDay reports whether DTSTART carries VALUE=DATE or a date-only value.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

// allDayBounds blocks whole local days: DTSTART 00:00 through DTEND 00:00
// (DTEND is exclusive per RFC 5545), or a single day when DTEND is absent.
func allDayBounds(ve *ical.VEvent, loc *time.Location) (time.Time, time.Time, error) {
	const layoutDate = "20060102"

	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil || startProp.Value == "" {
		return time.Time{}, time.Time{}, errors.New("all-day event without DTSTART")
	}
	start, err := time.ParseInLocation(layoutDate, startProp.Value, loc)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid all-day DTSTART: " + startProp.Value)
	}

	end := start.AddDate(0, 0, 1)
	if endProp := ve.GetProperty(ical.ComponentPropertyDtEnd); endProp != nil && endProp.Value != "" {
		if parsed, err := time.ParseInLocation(layoutDate, endProp.Value, loc); err == nil && parsed.After(start) {
			end = parsed
		}
	}
	return start, end, nil
}

// exDates collects EXDATE values in a best-effort way; individual parse
// failures are ignored like the rest of the event tolerances here.
func exDates(ve *ical.VEvent) []time.Time {
	var out []time.Time
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseICSTime(part); err == nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// parseICSTime parses the basic ICS date/date-time forms used by EXDATE.
// Floating values are taken as UTC, the same reading untimezoned event
// times get, so an exclusion lines up with the occurrence it names.
func parseICSTime(v string) (time.Time, error) {
	switch {
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.Parse("20060102T150405", v)
	default:
		return time.Parse("20060102", v)
	}
}
