package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/alexanderramin/semainier/internal/domain"
)

const prodID = "-//Semainier//Planificateur Personnel//FR"

// RenderFeed builds the published iCalendar feed for a generated weekly
// plan. Event times are emitted in UTC; calendar clients localize them. The
// UID is deterministic per slot so re-generated feeds update in place rather
// than duplicating events in subscribing clients.
func RenderFeed(events []domain.ScheduledEvent, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetCalscale("GREGORIAN")

	for _, ev := range events {
		uid := fmt.Sprintf("%s-%s@semainier.local", ev.Start.UTC().Format("20060102T150405Z"), slugify(ev.ActivityName))
		ve := cal.AddEvent(uid)
		ve.SetSummary(ev.ActivityName)
		ve.SetStartAt(ev.Start.UTC())
		ve.SetEndAt(ev.End.UTC())
		ve.SetDtStampTime(now.UTC())
		if ev.Category != "" {
			ve.SetProperty(ical.ComponentPropertyCategories, ev.Category)
		}
	}

	return cal.Serialize()
}

// slugify keeps UIDs within the character set RFC 5545 expects: ASCII
// letters and digits, everything else collapsed to '-'.
func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
