package feed

import (
	"strings"
	"time"

	"canonforces/internal/domain/model"

	"github.com/gosimple/slug"
)

// MaxEntries is how many contests the sidebar shows, in endpoint order.
const MaxEntries = 5

// displayShift is the fixed offset added to start times before formatting.
// This is a display convention, not a timezone conversion: every viewer sees
// the same shifted wall-clock time. The today check below deliberately uses
// the unshifted time, matching the shipped behavior near day boundaries.
const displayShift = 5*time.Hour + 30*time.Minute

const displayLayout = "Jan 2, 03:04 PM"

type LinkKind string

const (
	LinkExternal LinkKind = "external"
	LinkInternal LinkKind = "internal"
)

// Entry is the fully formatted sidebar view of one contest.
type Entry struct {
	Platform    string   `json:"platform"`
	PlatformKey string   `json:"platformKey"`
	ContestName string   `json:"contestName"`
	ContestLink string   `json:"contestLink"`
	LinkKind    LinkKind `json:"linkKind"`
	Target      string   `json:"target,omitempty"`
	Rel         string   `json:"rel,omitempty"`
	DisplayTime string   `json:"displayTime"`
	Duration    string   `json:"contestDuration"`
	Today       bool     `json:"today"`
}

// FormatStartTime applies the fixed display shift and renders the short
// date/time string shown on a contest card.
func FormatStartTime(t time.Time) string {
	return t.Add(displayShift).Format(displayLayout)
}

// IsToday compares the unshifted start time against the viewer's local
// calendar day.
func IsToday(t, now time.Time) bool {
	ty, tm, td := t.Local().Date()
	ny, nm, nd := now.Local().Date()
	return ty == ny && tm == nm && td == nd
}

// IsExternalLink reports whether a contest link leaves the site. External
// anchors open in a new browsing context with no referrer/opener leakage;
// everything else is client-side navigation.
func IsExternalLink(link string) bool {
	return strings.HasPrefix(link, "http")
}

// BuildEntries turns the raw feed into at most MaxEntries formatted cards,
// preserving endpoint order.
func BuildEntries(contests []model.Contest, now time.Time) []Entry {
	if len(contests) > MaxEntries {
		contests = contests[:MaxEntries]
	}

	entries := make([]Entry, 0, len(contests))
	for _, c := range contests {
		entry := Entry{
			Platform:    c.Platform,
			PlatformKey: slug.Make(c.Platform),
			ContestName: c.ContestName,
			ContestLink: c.ContestLink,
			LinkKind:    LinkInternal,
			DisplayTime: FormatStartTime(c.StartTime),
			Duration:    c.ContestDuration,
			Today:       IsToday(c.StartTime, now),
		}
		if IsExternalLink(c.ContestLink) {
			entry.LinkKind = LinkExternal
			entry.Target = "_blank"
			entry.Rel = "noopener noreferrer"
		}
		entries = append(entries, entry)
	}
	return entries
}
