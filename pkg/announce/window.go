// Package announce decides which announcements are visible: the live display
// window, the public query filter and the trailing recency cutoff.
package announce

import (
	"sort"
	"time"

	"github.com/phoopyae1/OSS/pkg/types"
)

// RecentWindow is the trailing period the dashboard treats as "recent",
// measured over creation time.
const RecentWindow = 30 * 24 * time.Hour

// ActiveAt reports whether an announcement should be displayed at the given
// instant: it must be flagged active and the instant must fall inside its
// window. A nil StartsAt or EndsAt leaves that side unbounded. This predicate
// is the single definition of "active announcement" and is evaluated against a
// fresh now on every request, since a window can open or close purely through
// elapsed time.
func ActiveAt(a types.Announcement, now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartsAt != nil && a.StartsAt.After(now) {
		return false
	}
	if a.EndsAt != nil && a.EndsAt.Before(now) {
		return false
	}
	return true
}

// FilterActiveAt returns the announcements in list active at now, ordered
// by StartsAt descending (unbounded starts sort last), matching the dashboard
// display order.
func FilterActiveAt(list []types.Announcement, now time.Time) []types.Announcement {
	active := []types.Announcement{}
	for _, a := range list {
		if ActiveAt(a, now) {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		switch {
		case active[i].StartsAt == nil:
			return false
		case active[j].StartsAt == nil:
			return true
		default:
			return active[i].StartsAt.After(*active[j].StartsAt)
		}
	})
	return active
}

// RecentCutoff returns the earliest creation time still counted as recent.
func RecentCutoff(now time.Time) time.Time {
	return now.Add(-RecentWindow)
}

// Filter is the public query filter over stored announcements. A nil Active
// means no filter on the flag; nil bounds leave the creation-date range open
// on that side. Bounds are inclusive.
type Filter struct {
	Active      *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// dateLayouts are the formats accepted for from/to query parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a from/to query parameter. An empty or unparsable value
// yields (nil, false): the bound is treated as absent rather than rejected,
// preserving the lenient contract of the public API. Callers that want the
// malformed case visible can log when ok is false and value was non-empty.
func ParseDate(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, true
		}
	}
	return nil, false
}

// ParseFilter builds a Filter from raw query parameters. The active parameter
// is ternary: "true" and "false" filter on the flag, anything else leaves it
// unset. Malformed dates are dropped; badDates reports which parameters were
// dropped so the boundary can log them.
func ParseFilter(active, from, to string) (filter Filter, badDates []string) {
	switch active {
	case "true":
		v := true
		filter.Active = &v
	case "false":
		v := false
		filter.Active = &v
	}
	var ok bool
	if filter.CreatedFrom, ok = ParseDate(from); !ok {
		badDates = append(badDates, "from")
	}
	if filter.CreatedTo, ok = ParseDate(to); !ok {
		badDates = append(badDates, "to")
	}
	return filter, badDates
}

// Matches reports whether an announcement passes the query filter.
func (f Filter) Matches(a types.Announcement) bool {
	if f.Active != nil && a.IsActive != *f.Active {
		return false
	}
	if f.CreatedFrom != nil && a.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && a.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}

// Apply filters list down to the announcements matching f, preserving input
// order.
func (f Filter) Apply(list []types.Announcement) []types.Announcement {
	matched := []types.Announcement{}
	for _, a := range list {
		if f.Matches(a) {
			matched = append(matched, a)
		}
	}
	return matched
}
