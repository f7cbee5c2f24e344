package types

import "fmt"

type Status string

const (
	StatusOperational   Status = "OPERATIONAL"
	StatusDegraded      Status = "DEGRADED"
	StatusPartialOutage Status = "PARTIAL_OUTAGE"
	StatusMajorOutage   Status = "MAJOR_OUTAGE"
	StatusMaintenance   Status = "MAINTENANCE"
)

// statusOrder lists every status by ascending severity. A higher index means a
// worse status; the index is the rank used by aggregation and display.
var statusOrder = []Status{
	StatusOperational,
	StatusDegraded,
	StatusPartialOutage,
	StatusMajorOutage,
	StatusMaintenance,
}

var statusLabels = map[Status]string{
	StatusOperational:   "Operational",
	StatusDegraded:      "Degraded",
	StatusPartialOutage: "Partial outage",
	StatusMajorOutage:   "Major outage",
	StatusMaintenance:   "Maintenance",
}

var statusClasses = map[Status]string{
	StatusOperational:   "bg-emerald-100 text-emerald-800 border-emerald-200",
	StatusDegraded:      "bg-amber-100 text-amber-800 border-amber-200",
	StatusPartialOutage: "bg-orange-100 text-orange-800 border-orange-200",
	StatusMajorOutage:   "bg-rose-100 text-rose-800 border-rose-200",
	StatusMaintenance:   "bg-slate-100 text-slate-800 border-slate-200",
}

// AllStatuses returns every status ordered by ascending severity.
func AllStatuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Rank returns the zero-based severity rank of s, or -1 for values outside the
// enumeration. Callers are expected to validate input with ParseStatus before
// it gets this far.
func (s Status) Rank() int {
	for i, status := range statusOrder {
		if status == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a member of the enumeration.
func (s Status) Valid() bool {
	return s.Rank() >= 0
}

// Label returns the human-readable label for s.
func (s Status) Label() string {
	return statusLabels[s]
}

// CSSClass returns the display-style token for s.
func (s Status) CSSClass() string {
	return statusClasses[s]
}

// ParseStatus validates a wire value against the enumeration. Matching is
// case-sensitive and accepts no synonyms.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q, must be one of: OPERATIONAL, DEGRADED, PARTIAL_OUTAGE, MAJOR_OUTAGE, MAINTENANCE", value)
	}
	return s, nil
}
