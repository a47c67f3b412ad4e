package blogs

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts is tried in order. Unambiguous formats come first so that,
// for example, an ISO string with an offset is never truncated by a
// bare-date layout.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate parses heterogeneous date strings best-effort. It tries the
// fixed layout list first, then dateparse as a last resort. Returns false
// for empty or unparseable input; it never fails hard.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
