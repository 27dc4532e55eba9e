package report

import (
	"strings"
	"time"
)

const (
	// DateLayout is the only accepted report date format.
	DateLayout = "2006-01-02 15:04:05.000000"

	secondsLayout = "2006-01-02 15:04:05"
)

// ParseDate parses "YYYY-MM-DD HH:MM:SS.ffffff" as UTC. Like strptime's %f
// the fraction may have one to six digits; it may not be omitted.
func ParseDate(s string) (time.Time, error) {
	base, frac, found := strings.Cut(s, ".")
	if !found || len(frac) == 0 || len(frac) > 6 || len(base) != len(secondsLayout) {
		return time.Time{}, ErrBadDate
	}
	for _, c := range frac {
		if c < '0' || c > '9' {
			return time.Time{}, ErrBadDate
		}
	}

	t, err := time.Parse(DateLayout, base+"."+frac+strings.Repeat("0", 6-len(frac)))
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t.UTC(), nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
