package filter

import (
	"fmt"
	"time"
)

// absoluteLayouts are tried in order before falling back to a relative duration.
var absoluteLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseTime converts a time specification to Unix milliseconds.
// Absolute forms are RFC3339 ("2025-10-29T13:00:00Z") or a bare UTC date
// ("2025-10-29"). Anything else must be a Go duration, read as that long before now.
func ParseTime(spec string, now time.Time) (int64, error) {
	if spec == "" {
		return 0, fmt.Errorf("empty time specification")
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, spec); err == nil {
			return t.UnixMilli(), nil
		}
	}

	d, err := time.ParseDuration(spec)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid time specification %q: want a duration like '1h30m', a date like '2025-10-29' or RFC3339", spec)
	}
	return now.Add(-d).UnixMilli(), nil
}

// ParseRange fills the time window of c from --since and --until. An empty flag
// leaves that side open.
func (c *Criteria) ParseRange(since, until string, now time.Time) error {
	bounds := []struct {
		flag string
		spec string
		dst  *int64
	}{
		{"--since", since, &c.SinceTimestampMs},
		{"--until", until, &c.UntilTimestampMs},
	}
	for _, b := range bounds {
		if b.spec == "" {
			continue
		}
		ms, err := ParseTime(b.spec, now)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", b.flag, err)
		}
		*b.dst = ms
	}

	if c.SinceTimestampMs > 0 && c.UntilTimestampMs > 0 && c.SinceTimestampMs >= c.UntilTimestampMs {
		return fmt.Errorf("--since must be before --until")
	}
	return nil
}
