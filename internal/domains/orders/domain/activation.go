package domain

import (
	"strings"
	"time"
)

var activationLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseActivationDate accepts the formats the CMS has been seen to store.
func ParseActivationDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range activationLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NextActivationDate returns the earliest activation date strictly after now across
// every activationDate entry of every item. ok is false when none is in the future.
func NextActivationDate(o *Order, now time.Time) (next time.Time, ok bool) {
	if o == nil {
		return time.Time{}, false
	}
	for _, it := range o.Items {
		candidates := it.Metadata.All(MetaActivationDate)
		if len(candidates) == 0 && it.ActivationDate != "" {
			candidates = []string{it.ActivationDate}
		}
		for _, raw := range candidates {
			t, parsed := ParseActivationDate(raw)
			if !parsed || !t.After(now) {
				continue
			}
			if !ok || t.Before(next) {
				next, ok = t, true
			}
		}
	}
	return next, ok
}
