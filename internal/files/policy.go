package files

import (
	"strings"
	"time"
)

// HearingRestrictionPolicy lists the hearing restriction type codes a
// requester may see. Everything else is dropped from file detail.
type HearingRestrictionPolicy struct {
	AllowedTypes []string
}

func DefaultHearingRestrictionPolicy() HearingRestrictionPolicy {
	return HearingRestrictionPolicy{AllowedTypes: []string{"S"}}
}

func (p HearingRestrictionPolicy) Allows(typeCd string) bool {
	for _, allowed := range p.AllowedTypes {
		if strings.EqualFold(strings.TrimSpace(allowed), typeCd) {
			return true
		}
	}
	return false
}

var appearanceDateLayouts = []string{
	"2006-01-02 15:04:05.0",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func parseAppearanceDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range appearanceDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
