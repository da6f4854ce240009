package postgres

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	yearOnlyRe  = regexp.MustCompile(`^\d{4}$`)
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// Layouts tried for anything that is not a bare year or year-month. Mirrors
// the permissive parsing resumes need ("March 2021", "2021/03/15", ...).
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"Jan 2006",
	"January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// NormalizeDate turns a free-form resume date string into a calendar date.
// A bare 4-digit year becomes Jan 1 of that year; a year-month string the
// first of that month; "Present" and anything unparseable become nil,
// silently. Callers pair a nil end date with an is-current flag.
func NormalizeDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "present") {
		return nil
	}

	if yearOnlyRe.MatchString(s) {
		year, _ := strconv.Atoi(s)
		t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return &t
	}

	if yearMonthRe.MatchString(s) {
		year, _ := strconv.Atoi(s[:4])
		month, err := strconv.Atoi(s[5:7])
		if err != nil || month < 1 || month > 12 {
			return nil
		}
		t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return &t
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}

	return nil
}
