package deadline

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseable marks deadline text that matched no known layout or phrase.
var ErrUnparseable = errors.New("could not parse deadline")

// DateFormat is the canonical calendar-date layout.
const DateFormat = "2006-01-02"

// absoluteLayouts are the calendar-date layouts accepted in addition to the
// canonical one. Time-of-day components are stripped during normalization.
var absoluteLayouts = []string{
	DateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Deadline is the dual representation of a normalized deadline: a canonical
// date string for display and an end-of-day (23:59:59 UTC) epoch for the
// ledger, which wants an unambiguous instant within the day.
type Deadline struct {
	Date string
	Unix int64
}

// Parser normalizes raw deadline text into canonical Deadline values.
// Relative phrases are resolved against the parser's timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new deadline parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Normalize parses raw deadline text and returns the canonical form.
// The caller's value is never mutated on failure.
func (p *Parser) Normalize(raw string, now time.Time) (Deadline, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Deadline{}, parseError(raw)
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return fromDate(t.Year(), t.Month(), t.Day()), nil
		}
	}

	if t, ok := p.parseRelative(strings.ToLower(trimmed), now); ok {
		return fromDate(t.Year(), t.Month(), t.Day()), nil
	}

	return Deadline{}, parseError(raw)
}

// IsFuture reports whether the deadline's epoch is strictly after now.
func (d Deadline) IsFuture(now time.Time) bool {
	return d.Unix > now.Unix()
}

func fromDate(year int, month time.Month, day int) Deadline {
	t := time.Date(year, month, day, 23, 59, 59, 0, time.UTC)
	return Deadline{
		Date: t.Format(DateFormat),
		Unix: t.Unix(),
	}
}

func parseError(raw string) error {
	return fmt.Errorf("%w %q: use YYYY-MM-DD", ErrUnparseable, raw)
}

// parseRelative resolves relative phrases like "tomorrow", "in 3 days",
// "next friday" against now in the parser's timezone.
func (p *Parser) parseRelative(relative string, now time.Time) (time.Time, bool) {
	base := now.In(p.location)

	switch relative {
	case "today":
		return base, true
	case "tomorrow":
		return base.AddDate(0, 0, 1), true
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, base)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, base)
	}

	return time.Time{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, base time.Time) (time.Time, bool) {
	re := regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return base.AddDate(0, 0, amount), true
	case strings.HasPrefix(unit, "week"):
		return base.AddDate(0, 0, amount*7), true
	case strings.HasPrefix(unit, "month"):
		return base.AddDate(0, amount, 0), true
	}

	return time.Time{}, false
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, base time.Time) (time.Time, bool) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, false
	}

	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return base.AddDate(0, 0, daysUntil), true
}
