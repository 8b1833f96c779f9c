package rental

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrStartInPast      = errors.New("start date cannot be in the past")
)

// DateRange is a date-granular rental window. Both ends are truncated
// to UTC midnight; the end date is exclusive for duration math.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end, now time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	today := truncateToDay(now)

	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	if start.Before(today) {
		return DateRange{}, ErrStartInPast
	}

	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days returns the number of chargeable days, rounding partial days up.
func (r DateRange) Days() int {
	hours := r.end.Sub(r.start).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
