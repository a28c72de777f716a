package dateutils

import (
	"time"

	"github.com/pkg/errors"
)

// All day bucketing happens in a fixed UTC+8 civil calendar regardless of
// the server locale, so the same instant always lands on the same work day.
var Location = time.FixedZone("UTC+8", 8*60*60)

const DateLayout = "2006-01-02"

const TimeOfDayLayout = "15:04:05"

// ParseDate parses a "YYYY-MM-DD" string into midnight UTC+8 of that day.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, Location)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// FormatDate renders t as "YYYY-MM-DD" in the fixed UTC+8 calendar.
func FormatDate(t time.Time) string {
	return t.In(Location).Format(DateLayout)
}

func Now() time.Time {
	return time.Now().In(Location)
}

func Today() time.Time {
	return StartOfDay(Now())
}

func TodayStr() string {
	return FormatDate(Now())
}

// StartOfDay truncates t to midnight of its UTC+8 civil day.
func StartOfDay(t time.Time) time.Time {
	local := t.In(Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location)
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// MonthRange returns the inclusive [start, end] instants covering the given
// civil month in UTC+8.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, errors.Errorf("invalid month %d", month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, Location)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}

// ValidTimeOfDay reports whether value is a well-formed "HH:mm:ss" string.
func ValidTimeOfDay(value string) bool {
	_, err := time.Parse(TimeOfDayLayout, value)
	return err == nil
}
