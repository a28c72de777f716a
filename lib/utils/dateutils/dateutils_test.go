package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateutils(t *testing.T) {
	t.Run(`parse and format round trip`, func(t *testing.T) {
		parsed, err := ParseDate("2024-01-15")
		require.Nil(t, err)
		require.Equal(t, 2024, parsed.Year())
		require.Equal(t, time.January, parsed.Month())
		require.Equal(t, 15, parsed.Day())
		require.Equal(t, "2024-01-15", FormatDate(parsed))
	})

	t.Run(`rejects malformed dates`, func(t *testing.T) {
		_, err := ParseDate("15.01.2024")
		require.NotNil(t, err)
		_, err = ParseDate("")
		require.NotNil(t, err)
	})

	t.Run(`late evening UTC stays on the next local day`, func(t *testing.T) {
		// 2024-01-15 22:30 UTC is already 2024-01-16 06:30 in UTC+8.
		instant := time.Date(2024, 1, 15, 22, 30, 0, 0, time.UTC)
		require.Equal(t, "2024-01-16", FormatDate(instant))
	})

	t.Run(`start and end of day`, func(t *testing.T) {
		day, err := ParseDate("2024-03-10")
		require.Nil(t, err)
		noon := day.Add(12 * time.Hour)
		require.Equal(t, day, StartOfDay(noon))
		require.True(t, EndOfDay(noon).Before(day.AddDate(0, 0, 1)))
		require.Equal(t, "2024-03-10", FormatDate(EndOfDay(noon)))
	})

	t.Run(`month range covers the whole month`, func(t *testing.T) {
		from, to, err := MonthRange(2024, 2)
		require.Nil(t, err)
		require.Equal(t, "2024-02-01", FormatDate(from))
		require.Equal(t, "2024-02-29", FormatDate(to))

		_, _, err = MonthRange(2024, 13)
		require.NotNil(t, err)
	})

	t.Run(`time of day validation`, func(t *testing.T) {
		require.True(t, ValidTimeOfDay("08:30:00"))
		require.True(t, ValidTimeOfDay("23:59:59"))
		require.False(t, ValidTimeOfDay("8:30"))
		require.False(t, ValidTimeOfDay("25:00:00"))
	})
}
