package anime

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ratingPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestReduceHistoryEmpty(t *testing.T) {
	summary := ReduceHistory(nil)

	assert.Nil(t, summary.MostRecentWatchDate)
	assert.Nil(t, summary.LatestRating)
	assert.Nil(t, summary.LatestWatchCount)
}

func TestReduceHistorySingleRecord(t *testing.T) {
	start := day(2024, time.April, 10)
	records := []HistoryRecord{
		{StartDate: start, WatchCount: 1, Rating: ratingPtr("8.5")},
	}

	summary := ReduceHistory(records)

	require.NotNil(t, summary.MostRecentWatchDate)
	assert.Equal(t, start, *summary.MostRecentWatchDate)
	require.NotNil(t, summary.LatestRating)
	assert.True(t, summary.LatestRating.Equal(decimal.RequireFromString("8.5")))
	require.NotNil(t, summary.LatestWatchCount)
	assert.Equal(t, 1, *summary.LatestWatchCount)
}

func TestReduceHistoryRatingComesFromLeadingRecord(t *testing.T) {
	// Highest watch count wins regardless of which row started last.
	records := []HistoryRecord{
		{StartDate: day(2024, time.July, 1), WatchCount: 1, Rating: ratingPtr("6")},
		{StartDate: day(2024, time.January, 1), WatchCount: 3, Rating: ratingPtr("9")},
		{StartDate: day(2024, time.April, 1), WatchCount: 2, Rating: ratingPtr("7")},
	}

	summary := ReduceHistory(records)

	assert.Equal(t, day(2024, time.July, 1), *summary.MostRecentWatchDate)
	assert.True(t, summary.LatestRating.Equal(decimal.RequireFromString("9")))
	assert.Equal(t, 3, *summary.LatestWatchCount)
}

func TestReduceHistoryTieBrokenByLatestStartDate(t *testing.T) {
	records := []HistoryRecord{
		{StartDate: day(2023, time.October, 1), WatchCount: 2, Rating: ratingPtr("5")},
		{StartDate: day(2024, time.October, 1), WatchCount: 2, Rating: ratingPtr("8")},
	}

	summary := ReduceHistory(records)

	assert.True(t, summary.LatestRating.Equal(decimal.RequireFromString("8")))
}

func TestReduceHistoryOrderIndependent(t *testing.T) {
	records := []HistoryRecord{
		{StartDate: day(2024, time.July, 1), WatchCount: 1, Rating: ratingPtr("6")},
		{StartDate: day(2024, time.January, 1), WatchCount: 3, Rating: ratingPtr("9")},
		{StartDate: day(2024, time.April, 1), WatchCount: 2, Rating: nil},
	}
	reversed := []HistoryRecord{records[2], records[1], records[0]}
	rotated := []HistoryRecord{records[1], records[0], records[2]}

	want := ReduceHistory(records)

	for _, perm := range [][]HistoryRecord{reversed, rotated} {
		got := ReduceHistory(perm)
		assert.Equal(t, *want.MostRecentWatchDate, *got.MostRecentWatchDate)
		assert.Equal(t, *want.LatestWatchCount, *got.LatestWatchCount)
		assert.True(t, want.LatestRating.Equal(*got.LatestRating))
	}
}

func TestReduceHistoryOpenSessionCountsTowardRecency(t *testing.T) {
	end := day(2024, time.March, 1)
	records := []HistoryRecord{
		{StartDate: day(2024, time.January, 1), EndDate: &end, WatchCount: 1, Rating: ratingPtr("7")},
		{StartDate: day(2024, time.June, 1), WatchCount: 2}, // still open, no rating
	}

	summary := ReduceHistory(records)

	assert.Equal(t, day(2024, time.June, 1), *summary.MostRecentWatchDate)
	assert.Equal(t, 2, *summary.LatestWatchCount)
	assert.Nil(t, summary.LatestRating)
}

func TestSeasonRange(t *testing.T) {
	tests := []struct {
		token string
		start time.Time
		end   time.Time
	}{
		{"2024-01", day(2024, time.January, 1), day(2024, time.March, 31)},
		{"2024-04", day(2024, time.April, 1), day(2024, time.June, 30)},
		{"2024-07", day(2024, time.July, 1), day(2024, time.September, 30)},
		{"2024-10", day(2024, time.October, 1), day(2024, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			start, end, ok := SeasonRange(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestSeasonRangeRejectsMalformedTokens(t *testing.T) {
	for _, token := range []string{"", "2024", "2024-02", "2024-13", "24-04", "2024-04-01", "spring-2024"} {
		t.Run(token, func(t *testing.T) {
			_, _, ok := SeasonRange(token)
			assert.False(t, ok)
		})
	}
}
