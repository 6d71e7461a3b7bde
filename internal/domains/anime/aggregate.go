package anime

import (
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// HistorySummary is the reduced "current" view of an item's history rows,
// used by list views and sorting. All fields are absent for an item with
// no history.
type HistorySummary struct {
	MostRecentWatchDate *time.Time       `json:"most_recent_watch_date"`
	LatestRating        *decimal.Decimal `json:"rating"`
	LatestWatchCount    *int             `json:"watch_count"`
}

// ReduceHistory collapses a set of history rows into a single summary.
//
// The most recent watch date is the maximum start date across all rows,
// open or closed. The displayed rating comes from the leading record: the
// row with the highest watch count, ties broken by the latest start date.
// The watch count is the maximum ever recorded. The reduction is pure and
// order-independent, and must agree with the SQL aggregation used for
// bulk listing.
func ReduceHistory(records []HistoryRecord) HistorySummary {
	if len(records) == 0 {
		return HistorySummary{}
	}

	leading := records[0]
	mostRecent := records[0].StartDate
	maxCount := records[0].WatchCount

	for _, rec := range records[1:] {
		if rec.StartDate.After(mostRecent) {
			mostRecent = rec.StartDate
		}
		if rec.WatchCount > maxCount {
			maxCount = rec.WatchCount
		}
		if rec.WatchCount > leading.WatchCount ||
			(rec.WatchCount == leading.WatchCount && rec.StartDate.After(leading.StartDate)) {
			leading = rec
		}
	}

	return HistorySummary{
		MostRecentWatchDate: &mostRecent,
		LatestRating:        leading.Rating,
		LatestWatchCount:    &maxCount,
	}
}

// seasonPattern accepts "{year}-{quarter start month}" tokens only.
var seasonPattern = regexp.MustCompile(`^(\d{4})-(01|04|07|10)$`)

// SeasonRange expands a release-season token into the closed calendar
// quarter it names, e.g. "2024-04" -> [2024-04-01, 2024-06-30]. Malformed
// tokens return ok=false and apply no filter.
func SeasonRange(token string) (start, end time.Time, ok bool) {
	m := seasonPattern.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])

	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 3, 0).AddDate(0, 0, -1)
	return start, end, true
}
