package stats

import "time"

// dateKeyLayout matches the day-granular keys used for completion dates
const dateKeyLayout = "2006-01-02"

// DateKey collapses a timestamp to its calendar day ("YYYY-MM-DD")
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// DateSet builds a day-granular set from a list of timestamps; multiple
// entries within the same day collapse to one.
func DateSet(dates []time.Time) map[string]struct{} {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[DateKey(d)] = struct{}{}
	}
	return set
}

// Streak counts the consecutive days, walking backward from ref's
// calendar day, that are present in the completed-day set. The walk
// stops at the first absent day. lookbackDays bounds the walk; the
// result never exceeds it.
func Streak(completedDays map[string]struct{}, ref time.Time, lookbackDays int) int {
	streak := 0
	for i := 0; i < lookbackDays; i++ {
		day := ref.AddDate(0, 0, -i)
		if _, ok := completedDays[DateKey(day)]; !ok {
			break
		}
		streak++
	}
	return streak
}
