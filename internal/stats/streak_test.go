package stats

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateSetCollapsesSameDay(t *testing.T) {
	set := DateSet([]time.Time{
		day("2026-03-01"),
		day("2026-03-01").Add(6 * time.Hour),
		day("2026-03-02"),
	})
	if len(set) != 2 {
		t.Fatalf("expected 2 distinct days, got %d", len(set))
	}
}

func TestStreak(t *testing.T) {
	ref := day("2026-03-10")

	tests := []struct {
		name     string
		days     []time.Time
		lookback int
		want     int
	}{
		{"empty set", nil, 7, 0},
		{"today only", []time.Time{day("2026-03-10")}, 7, 1},
		{"gap at today breaks immediately", []time.Time{day("2026-03-09"), day("2026-03-08")}, 7, 0},
		{
			"three consecutive days",
			[]time.Time{day("2026-03-10"), day("2026-03-09"), day("2026-03-08")},
			7,
			3,
		},
		{
			"gap in the middle stops the walk",
			[]time.Time{day("2026-03-10"), day("2026-03-09"), day("2026-03-07")},
			7,
			2,
		},
		{
			"full window caps the result",
			[]time.Time{
				day("2026-03-10"), day("2026-03-09"), day("2026-03-08"),
				day("2026-03-07"), day("2026-03-06"), day("2026-03-05"),
				day("2026-03-04"), day("2026-03-03"), day("2026-03-02"),
			},
			7,
			7,
		},
		{"zero lookback", []time.Time{day("2026-03-10")}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(DateSet(tt.days), ref, tt.lookback); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}
