package entity

import (
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"health", CategoryHealth},
		{"fitness", CategoryFitness},
		{"unknown-label", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		if got := ParseCategory(tt.in); got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryColorFallsBack(t *testing.T) {
	if CategoryHealth.Color() != "green" {
		t.Errorf("health color = %q, want green", CategoryHealth.Color())
	}
	if Category("bogus").Color() != CategoryOther.Color() {
		t.Error("unknown category should report the fallback color")
	}
}

func TestParsePriorityFallsBackToMedium(t *testing.T) {
	if got := ParsePriority("urgent"); got != PriorityMedium {
		t.Errorf("ParsePriority(urgent) = %q, want medium", got)
	}
	if got := ParsePriority("high"); got != PriorityHigh {
		t.Errorf("ParsePriority(high) = %q, want high", got)
	}
}

func TestTaskSetCompleted(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	task := &Task{}

	task.SetCompleted(true, now)
	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Fatal("completing a task should stamp CompletedAt")
	}

	// Re-completing must not move the original stamp
	later := now.Add(2 * time.Hour)
	task.SetCompleted(true, later)
	if !task.CompletedAt.Equal(now) {
		t.Error("re-completing moved CompletedAt")
	}

	task.SetCompleted(false, later)
	if task.CompletedAt != nil {
		t.Error("un-completing should clear CompletedAt")
	}
}

func TestChallengeAllDailyTasksCompleted(t *testing.T) {
	c := &Challenge{}
	if c.AllDailyTasksCompleted() {
		t.Error("empty daily task list must not count as complete")
	}

	c.DailyTasks = []DailyTask{{Completed: true}, {Completed: false}}
	if c.AllDailyTasksCompleted() {
		t.Error("half-done list reported as complete")
	}
	if got := c.CompletedDailyTasks(); got != 1 {
		t.Errorf("CompletedDailyTasks() = %d, want 1", got)
	}

	c.DailyTasks[1].Completed = true
	if !c.AllDailyTasksCompleted() {
		t.Error("fully done list reported as incomplete")
	}
}
