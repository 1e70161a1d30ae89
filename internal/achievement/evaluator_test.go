package achievement

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		def   Definition
		stats UserStats
		want  int
	}{
		{
			"task count partial",
			Definition{Type: TypeTaskCount, Requirement: 10},
			UserStats{CompletedTasks: 5},
			50,
		},
		{
			"task count saturates at 100",
			Definition{Type: TypeTaskCount, Requirement: 10},
			UserStats{CompletedTasks: 37},
			100,
		},
		{
			"negative stat clamps to zero",
			Definition{Type: TypeStreak, Requirement: 7},
			UserStats{CurrentStreak: -2},
			0,
		},
		{
			"challenge drives on total created",
			Definition{Type: TypeChallenge, Requirement: 1},
			UserStats{TotalChallenges: 1},
			100,
		},
		{
			"completion drives on completed challenges",
			Definition{Type: TypeCompletion, Requirement: 1},
			UserStats{TotalChallenges: 5},
			0,
		},
		{
			"category counts its own bucket",
			Definition{Type: TypeCategory, Requirement: 10, Category: "health"},
			UserStats{CategoryCompleted: map[string]int{"health": 4, "fitness": 10}},
			40,
		},
		{
			"missing category bucket evaluates to zero",
			Definition{Type: TypeCategory, Requirement: 10, Category: "learning"},
			UserStats{CategoryCompleted: map[string]int{"health": 4}},
			0,
		},
		{
			"unknown type evaluates to zero",
			Definition{Type: Type("mystery"), Requirement: 1},
			UserStats{CompletedTasks: 100},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.def, tt.stats); got != tt.want {
				t.Errorf("Evaluate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluateAllUnlocksAtFullProgress(t *testing.T) {
	evals := EvaluateAll(Catalog(), UserStats{CompletedTasks: 1})

	byID := make(map[string]Evaluation, len(evals))
	for _, e := range evals {
		byID[e.ID] = e
	}

	first, ok := byID["first_task"]
	if !ok {
		t.Fatal("first_task missing from evaluations")
	}
	if !first.Unlocked || first.Progress != 100 {
		t.Errorf("first_task = (progress %d, unlocked %v), want (100, true)", first.Progress, first.Unlocked)
	}
	if first.UnlockedAt != nil {
		t.Error("UnlockedAt should be left unset by the evaluator")
	}

	ten := byID["task_master_10"]
	if ten.Unlocked || ten.Progress != 10 {
		t.Errorf("task_master_10 = (progress %d, unlocked %v), want (10, false)", ten.Progress, ten.Unlocked)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	a := Catalog()
	a[0].Title = "mutated"
	b := Catalog()
	if b[0].Title == "mutated" {
		t.Error("Catalog() must not expose the shared backing array")
	}
}
