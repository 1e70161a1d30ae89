package achievement

import (
	"time"

	"github.com/gourishchouhan/strive/internal/stats"
)

// UserStats carries the aggregate statistics that drive achievement
// progress. Counts are sanitized before percentage math: negative
// values are treated as 0.
type UserStats struct {
	CompletedTasks      int            `json:"completed_tasks"`
	CurrentStreak       int            `json:"current_streak"`
	TotalChallenges     int            `json:"total_challenges"`
	CompletedChallenges int            `json:"completed_challenges"`
	CategoryCompleted   map[string]int `json:"category_completed"`
}

// Evaluation is one catalog entry with its computed state for a user
type Evaluation struct {
	Definition
	Progress   int        `json:"progress"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

type progressFunc func(Definition, UserStats) int

// progressByType dispatches each achievement type to the statistic that
// drives it. Unregistered types evaluate to 0 rather than erroring.
var progressByType = map[Type]progressFunc{
	TypeTaskCount: func(def Definition, s UserStats) int {
		return ratio(s.CompletedTasks, def.Requirement)
	},
	TypeStreak: func(def Definition, s UserStats) int {
		return ratio(s.CurrentStreak, def.Requirement)
	},
	TypeChallenge: func(def Definition, s UserStats) int {
		return ratio(s.TotalChallenges, def.Requirement)
	},
	TypeCompletion: func(def Definition, s UserStats) int {
		return ratio(s.CompletedChallenges, def.Requirement)
	},
	TypeCategory: func(def Definition, s UserStats) int {
		return ratio(s.CategoryCompleted[def.Category], def.Requirement)
	},
}

func ratio(have, requirement int) int {
	if have < 0 {
		have = 0
	}
	return stats.Progress(have, requirement)
}

// Evaluate computes the progress percentage for a single definition
func Evaluate(def Definition, s UserStats) int {
	fn, ok := progressByType[def.Type]
	if !ok {
		return 0
	}
	return fn(def, s)
}

// EvaluateAll evaluates every catalog definition against the given
// statistics. An achievement is unlocked once its progress reaches 100.
// UnlockedAt is left unset here; the caller owns the persisted
// first-unlock timestamps.
func EvaluateAll(defs []Definition, s UserStats) []Evaluation {
	out := make([]Evaluation, 0, len(defs))
	for _, def := range defs {
		progress := Evaluate(def, s)
		out = append(out, Evaluation{
			Definition: def,
			Progress:   progress,
			Unlocked:   progress >= 100,
		})
	}
	return out
}
