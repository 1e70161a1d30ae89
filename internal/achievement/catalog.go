package achievement

// Type selects which user statistic drives an achievement's progress
type Type string

const (
	TypeTaskCount  Type = "task_count"
	TypeStreak     Type = "streak"
	TypeChallenge  Type = "challenge"
	TypeCompletion Type = "completion"
	TypeCategory   Type = "category"
)

// Definition describes one achievement in the catalog
type Definition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Type        Type   `json:"type"`
	Requirement int    `json:"requirement"`

	// Category is consulted only for TypeCategory definitions
	Category string `json:"category,omitempty"`
}

var catalog = []Definition{
	{ID: "first_task", Title: "Getting Started", Description: "Complete your first task", Icon: "CheckCircle", Type: TypeTaskCount, Requirement: 1},
	{ID: "task_master_10", Title: "Task Master", Description: "Complete 10 tasks", Icon: "Target", Type: TypeTaskCount, Requirement: 10},
	{ID: "task_master_50", Title: "Task Champion", Description: "Complete 50 tasks", Icon: "Medal", Type: TypeTaskCount, Requirement: 50},
	{ID: "task_master_100", Title: "Task Legend", Description: "Complete 100 tasks", Icon: "Trophy", Type: TypeTaskCount, Requirement: 100},
	{ID: "streak_3", Title: "Consistency Starter", Description: "Maintain a 3-day streak", Icon: "Zap", Type: TypeStreak, Requirement: 3},
	{ID: "streak_7", Title: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "Star", Type: TypeStreak, Requirement: 7},
	{ID: "streak_30", Title: "Month Master", Description: "Maintain a 30-day streak", Icon: "Trophy", Type: TypeStreak, Requirement: 30},
	{ID: "first_challenge", Title: "Challenge Accepted", Description: "Create your first challenge", Icon: "Target", Type: TypeChallenge, Requirement: 1},
	{ID: "challenge_complete", Title: "Goal Achiever", Description: "Complete your first challenge", Icon: "Medal", Type: TypeCompletion, Requirement: 1},
	{ID: "health_enthusiast", Title: "Health Enthusiast", Description: "Complete 10 health-related tasks", Icon: "Star", Type: TypeCategory, Requirement: 10, Category: "health"},
	{ID: "fitness_guru", Title: "Fitness Guru", Description: "Complete 10 fitness tasks", Icon: "Zap", Type: TypeCategory, Requirement: 10, Category: "fitness"},
	{ID: "learning_lover", Title: "Learning Lover", Description: "Complete 10 learning tasks", Icon: "Star", Type: TypeCategory, Requirement: 10, Category: "learning"},
}

// Catalog returns a copy of the achievement definitions loaded at
// startup. Callers may not mutate the catalog through it.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}
