package entity

// Category classifies tasks and challenges
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryLearning     Category = "learning"
	CategoryProductivity Category = "productivity"
	CategoryMindfulness  Category = "mindfulness"
	CategoryCreativity   Category = "creativity"
	CategorySocial       Category = "social"
	CategoryCareer       Category = "career"
	CategoryOther        Category = "other"
)

var categoryColors = map[Category]string{
	CategoryHealth:       "green",
	CategoryFitness:      "blue",
	CategoryLearning:     "purple",
	CategoryProductivity: "orange",
	CategoryMindfulness:  "pink",
	CategoryCreativity:   "yellow",
	CategorySocial:       "red",
	CategoryCareer:       "indigo",
	CategoryOther:        "gray",
}

// ParseCategory maps a label to a known category, falling back to "other"
func ParseCategory(s string) Category {
	c := Category(s)
	if _, ok := categoryColors[c]; ok {
		return c
	}
	return CategoryOther
}

// IsValid returns true if the category is one of the known labels
func (c Category) IsValid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the display color token for the category
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryOther]
}

// Categories returns all known category labels
func Categories() []Category {
	return []Category{
		CategoryHealth, CategoryFitness, CategoryLearning,
		CategoryProductivity, CategoryMindfulness, CategoryCreativity,
		CategorySocial, CategoryCareer, CategoryOther,
	}
}
