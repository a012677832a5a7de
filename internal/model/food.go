package model

// FoodRecord represents a single entry in the food catalogue.
// Nutrient values are per the serving stated in the name, e.g. "Oats (100g)".
type FoodRecord struct {
	ID       int     `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Calories float64 `json:"calories" db:"calories"`
	Protein  float64 `json:"protein" db:"protein"`
	Carbs    float64 `json:"carbs" db:"carbs"`
	Fat      float64 `json:"fat" db:"fat"`
	Category string  `json:"category" db:"category"`
}

// FoodQuery holds the optional filters for a catalogue lookup.
// An empty field means the filter was not provided.
type FoodQuery struct {
	Category string
	Search   string
}

// FoodListResponse represents the response payload for a catalogue query.
type FoodListResponse struct {
	Foods []FoodRecord `json:"foods"`
	Total int          `json:"total"`
}

// CategoryListResponse represents the response payload for the category listing.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
