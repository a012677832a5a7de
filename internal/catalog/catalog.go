package catalog

import (
	"fmt"
	"math"
	"strings"

	"fitbuddy/internal/model"
)

// Catalog is an immutable, ordered collection of food records.
// Iteration order is insertion order; nothing in this package reorders it.
type Catalog struct {
	foods []model.FoodRecord
	byID  map[int]int
}

// New validates foods and returns a catalogue holding its own copy of them.
func New(foods []model.FoodRecord) (*Catalog, error) {
	c := &Catalog{
		foods: make([]model.FoodRecord, 0, len(foods)),
		byID:  make(map[int]int, len(foods)),
	}

	for _, f := range foods {
		if f.ID <= 0 {
			return nil, fmt.Errorf("food %q has id %d: %w", f.Name, f.ID, model.ErrInvalidFoodID)
		}
		if _, exists := c.byID[f.ID]; exists {
			return nil, fmt.Errorf("food id %d: %w", f.ID, model.ErrDuplicateFoodID)
		}
		if !validRecord(f) {
			return nil, fmt.Errorf("food id %d: %w", f.ID, model.ErrInvalidFoodRecord)
		}
		c.byID[f.ID] = len(c.foods)
		c.foods = append(c.foods, f)
	}

	return c, nil
}

func validRecord(f model.FoodRecord) bool {
	if strings.TrimSpace(f.Name) == "" {
		return false
	}
	for _, v := range []float64{f.Calories, f.Protein, f.Carbs, f.Fat} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Len returns the number of records in the catalogue.
func (c *Catalog) Len() int {
	return len(c.foods)
}

// Foods returns a copy of every record in catalogue order.
func (c *Catalog) Foods() []model.FoodRecord {
	out := make([]model.FoodRecord, len(c.foods))
	copy(out, c.foods)
	return out
}

// Filter returns the records matching q, in catalogue order.
//
// A non-empty Category must equal the record's category ignoring case.
// A non-empty Search must appear in the record's name ignoring case.
// The two filters are independent and combine with AND.
func (c *Catalog) Filter(q model.FoodQuery) model.FoodListResponse {
	search := strings.ToLower(q.Search)

	foods := make([]model.FoodRecord, 0, len(c.foods))
	for _, f := range c.foods {
		if q.Category != "" && !strings.EqualFold(f.Category, q.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(f.Name), search) {
			continue
		}
		foods = append(foods, f)
	}

	return model.FoodListResponse{
		Foods: foods,
		Total: len(foods),
	}
}

// FindByID returns the record with the given id.
func (c *Catalog) FindByID(id int) (model.FoodRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.FoodRecord{}, false
	}
	return c.foods[i], true
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, f := range c.foods {
		if _, ok := seen[f.Category]; ok {
			continue
		}
		seen[f.Category] = struct{}{}
		categories = append(categories, f.Category)
	}
	return categories
}
