package estimator

import "fitbuddy/internal/model"

var activityLevels = [...]model.ActivityLevel{
	{ID: "sedentary", Label: "Sedentary", Multiplier: 1.2, Description: "Little or no exercise"},
	{ID: "light", Label: "Lightly Active", Multiplier: 1.375, Description: "Light exercise 1-3 days/week"},
	{ID: "moderate", Label: "Moderately Active", Multiplier: 1.55, Description: "Moderate exercise 3-5 days/week"},
	{ID: "active", Label: "Very Active", Multiplier: 1.725, Description: "Hard exercise 6-7 days/week"},
	{ID: "extreme", Label: "Athlete", Multiplier: 1.9, Description: "Physical job or 2x training"},
}

// ActivityLevels returns a copy of the supported activity levels, least active first.
func ActivityLevels() []model.ActivityLevel {
	out := make([]model.ActivityLevel, len(activityLevels))
	copy(out, activityLevels[:])
	return out
}

// DefaultActivityLevel is the level preselected when the user has not chosen one.
func DefaultActivityLevel() model.ActivityLevel {
	return activityLevels[1]
}

// LookupActivityLevel finds an activity level by id.
func LookupActivityLevel(id string) (model.ActivityLevel, bool) {
	for _, level := range activityLevels {
		if level.ID == id {
			return level, true
		}
	}
	return model.ActivityLevel{}, false
}
