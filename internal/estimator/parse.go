package estimator

import (
	"math"
	"strconv"
	"strings"

	"fitbuddy/internal/model"
)

// ParseGender parses "male" or "female", ignoring case and surrounding space.
func ParseGender(s string) (model.Gender, bool) {
	g := model.Gender(strings.ToLower(strings.TrimSpace(s)))
	return g, g.Valid()
}

// ParseProfile coerces raw form values into a BodyProfile.
// Age is truncated toward zero. ok is false when any value is missing, not a
// number, not positive, or names an unknown gender or activity level.
func ParseProfile(weight, height, age, gender, activityID string) (model.BodyProfile, bool) {
	w, ok := parsePositive(weight)
	if !ok {
		return model.BodyProfile{}, false
	}
	h, ok := parsePositive(height)
	if !ok {
		return model.BodyProfile{}, false
	}
	a, ok := parsePositive(age)
	if !ok || a < 1 || a >= math.MaxInt32 {
		return model.BodyProfile{}, false
	}
	g, ok := ParseGender(gender)
	if !ok {
		return model.BodyProfile{}, false
	}
	level, ok := LookupActivityLevel(strings.TrimSpace(activityID))
	if !ok {
		return model.BodyProfile{}, false
	}

	return model.BodyProfile{
		WeightKg:      w,
		HeightCm:      h,
		Age:           int(math.Trunc(a)),
		Gender:        g,
		ActivityLevel: level,
	}, true
}

func parsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !positive(v) {
		return 0, false
	}
	return v, true
}
