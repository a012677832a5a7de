// Package estimator converts body metrics into energy estimates using the
// Mifflin-St Jeor equation.
//
// Every function is pure. Insufficient input yields ok == false rather than an
// error so callers can show a prompt instead of a number.
package estimator

import (
	"math"

	"fitbuddy/internal/model"
)

// Prompt is shown in place of results when the inputs are incomplete.
const Prompt = "Enter your weight (kg), height (cm), and age to see results."

const (
	maleConstant   = 5
	femaleConstant = -161

	fatLossFactor    = 0.85
	muscleGainFactor = 1.10
)

// BMR returns the basal metabolic rate in kcal/day.
// ok is false when any metric is not strictly positive, gender is unknown, or
// the result itself is not positive.
func BMR(weightKg, heightCm float64, age int, gender model.Gender) (bmr float64, ok bool) {
	if !positive(weightKg) || !positive(heightCm) || age <= 0 {
		return 0, false
	}

	bmr = 10*weightKg + 6.25*heightCm - 5*float64(age)

	switch gender {
	case model.GenderMale:
		bmr += maleConstant
	case model.GenderFemale:
		bmr += femaleConstant
	default:
		return 0, false
	}

	if bmr <= 0 {
		return 0, false
	}
	return bmr, true
}

// Compute derives BMR, maintenance calories and the three goal bands from p.
func Compute(p model.BodyProfile) (model.Estimate, bool) {
	bmr, ok := BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	if !ok {
		return model.Estimate{}, false
	}

	multiplier := p.ActivityLevel.Multiplier
	if math.IsNaN(multiplier) || multiplier < 1 || math.IsInf(multiplier, 0) {
		return model.Estimate{}, false
	}

	maintenance := bmr * multiplier

	return model.Estimate{
		BMR:         bmr,
		Maintenance: maintenance,
		Goals:       Goals(maintenance),
	}, true
}

// Goals returns the fat loss, maintenance and muscle gain targets for the
// given maintenance calories.
func Goals(maintenance float64) model.GoalBands {
	return model.GoalBands{
		FatLoss:     model.GoalBand{Label: "Fat Loss (15% deficit)", Value: maintenance * fatLossFactor},
		Maintenance: model.GoalBand{Label: "Maintenance", Value: maintenance},
		MuscleGain:  model.GoalBand{Label: "Muscle Gain (10% surplus)", Value: maintenance * muscleGainFactor},
	}
}

// Round rounds v to the nearest whole kilocalorie for display.
func Round(v float64) int64 {
	return int64(math.Round(v))
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
