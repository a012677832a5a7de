package model

// Gender selects the sex-specific constant of the Mifflin-St Jeor equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the supported values.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ActivityLevel scales BMR into an estimate of daily energy expenditure.
type ActivityLevel struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// BodyProfile holds the body metrics entered by a user. It is never persisted.
type BodyProfile struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        Gender
	ActivityLevel ActivityLevel
}

// GoalBand is a calorie target for one objective.
type GoalBand struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// GoalBands groups the three calorie targets derived from maintenance calories.
type GoalBands struct {
	FatLoss     GoalBand `json:"fatLoss"`
	Maintenance GoalBand `json:"maintenance"`
	MuscleGain  GoalBand `json:"muscleGain"`
}

// Estimate is the result of a metabolic estimation. Values keep full precision.
type Estimate struct {
	BMR         float64   `json:"bmr"`
	Maintenance float64   `json:"maintenance"`
	Goals       GoalBands `json:"goals"`
}
