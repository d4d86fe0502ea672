package domain

const (
	// GramsPerKilogram converts catch weights for scoring
	GramsPerKilogram = 1000.0

	// Catch limits
	MaxCatchWeightGrams = 100_000
	MaxDrinksPerEntry   = 50
)
