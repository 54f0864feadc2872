package repository

import (
	"time"

	"mortgage-simulator/domain"
)

// Calculation is a stored record of a performed mortgage calculation.
type Calculation struct {
	ID        string                `json:"id"`
	Input     domain.MortgageInput  `json:"input"`
	Result    domain.MortgageResult `json:"result"`
	CreatedAt time.Time             `json:"created_at"`
}

type CalculationRepository interface {
	Save(input domain.MortgageInput, result domain.MortgageResult) error
	List(limit int) []Calculation
}
