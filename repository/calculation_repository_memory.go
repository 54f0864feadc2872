package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mortgage-simulator/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository. Newest records come first in List.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []Calculation
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []Calculation{},
	}
}

// Save stores the calculation in memory.
func (r *CalculationRepositoryMemory) Save(
	input domain.MortgageInput,
	result domain.MortgageResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, Calculation{
		ID:        uuid.NewString(),
		Input:     input,
		Result:    result,
		CreatedAt: time.Now(),
	})
	return nil
}

// List returns up to limit calculations, most recent first.
func (r *CalculationRepositoryMemory) List(limit int) []Calculation {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}

	out := make([]Calculation, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out
}
