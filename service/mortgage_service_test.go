package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-simulator/domain"
	"mortgage-simulator/pkg/log"
	"mortgage-simulator/repository"
)

type MockCalculationRepository struct {
	SaveCalls  int
	ForceError bool
}

func (m *MockCalculationRepository) Save(
	input domain.MortgageInput,
	result domain.MortgageResult,
) error {
	m.SaveCalls++
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func (m *MockCalculationRepository) List(limit int) []repository.Calculation {
	return nil
}

type MockCache struct {
	Data map[string]string
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(ctx context.Context, key string, value string) error {
	m.Data[key] = value
	return nil
}

func newTestService() (*MortgageService, *MockCalculationRepository) {
	mockRepo := &MockCalculationRepository{}
	return NewMortgageService(log.NewNop(), mockRepo, NewMockCache()), mockRepo
}

func TestCalculate_WithInterest(t *testing.T) {
	service, mockRepo := newTestService()

	input := domain.MortgageInput{
		PropertyValue: 300000,
		DownPayment:   60000,
		InterestRate:  6,
		TermYears:     30,
	}

	result, err := service.Calculate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 240000.0, result.Principal)
	assert.Equal(t, 1438.92, result.MonthlyPayment)
	assert.Greater(t, result.TotalInterest, 0.0)
	assert.InDelta(t, result.Principal+result.TotalInterest, result.TotalPayment, 0.01)
	assert.Equal(t, 1, mockRepo.SaveCalls)
}

func TestCalculate_ZeroInterest(t *testing.T) {
	service, _ := newTestService()

	input := domain.MortgageInput{
		PropertyValue: 1200,
		InterestRate:  0,
		TermYears:     1,
	}

	result, err := service.Calculate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.MonthlyPayment)
	assert.Equal(t, 0.0, result.TotalInterest)
}

func TestCalculate_CashPurchase(t *testing.T) {
	service, mockRepo := newTestService()

	input := domain.MortgageInput{
		PropertyValue: 250000,
		DownPayment:   250000,
		InterestRate:  5,
		TermYears:     20,
	}

	result, err := service.Calculate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Principal)
	assert.Equal(t, 0.0, result.MonthlyPayment)
	assert.Equal(t, 0.0, result.TotalInterest)
	assert.Equal(t, 1, mockRepo.SaveCalls)
}

func TestCalculate_TaxRaisesPurchaseCost(t *testing.T) {
	service, _ := newTestService()

	input := domain.MortgageInput{
		PropertyValue: 100000,
		DownPayment:   10000,
		TaxRate:       10,
		InterestRate:  4,
		TermYears:     15,
	}

	result, err := service.Calculate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 110000.0, result.PurchaseCost)
	assert.Equal(t, 100000.0, result.Principal)
}

func TestCalculate_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		input domain.MortgageInput
	}{
		{"zero property value", domain.MortgageInput{PropertyValue: 0, TermYears: 10}},
		{"negative down payment", domain.MortgageInput{PropertyValue: 1000, DownPayment: -1, TermYears: 10}},
		{"down payment above cost", domain.MortgageInput{PropertyValue: 1000, DownPayment: 2000, TermYears: 10}},
		{"negative rate", domain.MortgageInput{PropertyValue: 1000, InterestRate: -1, TermYears: 10}},
		{"negative tax rate", domain.MortgageInput{PropertyValue: 1000, TaxRate: -1, TermYears: 10}},
		{"zero term", domain.MortgageInput{PropertyValue: 1000, TermYears: 0}},
		{"term above maximum", domain.MortgageInput{PropertyValue: 1000, TermYears: MaxTermYears + 1}},
		{"rate above maximum", domain.MortgageInput{PropertyValue: 1000, InterestRate: MaxInterestRate + 1, TermYears: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := newTestService()

			_, err := service.Calculate(context.Background(), tt.input)

			assert.Error(t, err)
			assert.Equal(t, 0, mockRepo.SaveCalls, "repository Save should NOT be called")
		})
	}
}

func TestCalculate_MonotonicInPrincipalAndRate(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	prev := 0.0
	for value := 100000.0; value <= 500000; value += 100000 {
		result, err := service.Calculate(ctx, domain.MortgageInput{
			PropertyValue: value,
			InterestRate:  5,
			TermYears:     30,
		})
		require.NoError(t, err)
		assert.Greater(t, result.MonthlyPayment, prev)
		prev = result.MonthlyPayment
	}

	prev = 0.0
	for rate := 1.0; rate <= 10; rate++ {
		result, err := service.Calculate(ctx, domain.MortgageInput{
			PropertyValue: 200000,
			InterestRate:  rate,
			TermYears:     30,
		})
		require.NoError(t, err)
		assert.Greater(t, result.MonthlyPayment, prev)
		prev = result.MonthlyPayment
	}
}

func TestCalculate_SecondCallHitsCache(t *testing.T) {
	service, mockRepo := newTestService()
	ctx := context.Background()

	input := domain.MortgageInput{
		PropertyValue: 300000,
		DownPayment:   60000,
		InterestRate:  6,
		TermYears:     30,
	}

	first, err := service.Calculate(ctx, input)
	require.NoError(t, err)

	second, err := service.Calculate(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, mockRepo.SaveCalls, "cached result should not be saved again")
}

func TestSchedule_AmortizesToZero(t *testing.T) {
	service, _ := newTestService()

	input := domain.MortgageInput{
		PropertyValue: 12000,
		InterestRate:  12,
		TermYears:     1,
	}

	result, err := service.Schedule(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, result.Schedule, 12)

	prevBalance := result.Principal
	for _, entry := range result.Schedule {
		assert.InDelta(t, entry.Payment, entry.InterestPaid+entry.PrincipalPaid, 0.02)
		assert.Less(t, entry.RemainingBalance, prevBalance)
		prevBalance = entry.RemainingBalance
	}
	assert.Equal(t, 0.0, result.Schedule[11].RemainingBalance)
}

func TestSchedule_CashPurchaseHasNoSchedule(t *testing.T) {
	service, _ := newTestService()

	result, err := service.Schedule(context.Background(), domain.MortgageInput{
		PropertyValue: 50000,
		DownPayment:   50000,
		InterestRate:  3,
		TermYears:     10,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Schedule)
	assert.Equal(t, 0.0, result.MonthlyPayment)
}
