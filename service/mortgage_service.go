package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"mortgage-simulator/domain"
	"mortgage-simulator/metrics"
	"mortgage-simulator/pkg/log"
	"mortgage-simulator/repository"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type MortgageService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
	l     log.Logger
}

// NewMortgageService creates a new MortgageService with the given repository
// and cache.
func NewMortgageService(
	l log.Logger,
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *MortgageService {
	return &MortgageService{l: l, repo: repo, cache: cache}
}

// purchaseCost is the property value plus purchase taxes.
func purchaseCost(input domain.MortgageInput) float64 {
	return input.PropertyValue * (1 + input.TaxRate/100)
}

// monthlyPayment computes the fixed monthly payment for a loan.
// Zero rate degenerates to straight principal division.
func monthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if annualRate == 0 {
		return principal / float64(termMonths)
	}
	monthlyRate := (annualRate / 100) / 12
	n := float64(termMonths)
	return principal * (monthlyRate / (1 - math.Pow(1+monthlyRate, -n)))
}

func validateMortgageInput(input domain.MortgageInput) error {
	if input.PropertyValue <= 0 {
		return errors.New("invalid property value")
	}
	if input.PropertyValue > MaxPropertyValue {
		return fmt.Errorf("property value exceeds the maximum of $%.2f", MaxPropertyValue)
	}
	if input.DownPayment < 0 {
		return errors.New("invalid down payment")
	}
	if input.TaxRate < 0 {
		return errors.New("invalid tax rate")
	}
	if input.TaxRate > MaxTaxRate {
		return fmt.Errorf("tax rate exceeds the maximum of %.2f%%", MaxTaxRate)
	}
	if input.InterestRate < 0 {
		return errors.New("invalid interest rate")
	}
	if input.InterestRate > MaxInterestRate {
		return fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.TermYears < MinTermYears {
		return errors.New("invalid term")
	}
	if input.TermYears > MaxTermYears {
		return fmt.Errorf("term exceeds the maximum of %d years", MaxTermYears)
	}
	if input.DownPayment > purchaseCost(input) {
		return errors.New("down payment exceeds the property purchase cost")
	}
	return nil
}

func cacheKey(input domain.MortgageInput) string {
	return fmt.Sprintf("mortgage:%g:%g:%g:%g:%d",
		input.PropertyValue, input.DownPayment, input.TaxRate,
		input.InterestRate, input.TermYears)
}

// Calculate computes the mortgage details for the given input.
// A down payment covering the whole purchase cost is a cash purchase and
// yields a zero monthly payment.
func (s *MortgageService) Calculate(
	ctx context.Context,
	input domain.MortgageInput,
) (domain.MortgageResult, error) {

	if err := validateMortgageInput(input); err != nil {
		metrics.CalculationsTotal.WithLabelValues("invalid").Inc()
		return domain.MortgageResult{}, err
	}

	key := cacheKey(input)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.MortgageResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			metrics.CalculationsTotal.WithLabelValues("cached").Inc()
			return result, nil
		}
		s.l.Warnf(ctx, "discarding unreadable cache entry for %s", key)
	}

	cost := purchaseCost(input)
	principal := cost - input.DownPayment
	termMonths := input.TermYears * 12

	var payment float64
	if principal > 0 {
		payment = monthlyPayment(principal, input.InterestRate, termMonths)
	}

	total := payment * float64(termMonths)
	interest := total - principal
	if principal <= 0 {
		interest = 0
	}

	result := domain.MortgageResult{
		PurchaseCost:   roundTo2Decimals(cost),
		Principal:      roundTo2Decimals(principal),
		MonthlyPayment: roundTo2Decimals(payment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(interest),
	}

	metrics.CalculationsTotal.WithLabelValues("ok").Inc()

	// Persist the record and cache the result (non-critical if either fails)
	if err := s.repo.Save(input, result); err != nil {
		s.l.Warnf(ctx, "failed to save calculation: %v", err)
	}
	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			s.l.Warnf(ctx, "failed to cache calculation: %v", err)
		}
	}

	return result, nil
}

// Schedule computes the full amortization table for the given input.
func (s *MortgageService) Schedule(
	ctx context.Context,
	input domain.MortgageInput,
) (domain.ScheduleResult, error) {

	result, err := s.Calculate(ctx, input)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	out := domain.ScheduleResult{MortgageResult: result}
	if result.Principal <= 0 {
		return out, nil
	}

	termMonths := input.TermYears * 12
	monthlyRate := (input.InterestRate / 100) / 12
	payment := monthlyPayment(result.Principal, input.InterestRate, termMonths)
	balance := result.Principal

	out.Schedule = make([]domain.ScheduleEntry, 0, termMonths)
	for month := 1; month <= termMonths; month++ {
		interest := balance * monthlyRate
		principalPaid := payment - interest
		if principalPaid > balance {
			principalPaid = balance
		}
		balance -= principalPaid
		if balance < BalanceTolerance {
			balance = 0
		}

		out.Schedule = append(out.Schedule, domain.ScheduleEntry{
			Month:            month,
			Payment:          roundTo2Decimals(payment),
			InterestPaid:     roundTo2Decimals(interest),
			PrincipalPaid:    roundTo2Decimals(principalPaid),
			RemainingBalance: roundTo2Decimals(balance),
		})
	}

	return out, nil
}

// History returns the most recent calculations, newest first.
func (s *MortgageService) History(limit int) []repository.Calculation {
	return s.repo.List(limit)
}
