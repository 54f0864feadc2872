package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"mortgage-simulator/domain"
	"mortgage-simulator/metrics"
	"mortgage-simulator/pkg/log"
)

type ScenarioService struct {
	mortgageService *MortgageService
	l               log.Logger
}

func NewScenarioService(l log.Logger, mortgageService *MortgageService) *ScenarioService {
	return &ScenarioService{
		mortgageService: mortgageService,
		l:               l,
	}
}

// monthlyRateFromAnnual converts an annual percentage to the effective
// monthly rate, compounding: (1 + r)^(1/12) - 1.
func monthlyRateFromAnnual(annualPct float64) float64 {
	return math.Pow(1+annualPct/100, 1.0/12.0) - 1
}

// Simulate runs a buy-vs-invest scenario: the down payment goes into the
// property, the remaining cash stays invested, and both evolve month by
// month until the mortgage term ends.
func (s *ScenarioService) Simulate(
	ctx context.Context,
	input domain.ScenarioInput,
) (domain.ScenarioResult, error) {

	if input.CashAvailable < 0 {
		metrics.ScenariosTotal.WithLabelValues("invalid").Inc()
		return domain.ScenarioResult{}, errors.New("invalid available cash")
	}
	if input.DownPayment > input.CashAvailable {
		metrics.ScenariosTotal.WithLabelValues("invalid").Inc()
		return domain.ScenarioResult{}, errors.New("down payment exceeds available cash")
	}
	if input.InvestmentReturn < 0 {
		metrics.ScenariosTotal.WithLabelValues("invalid").Inc()
		return domain.ScenarioResult{}, errors.New("invalid investment return")
	}
	if input.PropertyAppreciation < 0 {
		metrics.ScenariosTotal.WithLabelValues("invalid").Inc()
		return domain.ScenarioResult{}, errors.New("invalid property appreciation")
	}

	mortgage, err := s.mortgageService.Calculate(ctx, domain.MortgageInput{
		PropertyValue: input.PropertyValue,
		DownPayment:   input.DownPayment,
		TaxRate:       input.TaxRate,
		InterestRate:  input.InterestRate,
		TermYears:     input.TermYears,
	})
	if err != nil {
		metrics.ScenariosTotal.WithLabelValues("invalid").Inc()
		return domain.ScenarioResult{}, err
	}

	termMonths := input.TermYears * 12
	payment := mortgage.MonthlyPayment
	balance := mortgage.Principal

	mortgageRate := (input.InterestRate / 100) / 12
	investRate := monthlyRateFromAnnual(input.InvestmentReturn)
	propertyRate := monthlyRateFromAnnual(input.PropertyAppreciation)

	propertyValue := input.PropertyValue
	investmentValue := input.CashAvailable - input.DownPayment

	for month := 0; month < termMonths; month++ {
		if balance > 0 {
			interest := balance * mortgageRate
			balance -= payment - interest
			if balance < 0 {
				balance = 0
			}
		}
		propertyValue *= 1 + propertyRate
		investmentValue *= 1 + investRate
	}

	result := domain.ScenarioResult{
		MonthlyPayment:       payment,
		PurchaseCost:         mortgage.PurchaseCost,
		DownPayment:          input.DownPayment,
		Principal:            mortgage.Principal,
		InitialInvestment:    roundTo2Decimals(input.CashAvailable - input.DownPayment),
		InterestPaid:         mortgage.TotalInterest,
		TotalPaid:            roundTo2Decimals(mortgage.TotalPayment + input.DownPayment),
		FinalPropertyValue:   roundTo2Decimals(propertyValue),
		FinalInvestmentValue: roundTo2Decimals(investmentValue),
		FinalNetWorth:        roundTo2Decimals(propertyValue + investmentValue),
	}

	metrics.ScenariosTotal.WithLabelValues("ok").Inc()
	return result, nil
}

// Sweep evaluates the scenario across a range of down payments and reports
// the one ending with the highest net worth.
func (s *ScenarioService) Sweep(
	ctx context.Context,
	input domain.SweepInput,
) (domain.SweepResult, error) {

	if input.MinDownPayment < 0 {
		return domain.SweepResult{}, errors.New("invalid minimum down payment")
	}
	if input.MaxDownPayment < input.MinDownPayment {
		return domain.SweepResult{}, errors.New("minimum down payment greater than maximum")
	}
	if input.Steps < MinSweepSteps || input.Steps > MaxSweepSteps {
		return domain.SweepResult{}, fmt.Errorf("steps must be between %d and %d", MinSweepSteps, MaxSweepSteps)
	}

	step := (input.MaxDownPayment - input.MinDownPayment) / float64(input.Steps-1)

	result := domain.SweepResult{}
	for i := 0; i < input.Steps; i++ {
		down := input.MinDownPayment + step*float64(i)

		scenario := input.Scenario
		scenario.DownPayment = down

		point, err := s.Simulate(ctx, scenario)
		if err != nil {
			s.l.Warnf(ctx, "skipping down payment %.2f: %v", down, err)
			continue
		}

		result.Points = append(result.Points, domain.SweepPoint{
			DownPayment:    roundTo2Decimals(down),
			MonthlyPayment: point.MonthlyPayment,
			InterestPaid:   point.InterestPaid,
			FinalNetWorth:  point.FinalNetWorth,
		})

		if point.FinalNetWorth > result.BestNetWorth {
			result.BestNetWorth = point.FinalNetWorth
			result.BestDownPayment = roundTo2Decimals(down)
		}
	}

	if len(result.Points) == 0 {
		return domain.SweepResult{}, errors.New("no valid down payments in the requested range")
	}

	return result, nil
}
