package service

const (
	MaxPropertyValue = 1_000_000_000.0 // upper bound for property value
	MaxInterestRate  = 1000.0          // % annual
	MaxTaxRate       = 100.0           // % of property value
	MaxTermYears     = 50
	MinTermYears     = 1

	// tolerance below which a remaining balance counts as paid off
	BalanceTolerance = 0.01

	// limits for the down payment sweep
	MaxSweepSteps = 200
	MinSweepSteps = 2
)
