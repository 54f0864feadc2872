package domain

// ScenarioInput describes a buy-vs-invest simulation: buy a property with a
// given down payment and keep the remaining cash invested for the life of
// the mortgage.
type ScenarioInput struct {
	CashAvailable        float64 `json:"cash_available"`
	PropertyValue        float64 `json:"property_value"`
	TaxRate              float64 `json:"tax_rate"`
	InterestRate         float64 `json:"interest_rate"`
	TermYears            int     `json:"term_years"`
	InvestmentReturn     float64 `json:"investment_return"`
	PropertyAppreciation float64 `json:"property_appreciation"`
	DownPayment          float64 `json:"down_payment"`
}

type ScenarioResult struct {
	MonthlyPayment       float64 `json:"monthly_payment"`
	PurchaseCost         float64 `json:"purchase_cost"`
	DownPayment          float64 `json:"down_payment"`
	Principal            float64 `json:"principal"`
	InitialInvestment    float64 `json:"initial_investment"`
	InterestPaid         float64 `json:"interest_paid"`
	TotalPaid            float64 `json:"total_paid"`
	FinalPropertyValue   float64 `json:"final_property_value"`
	FinalInvestmentValue float64 `json:"final_investment_value"`
	FinalNetWorth        float64 `json:"final_net_worth"`
}

// SweepInput evaluates the same scenario across a range of down payments.
type SweepInput struct {
	Scenario       ScenarioInput `json:"scenario"`
	MinDownPayment float64       `json:"min_down_payment"`
	MaxDownPayment float64       `json:"max_down_payment"`
	Steps          int           `json:"steps"`
}

type SweepPoint struct {
	DownPayment    float64 `json:"down_payment"`
	MonthlyPayment float64 `json:"monthly_payment"`
	InterestPaid   float64 `json:"interest_paid"`
	FinalNetWorth  float64 `json:"final_net_worth"`
}

type SweepResult struct {
	BestDownPayment float64      `json:"best_down_payment"`
	BestNetWorth    float64      `json:"best_net_worth"`
	Points          []SweepPoint `json:"points"`
}
