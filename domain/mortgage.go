package domain

type MortgageInput struct {
	PropertyValue float64 `json:"property_value"`
	DownPayment   float64 `json:"down_payment"`
	TaxRate       float64 `json:"tax_rate"`
	InterestRate  float64 `json:"interest_rate"`
	TermYears     int     `json:"term_years"`
}

type MortgageResult struct {
	PurchaseCost   float64 `json:"purchase_cost"`
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// ScheduleEntry is one row of the amortization table.
type ScheduleEntry struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	InterestPaid     float64 `json:"interest_paid"`
	PrincipalPaid    float64 `json:"principal_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type ScheduleResult struct {
	MortgageResult
	Schedule []ScheduleEntry `json:"schedule"`
}
