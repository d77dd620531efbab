package models

// DashboardSummary is returned by GET /dashboard/summary.
type DashboardSummary struct {
	TotalBalance  float64 `json:"totalBalance"`
	Notifications int     `json:"notifications"`
	MonthIncome   float64 `json:"monthIncome,omitempty"`
	MonthExpenses float64 `json:"monthExpenses,omitempty"`
}

type AccountFunds struct {
	Available float64 `json:"available"`
	Current   float64 `json:"current,omitempty"`
	Blocked   float64 `json:"blocked,omitempty"`
}

// Balance is returned by GET /dashboard/balance.
type Balance struct {
	Checking AccountFunds  `json:"checking"`
	Savings  *AccountFunds `json:"savings,omitempty"`
	Currency string        `json:"currency,omitempty"`
}

type Transaction struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type,omitempty"`
	Category    string  `json:"category,omitempty"`
	Date        string  `json:"date"`
}

type Investment struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type,omitempty"`
	Amount float64 `json:"amount"`
	Yield  float64 `json:"yield,omitempty"`
}

type CreditCard struct {
	ID        string  `json:"id"`
	Brand     string  `json:"brand,omitempty"`
	Last4     string  `json:"last4"`
	Limit     float64 `json:"limit"`
	Available float64 `json:"available"`
	DueDate   string  `json:"dueDate,omitempty"`
}
