package finance

import "time"

// Kind distinguishes money in from money out
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ValidKind reports whether k is a known transaction kind
func ValidKind(k Kind) bool {
	return k == KindIncome || k == KindExpense
}

// Transaction represents a single money movement
type Transaction struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Kind       Kind      `json:"kind"`
	Amount     float64   `json:"amount"`
	Category   string    `json:"category"`
	Note       *string   `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategoryTotal is one row of the monthly expense breakdown
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthlySummary aggregates a month of transactions
type MonthlySummary struct {
	Month        string          `json:"month"`
	IncomeTotal  float64         `json:"income_total"`
	ExpenseTotal float64         `json:"expense_total"`
	Net          float64         `json:"net"`
	ByCategory   []CategoryTotal `json:"by_category"`
}
