package domain

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeTravel  TransactionType = "travel"
)

type Transaction struct {
	ID        int64           `db:"id"`
	Title     string          `db:"title" validate:"required"`
	Client    string          `db:"client" validate:"required"`
	Amount    Money           `db:"amount" validate:"required,money"`
	Type      TransactionType `db:"type" validate:"required"`
	CreatedAt time.Time       `db:"created_at"`
}

// TransactionTypeTotal aggregates transactions sharing one type.
type TransactionTypeTotal struct {
	Type  TransactionType `db:"type"`
	Count int             `db:"count"`
	Total Money           `db:"total"`
}

// FinanceSummary nets income against expenses and travel costs.
type FinanceSummary struct {
	Income       Money
	Expenses     Money
	Travel       Money
	Net          Money
	Transactions int
	ByType       []TransactionTypeTotal
}

// Summarize folds per-type totals into a FinanceSummary. Types other than
// income, expense and travel are counted but do not affect Net.
func Summarize(totals []TransactionTypeTotal) FinanceSummary {
	zero := MustMoney("0")
	s := FinanceSummary{
		Income:   zero,
		Expenses: zero,
		Travel:   zero,
		ByType:   totals,
	}
	if s.ByType == nil {
		s.ByType = []TransactionTypeTotal{}
	}

	for _, t := range totals {
		s.Transactions += t.Count
		switch t.Type {
		case TransactionTypeIncome:
			s.Income = s.Income.Add(t.Total)
		case TransactionTypeExpense:
			s.Expenses = s.Expenses.Add(t.Total)
		case TransactionTypeTravel:
			s.Travel = s.Travel.Add(t.Total)
		}
	}

	s.Net = s.Income.Sub(s.Expenses).Sub(s.Travel)
	return s
}
