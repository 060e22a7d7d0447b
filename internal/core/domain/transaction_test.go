package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]TransactionTypeTotal{
		{Type: TransactionTypeIncome, Count: 2, Total: MustMoney("5700.00")},
		{Type: TransactionTypeExpense, Count: 3, Total: MustMoney("300.49")},
		{Type: TransactionTypeTravel, Count: 1, Total: MustMoney("85")},
		{Type: "refund", Count: 1, Total: MustMoney("10")},
	})

	assert.Equal(t, "5700.00", s.Income.String())
	assert.Equal(t, "300.49", s.Expenses.String())
	assert.Equal(t, "85.00", s.Travel.String())
	assert.Equal(t, "5314.51", s.Net.String())
	assert.Equal(t, 7, s.Transactions)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, "0.00", s.Net.String())
	assert.Equal(t, 0, s.Transactions)
	assert.NotNil(t, s.ByType)
}
