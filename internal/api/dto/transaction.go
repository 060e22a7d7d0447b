package dto

import (
	"time"

	"github.com/martijn/bizdesk/internal/core/domain"
)

// CreateTransactionRequest is the POST /api/transactions body.
type CreateTransactionRequest struct {
	Title  string       `json:"title" example:"Lunch"`
	Client string       `json:"client" example:"Acme"`
	Amount domain.Money `json:"amount" swaggertype:"string" example:"12.50"`
	Type   string       `json:"type" example:"expense"`
}

func (r CreateTransactionRequest) ToDomain() *domain.Transaction {
	return &domain.Transaction{
		Title:  r.Title,
		Client: r.Client,
		Amount: r.Amount,
		Type:   domain.TransactionType(r.Type),
	}
}

type TransactionResponse struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Client    string       `json:"client"`
	Amount    domain.Money `json:"amount" swaggertype:"string"`
	Type      string       `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		Title:     t.Title,
		Client:    t.Client,
		Amount:    t.Amount,
		Type:      string(t.Type),
		CreatedAt: t.CreatedAt.UTC(),
	}
}

func ToTransactionResponses(transactions []*domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

type TransactionTypeTotalResponse struct {
	Type  string       `json:"type"`
	Count int          `json:"count"`
	Total domain.Money `json:"total" swaggertype:"string"`
}

// FinanceSummaryResponse is returned by GET /api/finances/summary.
type FinanceSummaryResponse struct {
	Income       domain.Money                   `json:"income" swaggertype:"string"`
	Expenses     domain.Money                   `json:"expenses" swaggertype:"string"`
	Travel       domain.Money                   `json:"travel" swaggertype:"string"`
	Net          domain.Money                   `json:"net" swaggertype:"string"`
	Transactions int                            `json:"transactions"`
	ByType       []TransactionTypeTotalResponse `json:"byType"`
}

func ToFinanceSummaryResponse(s domain.FinanceSummary) FinanceSummaryResponse {
	resp := FinanceSummaryResponse{
		Income:       s.Income,
		Expenses:     s.Expenses,
		Travel:       s.Travel,
		Net:          s.Net,
		Transactions: s.Transactions,
		ByType:       make([]TransactionTypeTotalResponse, len(s.ByType)),
	}
	for i, t := range s.ByType {
		resp.ByType[i] = TransactionTypeTotalResponse{Type: string(t.Type), Count: t.Count, Total: t.Total}
	}
	return resp
}
