package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/martijn/bizdesk/internal/api/dto"
	"github.com/martijn/bizdesk/internal/api/util"
	"github.com/martijn/bizdesk/internal/core/repository"
	"github.com/martijn/bizdesk/internal/core/service"
)

// TransactionFields are the fields allowed in transaction queries and ordering
var TransactionFields = util.FieldSet{
	Query: []string{"id", "title", "client", "amount", "type", "created_at"},
	Order: []string{"id", "title", "client", "amount", "type", "created_at"},
	Text:  []string{"title", "client", "type"},
}

type TransactionHandler struct {
	transactionService *service.TransactionService
}

func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions godoc
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Param        query     query     string  false  "Filters, e.g. type|in|expense,travel"
// @Param        order     query     string  false  "Ordering, e.g. amount|desc"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        per_page  query     int     false  "Page size, 0 for all"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	listFilter, ok := parseListFilter(c, TransactionFields)
	if !ok {
		return
	}
	filter := repository.TransactionFilter{ListFilter: listFilter}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.transactionService.CountTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(totalCountHeader, strconv.Itoa(count))
	c.JSON(http.StatusOK, dto.ToTransactionResponses(transactions))
}

// GetTransaction godoc
// @Summary      Get a transaction
// @Tags         transactions
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	transaction, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// CreateTransaction godoc
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTransactionRequest  true  "Transaction"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	transaction := req.ToDomain()
	if err := h.transactionService.CreateTransaction(c.Request.Context(), transaction); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// DeleteTransaction godoc
// @Summary      Delete a transaction
// @Tags         transactions
// @Param        id   path  int  true  "Transaction ID"
// @Success      204
// @Router       /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FinanceSummary godoc
// @Summary      Income, expense and travel totals with net income
// @Tags         finances
// @Produce      json
// @Success      200  {object}  dto.FinanceSummaryResponse
// @Router       /finances/summary [get]
func (h *TransactionHandler) FinanceSummary(c *gin.Context) {
	summary, err := h.transactionService.FinanceSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceSummaryResponse(summary))
}
