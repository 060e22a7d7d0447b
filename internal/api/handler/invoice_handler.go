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

// InvoiceFields are the fields allowed in invoice queries and ordering
var InvoiceFields = util.FieldSet{
	Query: []string{"id", "invoice_number", "client_name", "amount", "status", "items", "due_date", "created_at"},
	Order: []string{"id", "invoice_number", "client_name", "amount", "status", "items", "due_date", "created_at"},
	Text:  []string{"invoice_number", "client_name", "status"},
}

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        query     query     string  false  "Filters, e.g. status|Paid or amount|gte|100"
// @Param        order     query     string  false  "Ordering, e.g. due_date|asc"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        per_page  query     int     false  "Page size, 0 for all"
// @Success      200  {array}   dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	listFilter, ok := parseListFilter(c, InvoiceFields)
	if !ok {
		return
	}
	filter := repository.InvoiceFilter{ListFilter: listFilter}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.invoiceService.CountInvoices(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(totalCountHeader, strconv.Itoa(count))
	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInvoiceRequest  true  "Invoice"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	invoice := req.ToDomain()
	if err := h.invoiceService.CreateInvoice(c.Request.Context(), invoice); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// UpdateInvoiceStatus godoc
// @Summary      Change an invoice's status
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      int                             true  "Invoice ID"
// @Param        body  body      dto.UpdateInvoiceStatusRequest  true  "New status"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// InvoiceSummary godoc
// @Summary      Invoice count and total per status
// @Tags         invoices
// @Produce      json
// @Success      200  {array}  dto.InvoiceStatusTotalResponse
// @Router       /invoices/summary [get]
func (h *InvoiceHandler) InvoiceSummary(c *gin.Context) {
	totals, err := h.invoiceService.InvoiceSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceSummaryResponse(totals))
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Tags         invoices
// @Param        id   path  int  true  "Invoice ID"
// @Success      204
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
