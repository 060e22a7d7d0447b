package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martijn/bizdesk/internal/api/dto"
	"github.com/martijn/bizdesk/internal/core/service"
	"github.com/martijn/bizdesk/internal/infrastructure/sqlstore"
)

// testEnv holds all test dependencies
type testEnv struct {
	db     *sqlstore.DB
	router *gin.Engine
}

// setupTestEnv creates a test environment with in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Use in-memory SQLite database
	db, err := sqlstore.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Each insert is stamped one minute after the previous one
	clock := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	db.SetClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})

	appointmentHandler := NewAppointmentHandler(service.NewAppointmentService(sqlstore.NewAppointmentRepository(db)))
	clientHandler := NewClientHandler(service.NewClientService(sqlstore.NewClientRepository(db)))
	invoiceHandler := NewInvoiceHandler(service.NewInvoiceService(sqlstore.NewInvoiceRepository(db)))
	transactionHandler := NewTransactionHandler(service.NewTransactionService(sqlstore.NewTransactionRepository(db)))

	// Setup gin router in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	api.GET("/appointments", appointmentHandler.ListAppointments)
	api.POST("/appointments", appointmentHandler.CreateAppointment)
	api.GET("/appointments/:id", appointmentHandler.GetAppointment)
	api.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)

	api.GET("/clients", clientHandler.ListClients)
	api.POST("/clients", clientHandler.CreateClient)
	api.GET("/clients/:id", clientHandler.GetClient)
	api.DELETE("/clients/:id", clientHandler.DeleteClient)

	api.GET("/invoices", invoiceHandler.ListInvoices)
	api.POST("/invoices", invoiceHandler.CreateInvoice)
	api.GET("/invoices/summary", invoiceHandler.InvoiceSummary)
	api.GET("/invoices/:id", invoiceHandler.GetInvoice)
	api.PATCH("/invoices/:id/status", invoiceHandler.UpdateInvoiceStatus)
	api.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	api.GET("/finances/summary", transactionHandler.FinanceSummary)

	env := &testEnv{db: db, router: router}
	t.Cleanup(env.cleanup)
	return env
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// makeRequest performs a request with an optional JSON body and returns the response
func (env *testEnv) makeRequest(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// mustCreate POSTs body and fails the test unless the response is 201
func (env *testEnv) mustCreate(t *testing.T, path string, body interface{}, out interface{}) {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, path, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST %s: expected status 201, got %d: %s", path, w.Code, w.Body.String())
	}
	parseJSON(t, w, out)
}

// parseJSON parses the response body into out
func parseJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if out == nil {
		return
	}
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
}

// parseErrorResponse parses the response body into ErrorResponse
func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// ptr is a helper to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}
