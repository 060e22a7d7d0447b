package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/martijn/bizdesk/internal/api/dto"
)

func invoiceBody(number string, amount interface{}) map[string]interface{} {
	return map[string]interface{}{
		"invoiceNumber": number,
		"clientName":    "Acme Corp",
		"amount":        amount,
		"dueDate":       "2025-04-01",
	}
}

func TestCreateInvoice(t *testing.T) {
	env := setupTestEnv(t)

	var created dto.InvoiceResponse
	env.mustCreate(t, "/api/invoices", invoiceBody("INV-001", 1250), &created)

	if created.Amount.String() != "1250.00" {
		t.Errorf("expected amount 1250.00, got %s", created.Amount)
	}
	if created.Items != 1 || created.Status != "Pending" {
		t.Errorf("expected defaults items=1 status=Pending, got items=%d status=%q", created.Items, created.Status)
	}
	if created.DueDate.String() != "2025-04-01" {
		t.Errorf("expected dueDate 2025-04-01, got %s", created.DueDate)
	}
}

func TestCreateInvoice_DuplicateNumber(t *testing.T) {
	env := setupTestEnv(t)

	var first dto.InvoiceResponse
	env.mustCreate(t, "/api/invoices", invoiceBody("INV-001", "100.00"), &first)

	w := env.makeRequest(t, http.MethodPost, "/api/invoices", invoiceBody("INV-001", "999.00"))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", w.Code, w.Body.String())
	}
	if resp := parseErrorResponse(t, w); resp.Code != http.StatusConflict {
		t.Errorf("expected code 409 in body, got %d", resp.Code)
	}

	var fetched dto.InvoiceResponse
	parseJSON(t, env.makeRequest(t, http.MethodGet, fmt.Sprintf("/api/invoices/%d", first.ID), nil), &fetched)
	if fetched.Amount.String() != "100.00" {
		t.Errorf("first invoice modified: amount %s", fetched.Amount)
	}
	if fetched.Status != first.Status || fetched.ClientName != first.ClientName {
		t.Errorf("first invoice modified: before %+v, after %+v", first, fetched)
	}
}

func TestCreateInvoice_InvalidAmount(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name   string
		amount interface{}
	}{
		{"not numeric", "lots"},
		{"more digits than stored", "123456789012.34"},
		{"number beyond the limit", 100000000},
		{"negative beyond the limit", "-100000000.00"},
		{"huge exponent", "1e1000000"},
		{"huge exponent as number", json.RawMessage("1e1000000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.makeRequest(t, http.MethodPost, "/api/invoices", invoiceBody("INV-001", tt.amount))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}

	var created dto.InvoiceResponse
	env.mustCreate(t, "/api/invoices", invoiceBody("INV-MAX", "99999999.99"), &created)
	if created.Amount.String() != "99999999.99" {
		t.Errorf("expected amount 99999999.99, got %s", created.Amount)
	}
}

func TestCreateInvoice_Items(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name           string
		items          interface{}
		expectedStatus int
		expectedItems  int
	}{
		{"explicit zero rejected", 0, http.StatusBadRequest, 0},
		{"negative rejected", -2, http.StatusBadRequest, 0},
		{"explicit count kept", 3, http.StatusCreated, 3},
		{"null uses default", nil, http.StatusCreated, 1},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := invoiceBody(fmt.Sprintf("INV-%03d", i), "10.00")
			body["items"] = tt.items

			w := env.makeRequest(t, http.MethodPost, "/api/invoices", body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus != http.StatusCreated {
				if resp := parseErrorResponse(t, w); !strings.Contains(resp.Message, "items") {
					t.Errorf("expected message about items, got %q", resp.Message)
				}
				return
			}

			var created dto.InvoiceResponse
			parseJSON(t, w, &created)
			if created.Items != tt.expectedItems {
				t.Errorf("expected items %d, got %d", tt.expectedItems, created.Items)
			}
		})
	}
}

func TestInvoices_DatabaseUnavailable(t *testing.T) {
	env := setupTestEnv(t)

	var created dto.InvoiceResponse
	env.mustCreate(t, "/api/invoices", invoiceBody("INV-001", "100.00"), &created)

	if err := env.db.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"list", http.MethodGet, "/api/invoices", nil},
		{"get", http.MethodGet, fmt.Sprintf("/api/invoices/%d", created.ID), nil},
		{"create", http.MethodPost, "/api/invoices", invoiceBody("INV-002", "1.00")},
		{"summary", http.MethodGet, "/api/invoices/summary", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.makeRequest(t, tt.method, tt.path, tt.body)
			if w.Code != http.StatusServiceUnavailable {
				t.Fatalf("expected status 503, got %d: %s", w.Code, w.Body.String())
			}
			if resp := parseErrorResponse(t, w); resp.Code != http.StatusServiceUnavailable {
				t.Errorf("expected code 503 in body, got %d", resp.Code)
			}
		})
	}
}

func TestUpdateInvoiceStatus(t *testing.T) {
	env := setupTestEnv(t)

	var created dto.InvoiceResponse
	env.mustCreate(t, "/api/invoices", invoiceBody("INV-001", "100.00"), &created)

	tests := []struct {
		name           string
		id             int64
		body           interface{}
		expectedStatus int
	}{
		{"mark paid", created.ID, map[string]string{"status": "Paid"}, http.StatusOK},
		{"missing invoice", 9999, map[string]string{"status": "Paid"}, http.StatusNotFound},
		{"missing status", created.ID, map[string]string{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.makeRequest(t, http.MethodPatch, fmt.Sprintf("/api/invoices/%d/status", tt.id), tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}

	var fetched dto.InvoiceResponse
	parseJSON(t, env.makeRequest(t, http.MethodGet, fmt.Sprintf("/api/invoices/%d", created.ID), nil), &fetched)

	if fetched.Status != "Paid" {
		t.Errorf("expected status Paid, got %q", fetched.Status)
	}
	created.Status = fetched.Status
	if fetched.InvoiceNumber != created.InvoiceNumber ||
		fetched.ClientName != created.ClientName ||
		!fetched.Amount.Equal(created.Amount) ||
		fetched.Items != created.Items ||
		fetched.DueDate.String() != created.DueDate.String() ||
		!fetched.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("fields other than status changed:\nbefore %+v\nafter  %+v", created, fetched)
	}
}

func TestListInvoices(t *testing.T) {
	env := setupTestEnv(t)

	seed := []struct {
		number string
		status string
		amount string
	}{
		{"INV-001", "Paid", "100.00"},
		{"INV-002", "Pending", "250.00"},
		{"INV-003", "Paid", "75.50"},
		{"INV-004", "Overdue", "300.00"},
		{"INV-005", "Paid", "20.00"},
	}
	for _, s := range seed {
		var created dto.InvoiceResponse
		env.mustCreate(t, "/api/invoices", invoiceBody(s.number, s.amount), &created)
		if s.status != "Pending" {
			w := env.makeRequest(t, http.MethodPatch, fmt.Sprintf("/api/invoices/%d/status", created.ID), map[string]string{"status": s.status})
			if w.Code != http.StatusOK {
				t.Fatalf("failed to set status: %d", w.Code)
			}
		}
	}

	tests := []struct {
		name           string
		queryString    string
		expectedStatus int
		expectedTotal  *int
		expectedIDs    []string
	}{
		{
			name:           "filter by status",
			queryString:    "?query=status|Paid",
			expectedStatus: http.StatusOK,
			expectedTotal:  ptr(3),
			expectedIDs:    []string{"INV-005", "INV-003", "INV-001"},
		},
		{
			name:           "filter and paginate",
			queryString:    "?query=status|Paid&page=2&per_page=2",
			expectedStatus: http.StatusOK,
			expectedTotal:  ptr(3),
			expectedIDs:    []string{"INV-001"},
		},
		{
			name:           "amount compares numerically",
			queryString:    "?query=amount|gte|100&order=amount|asc",
			expectedStatus: http.StatusOK,
			expectedTotal:  ptr(3),
			expectedIDs:    []string{"INV-001", "INV-002", "INV-004"},
		},
		{
			name:           "status in list",
			queryString:    "?query=status|in|Pending,Overdue&order=invoice_number|asc",
			expectedStatus: http.StatusOK,
			expectedTotal:  ptr(2),
			expectedIDs:    []string{"INV-002", "INV-004"},
		},
		{
			name:           "invalid operator",
			queryString:    "?query=status|between|Paid",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid order field",
			queryString:    "?order=secret|asc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.makeRequest(t, http.MethodGet, "/api/invoices"+tt.queryString, nil)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			if tt.expectedTotal != nil {
				if got := w.Header().Get(totalCountHeader); got != strconv.Itoa(*tt.expectedTotal) {
					t.Errorf("expected total %d, got %q", *tt.expectedTotal, got)
				}
			}

			var list []dto.InvoiceResponse
			parseJSON(t, w, &list)
			if len(list) != len(tt.expectedIDs) {
				t.Fatalf("expected %d invoices, got %d", len(tt.expectedIDs), len(list))
			}
			for i, number := range tt.expectedIDs {
				if list[i].InvoiceNumber != number {
					t.Errorf("position %d: expected %s, got %s", i, number, list[i].InvoiceNumber)
				}
			}
		})
	}
}

func TestInvoiceSummary(t *testing.T) {
	env := setupTestEnv(t)

	env.mustCreate(t, "/api/invoices", invoiceBody("INV-001", "100.10"), nil)
	env.mustCreate(t, "/api/invoices", invoiceBody("INV-002", "0.20"), nil)

	var totals []dto.InvoiceStatusTotalResponse
	w := env.makeRequest(t, http.MethodGet, "/api/invoices/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	parseJSON(t, w, &totals)

	if len(totals) != 1 || totals[0].Status != "Pending" || totals[0].Count != 2 || totals[0].Total.String() != "100.30" {
		t.Errorf("unexpected summary: %+v", totals)
	}
}
