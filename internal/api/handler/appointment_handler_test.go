package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/martijn/bizdesk/internal/api/dto"
)

func appointmentBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":      title,
		"clientName": "Acme Corp",
		"date":       "2025-03-14",
		"time":       "10:30",
		"duration":   "1h",
		"location":   "Office",
		"type":       "Meeting",
	}
}

func TestCreateAppointment(t *testing.T) {
	env := setupTestEnv(t)

	var created dto.AppointmentResponse
	env.mustCreate(t, "/api/appointments", appointmentBody("Kickoff"), &created)

	if created.ID < 1 {
		t.Errorf("expected id to be assigned, got %d", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
	if created.Status != "Pending" {
		t.Errorf("expected default status Pending, got %q", created.Status)
	}
	if created.Date.String() != "2025-03-14" || created.Time != "10:30" || created.ClientName != "Acme Corp" {
		t.Errorf("submitted fields not echoed: %+v", created)
	}

	var list []dto.AppointmentResponse
	parseJSON(t, env.makeRequest(t, http.MethodGet, "/api/appointments", nil), &list)

	matches := 0
	for _, a := range list {
		if a.ID == created.ID {
			matches++
			if !a.CreatedAt.Equal(created.CreatedAt) {
				t.Errorf("createdAt changed between create and list: %v vs %v", created.CreatedAt, a.CreatedAt)
			}
		}
	}
	if matches != 1 {
		t.Errorf("expected created appointment exactly once in list, found %d", matches)
	}
}

func TestCreateAppointment_Validation(t *testing.T) {
	tests := []struct {
		name            string
		body            interface{}
		expectedMessage string
	}{
		{
			name:            "missing title",
			body:            func() map[string]interface{} { b := appointmentBody(""); delete(b, "title"); return b }(),
			expectedMessage: "title is required",
		},
		{
			name:            "malformed date",
			body:            func() map[string]interface{} { b := appointmentBody("x"); b["date"] = "14/03/2025"; return b }(),
			expectedMessage: `invalid date "14/03/2025": expected YYYY-MM-DD`,
		},
		{
			name: "malformed json",
			body: `{"title":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)

			w := env.makeRequest(t, http.MethodPost, "/api/appointments", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}

			resp := parseErrorResponse(t, w)
			if resp.Code != http.StatusBadRequest || resp.Error != "Bad Request" {
				t.Errorf("unexpected error body: %+v", resp)
			}
			if tt.expectedMessage != "" && resp.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestListAppointments_NewestFirst(t *testing.T) {
	env := setupTestEnv(t)

	env.mustCreate(t, "/api/appointments", appointmentBody("A"), nil)
	env.mustCreate(t, "/api/appointments", appointmentBody("B"), nil)

	w := env.makeRequest(t, http.MethodGet, "/api/appointments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var list []dto.AppointmentResponse
	parseJSON(t, w, &list)

	if len(list) != 2 || list[0].Title != "B" || list[1].Title != "A" {
		t.Fatalf("expected [B, A], got %+v", list)
	}
	if got := w.Header().Get(totalCountHeader); got != "2" {
		t.Errorf("expected %s 2, got %q", totalCountHeader, got)
	}
}

func TestDeleteAppointment(t *testing.T) {
	env := setupTestEnv(t)

	var created dto.AppointmentResponse
	env.mustCreate(t, "/api/appointments", appointmentBody("Kickoff"), &created)
	path := fmt.Sprintf("/api/appointments/%d", created.ID)

	for i := 0; i < 2; i++ {
		if w := env.makeRequest(t, http.MethodDelete, path, nil); w.Code != http.StatusNoContent {
			t.Fatalf("delete #%d: expected status 204, got %d", i+1, w.Code)
		}
	}

	var list []dto.AppointmentResponse
	parseJSON(t, env.makeRequest(t, http.MethodGet, "/api/appointments", nil), &list)
	for _, a := range list {
		if a.ID == created.ID {
			t.Fatalf("deleted appointment %d still listed", created.ID)
		}
	}

	if w := env.makeRequest(t, http.MethodGet, path, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 after delete, got %d", w.Code)
	}
}

func TestGetAppointment_InvalidID(t *testing.T) {
	env := setupTestEnv(t)

	for _, id := range []string{"abc", "0", "-3"} {
		w := env.makeRequest(t, http.MethodGet, "/api/appointments/"+id, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("id %q: expected status 400, got %d", id, w.Code)
		}
	}
}
