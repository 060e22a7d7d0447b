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

// AppointmentFields are the fields allowed in appointment queries and ordering
var AppointmentFields = util.FieldSet{
	Query: []string{"id", "title", "client_name", "date", "time", "location", "type", "status", "created_at"},
	Order: []string{"id", "title", "client_name", "date", "status", "created_at"},
	Text:  []string{"title", "client_name", "time", "location", "type", "status"},
}

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// ListAppointments godoc
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Param        query     query     string  false  "Filters, e.g. status|Pending"
// @Param        order     query     string  false  "Ordering, e.g. date|asc"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        per_page  query     int     false  "Page size, 0 for all"
// @Success      200  {array}   dto.AppointmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	listFilter, ok := parseListFilter(c, AppointmentFields)
	if !ok {
		return
	}
	filter := repository.AppointmentFilter{ListFilter: listFilter}

	appointments, err := h.appointmentService.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.appointmentService.CountAppointments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(totalCountHeader, strconv.Itoa(count))
	c.JSON(http.StatusOK, dto.ToAppointmentResponses(appointments))
}

// GetAppointment godoc
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      int  true  "Appointment ID"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appointment))
}

// CreateAppointment godoc
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateAppointmentRequest  true  "Appointment"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	appointment := req.ToDomain()
	if err := h.appointmentService.CreateAppointment(c.Request.Context(), appointment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(appointment))
}

// DeleteAppointment godoc
// @Summary      Delete an appointment
// @Description  Deleting an id that does not exist also succeeds.
// @Tags         appointments
// @Param        id   path  int  true  "Appointment ID"
// @Success      204
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
