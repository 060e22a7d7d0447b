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

// ClientFields are the fields allowed in client queries and ordering
var ClientFields = util.FieldSet{
	Query: []string{"id", "name", "company", "email", "phone", "location", "status", "created_at", "last_contact"},
	Order: []string{"id", "name", "company", "status", "created_at", "last_contact"},
	Text:  []string{"name", "company", "email", "phone", "location", "status"},
}

type ClientHandler struct {
	clientService *service.ClientService
}

func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        query     query     string  false  "Filters, e.g. company|like|acme"
// @Param        order     query     string  false  "Ordering, e.g. name|asc"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        per_page  query     int     false  "Page size, 0 for all"
// @Success      200  {array}   dto.ClientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	listFilter, ok := parseListFilter(c, ClientFields)
	if !ok {
		return
	}
	filter := repository.ClientFilter{ListFilter: listFilter}

	clients, err := h.clientService.ListClients(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.clientService.CountClients(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(totalCountHeader, strconv.Itoa(count))
	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

// GetClient godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// CreateClient godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateClientRequest  true  "Client"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	client := req.ToDomain()
	if err := h.clientService.CreateClient(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// DeleteClient godoc
// @Summary      Delete a client
// @Tags         clients
// @Param        id   path  int  true  "Client ID"
// @Success      204
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
