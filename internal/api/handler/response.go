package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/martijn/bizdesk/internal/api/dto"
	"github.com/martijn/bizdesk/internal/api/util"
	"github.com/martijn/bizdesk/internal/core/service"
)

// totalCountHeader carries the unpaged row count of a list response.
const totalCountHeader = "X-Total-Count"

func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, dto.ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
}

func badRequest(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, err.Error())
}

// respondError writes a ServiceError with its own status; anything else is a 500.
func respondError(c *gin.Context, err error) {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		abortWithError(c, svcErr.Code, svcErr.Message)
		return
	}
	abortWithError(c, http.StatusInternalServerError, err.Error())
}

func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		badRequest(c, fmt.Errorf("invalid id: %s", raw))
		return 0, false
	}
	return id, true
}

// parseListFilter reads query, order, page and per_page from the request.
func parseListFilter(c *gin.Context, fields util.FieldSet) (util.ListFilter, bool) {
	filter, err := util.ParseListFilter(util.ListParams{
		Query:   c.Query("query"),
		Order:   c.Query("order"),
		Page:    c.Query("page"),
		PerPage: c.Query("per_page"),
	}, fields)
	if err != nil {
		badRequest(c, err)
		return util.ListFilter{}, false
	}
	return filter, true
}
