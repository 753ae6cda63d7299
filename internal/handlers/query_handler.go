package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dbbuilder/internal/models"
	"dbbuilder/internal/responses"
	"dbbuilder/internal/services"
)

type QueryHandler struct {
	queryService *services.QueryService
}

func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// Join handles POST /query/join and returns the joined rows as a bare array.
func (h *QueryHandler) Join(c *gin.Context) {
	var req models.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.queryService.Join(c.Request.Context(), &req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, rows)
}
