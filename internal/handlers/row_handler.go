package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dbbuilder/internal/models"
	"dbbuilder/internal/responses"
	"dbbuilder/internal/services"
	"dbbuilder/internal/sqlgen"
)

type RowHandler struct {
	rowService *services.RowService
}

func NewRowHandler(rowService *services.RowService) *RowHandler {
	return &RowHandler{
		rowService: rowService,
	}
}

// InsertRow handles POST /rows/insert.
func (h *RowHandler) InsertRow(c *gin.Context) {
	var req models.RowOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.rowService.Insert(c.Request.Context(), &req); err != nil {
		if errors.Is(err, sqlgen.ErrNoData) {
			responses.Fail(c, http.StatusBadRequest, "No data provided")
			return
		}
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	responses.Message(c, "Row inserted.")
}

// UpdateRow handles POST /rows/update. A request without a row id is a client
// error before any SQL is constructed.
func (h *RowHandler) UpdateRow(c *gin.Context) {
	var req models.RowOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.ID == nil || *req.ID == 0 {
		responses.Fail(c, http.StatusBadRequest, "Row ID is required for updates.")
		return
	}

	updated, err := h.rowService.Update(c.Request.Context(), &req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if !updated {
		responses.Message(c, "No data to update.")
		return
	}
	responses.Message(c, "Row updated.")
}
