package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dbbuilder/internal/models"
	"dbbuilder/internal/responses"
	"dbbuilder/internal/services"
)

type TableHandler struct {
	tableService *services.TableService
}

func NewTableHandler(tableService *services.TableService) *TableHandler {
	return &TableHandler{
		tableService: tableService,
	}
}

// ListTables handles GET /tables.
func (h *TableHandler) ListTables(c *gin.Context) {
	tables, err := h.tableService.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if tables == nil {
		tables = []string{}
	}

	c.JSON(http.StatusOK, tables)
}

// GetTable handles GET /tables/:table_name.
func (h *TableHandler) GetTable(c *gin.Context) {
	tableName := c.Param("table_name")

	snapshot, err := h.tableService.Describe(c.Request.Context(), tableName)
	if err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			responses.Fail(c, http.StatusNotFound, fmt.Sprintf("Table '%s' not found", tableName))
			return
		}
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// CreateTable handles POST /create-table.
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req models.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.tableService.Create(c.Request.Context(), &req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	responses.Message(c, fmt.Sprintf("Table %s created successfully.", req.TableName))
}

// AddColumn handles POST /add-column.
func (h *TableHandler) AddColumn(c *gin.Context) {
	var req models.AddColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.tableService.AddColumn(c.Request.Context(), &req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	responses.Message(c, fmt.Sprintf("Column %s added.", req.Column.Name))
}

// DropTable handles DELETE /tables/:table_name. Dropping an absent table
// succeeds.
func (h *TableHandler) DropTable(c *gin.Context) {
	tableName := c.Param("table_name")

	if err := h.tableService.Drop(c.Request.Context(), tableName); err != nil {
		responses.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	responses.Message(c, fmt.Sprintf("Table %s dropped.", tableName))
}
