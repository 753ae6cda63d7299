package routes

import (
	"github.com/gin-gonic/gin"

	"dbbuilder/internal/handlers"
)

type RowRoutes struct {
	rowHandler *handlers.RowHandler
}

func NewRowRoutes(rowHandler *handlers.RowHandler) *RowRoutes {
	return &RowRoutes{
		rowHandler: rowHandler,
	}
}

func (r *RowRoutes) RegisterRoutes(router *gin.Engine) {
	rows := router.Group("/rows")
	rows.POST("/insert", r.rowHandler.InsertRow)
	rows.POST("/update", r.rowHandler.UpdateRow)
}
