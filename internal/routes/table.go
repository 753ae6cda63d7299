package routes

import (
	"github.com/gin-gonic/gin"

	"dbbuilder/internal/handlers"
)

type TableRoutes struct {
	tableHandler *handlers.TableHandler
}

func NewTableRoutes(tableHandler *handlers.TableHandler) *TableRoutes {
	return &TableRoutes{
		tableHandler: tableHandler,
	}
}

func (r *TableRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/tables", r.tableHandler.ListTables)
	router.GET("/tables/:table_name", r.tableHandler.GetTable)
	router.POST("/create-table", r.tableHandler.CreateTable)
	router.POST("/add-column", r.tableHandler.AddColumn)
	router.DELETE("/tables/:table_name", r.tableHandler.DropTable)
}
