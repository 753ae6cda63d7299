package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dbbuilder/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, tableHandler *handlers.TableHandler, rowHandler *handlers.RowHandler, queryHandler *handlers.QueryHandler) {
	tableRoutes := NewTableRoutes(tableHandler)
	tableRoutes.RegisterRoutes(router)

	rowRoutes := NewRowRoutes(rowHandler)
	rowRoutes.RegisterRoutes(router)

	queryRoutes := NewQueryRoutes(queryHandler)
	queryRoutes.RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "active",
			"service": "DB Builder API",
		})
	})
}
