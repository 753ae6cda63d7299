package routes

import (
	"github.com/gin-gonic/gin"

	"dbbuilder/internal/handlers"
)

type QueryRoutes struct {
	queryHandler *handlers.QueryHandler
}

func NewQueryRoutes(queryHandler *handlers.QueryHandler) *QueryRoutes {
	return &QueryRoutes{
		queryHandler: queryHandler,
	}
}

func (r *QueryRoutes) RegisterRoutes(router *gin.Engine) {
	query := router.Group("/query")
	query.POST("/join", r.queryHandler.Join)
}
