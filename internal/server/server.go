package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"dbbuilder/internal/config"
	"dbbuilder/internal/handlers"
	"dbbuilder/internal/middlewares"
	"dbbuilder/internal/repositories"
	"dbbuilder/internal/routes"
	"dbbuilder/internal/services"
)

// allowedOrigins is the fixed set of local development frontends permitted by
// CORS.
var allowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:3000",
}

// New wires repositories, services, and handlers around the given pool and
// returns the configured HTTP server.
func New(cfg *config.Config, pool *pgxpool.Pool) *http.Server {
	// Dependency injection
	schemaRepo := repositories.NewSchemaRepository(pool)
	statementRepo := repositories.NewStatementRepository(pool)
	tableService := services.NewTableService(schemaRepo, statementRepo)
	rowService := services.NewRowService(statementRepo)
	queryService := services.NewQueryService(statementRepo)
	tableHandler := handlers.NewTableHandler(tableService)
	rowHandler := handlers.NewRowHandler(rowService)
	queryHandler := handlers.NewQueryHandler(queryService)

	router := gin.Default()
	router.Use(middlewares.RequestID())
	// Methods and headers are named explicitly: with credentials allowed,
	// browsers treat a wildcard as the literal token "*", which would make
	// credentialed preflights for DELETE fail.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middlewares.RequestIDHeader},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(router, tableHandler, rowHandler, queryHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
