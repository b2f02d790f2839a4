package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Ingestor is the pipeline capability the HTTP layer depends on.
type Ingestor interface {
	IngestBalanceSheets(ctx context.Context, symbol string) (int, error)
	IngestDailyPrices(ctx context.Context, symbol, outputSize string) (int, error)
	IngestIncomeStatements(ctx context.Context, symbol string) (int, error)
}

// Pinger reports persistence health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(ingestor Ingestor, db Pinger, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(requestLogger(logger))

	api := router.Group("/api")
	{
		api.POST("/ingest/:symbol", func(c *gin.Context) {
			count, err := ingestor.IngestBalanceSheets(c.Request.Context(), c.Param("symbol"))
			respond(c, logger, count, err)
		})

		api.POST("/ingest/daily/:symbol", func(c *gin.Context) {
			outputSize := c.Query("outputsize")
			count, err := ingestor.IngestDailyPrices(c.Request.Context(), c.Param("symbol"), outputSize)
			respond(c, logger, count, err)
		})

		api.POST("/ingest/income/:symbol", func(c *gin.Context) {
			count, err := ingestor.IngestIncomeStatements(c.Request.Context(), c.Param("symbol"))
			respond(c, logger, count, err)
		})
	}

	router.GET("/health", healthHandler(db))

	return router
}

// respond maps a pipeline outcome onto the wire: count on success, the
// propagated error's text on failure.
func respond(c *gin.Context, logger *slog.Logger, count int, err error) {
	if err != nil {
		logger.Error("ingestion failed",
			"request_id", c.GetString(requestIDKey),
			"path", c.FullPath(),
			"symbol", c.Param("symbol"),
			"error", err,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": count})
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		health := gin.H{
			"status":     "healthy",
			"components": gin.H{"postgres": "connected"},
		}
		status := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			health["status"] = "unhealthy"
			health["components"] = gin.H{"postgres": gin.H{
				"status": "disconnected",
				"error":  err.Error(),
			}}
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, health)
	}
}

const requestIDKey = "request_id"

// requestLogger stamps each request with an ID and logs its outcome.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(requestIDKey, requestID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
