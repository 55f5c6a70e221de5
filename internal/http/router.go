package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-filter/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	tokens *service.TokenService,
	catalogH *CatalogHandler,
	moodH *MoodHandler,
	prefH *PreferenceHandler,
) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	RegisterValidators()
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/catalog", catalogH.List)

	mood := r.Group("/mood")
	mood.GET("/questions", moodH.Questions)
	authed := mood.Group("", JWTAuthMiddleware(tokens))
	authed.POST("/score", moodH.Score)
	authed.GET("/history", moodH.History)

	prefs := r.Group("/preferences", JWTAuthMiddleware(tokens))
	prefs.GET("", prefH.Get)
	prefs.PUT("", prefH.UpdateTiers)
	prefs.POST("/toggle", prefH.Toggle)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
