package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "pdfservice/internal/config"
	h "pdfservice/internal/http/handlers"
	"pdfservice/internal/http/middleware"
)

// NewRouter wires middleware and routes around the shared handler deps.
func NewRouter(env intconfig.Env, deps h.Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	_ = r.SetTrustedProxies(nil)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	r.GET("/", h.Root)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/generate-pdf", h.GenerateDocument(deps))
		api.POST("/generate-invoice", h.GenerateInvoice(deps))
	}

	return r
}
