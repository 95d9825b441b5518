package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Root reports service information.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "travel document pdf service",
		"status":  "running",
		"endpoints": gin.H{
			"generatePdf":     "POST /api/generate-pdf",
			"generateInvoice": "POST /api/generate-invoice",
			"health":          "GET /api/health",
		},
	})
}

// Health is the liveness endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
