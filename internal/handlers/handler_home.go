package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// registerHomeRoutes registers the health check and root routes.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.OKMessage("SPBU backend is running", nil))
	})
}
