// File: handlers/health.go
package handlers

import (
	"net/http"

	"tripwise/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
