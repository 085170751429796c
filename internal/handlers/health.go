package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// APIStatus is the listing service's GET /api banner.
func APIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API is running...",
		"version": apiVersion,
		"status":  "healthy",
	})
}

// ServiceBanner returns a handler for GET / naming the service.
func ServiceBanner(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": name + " is running",
			"version": apiVersion,
		})
	}
}
