package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "API Working")
}

// healthHandler reports that the process is serving requests.
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
}

// SetupRootRoute registers the root and health routes.
func SetupRootRoute(router gin.IRoutes) {
	router.GET("/", rootHandler)
	router.GET("/health", healthHandler)
}
