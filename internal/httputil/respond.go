// Package httputil holds the small HTTP helpers shared by every handler
// package: the JSON error shape and the server middleware.
package httputil

import "github.com/gin-gonic/gin"

// Error writes the API's error body. Every failure surface uses the same
// {msg} shape.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}
