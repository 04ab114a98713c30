// Package health exposes the liveness endpoint.
package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler reports that the process is up. It does not probe the store:
// the server stays alive even when Supabase is unreachable.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
