package httputil

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// IDParam parses a numeric path parameter. On failure it writes the 400
// response and returns false; callers just return.
func IDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return id, true
}
