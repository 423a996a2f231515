package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment. A non-numeric id is a malformed
// request, not a missing record.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}
