package controllers

import (
	"BookShelf/internal/app_errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// errorResponse is the body shape for not-found, conflict and forbidden
// replies: a short summary plus the underlying message.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func writeError(c *gin.Context, status int, summary, detail string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: summary, Detail: detail})
}

func writeInternal(c *gin.Context) {
	writeError(c, http.StatusInternalServerError, "Something went wrong.", "")
}

const invalidIDBody = "Id must be 0 or greater."

// idParam pulls a numeric id out of the route. A negative or unparseable id
// is a malformed request, answered before any service or store access with
// the literal invalid-id body.
func idParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		_ = c.Error(app_errors.ErrInvalidID)
		c.String(http.StatusBadRequest, invalidIDBody)
		c.Abort()
		return 0, false
	}
	return id, true
}
