package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/store"
)

// RespondJSON writes data as the response body.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondMessage writes {"message": msg}.
func RespondMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}

// RespondText writes a plain-text body, used for client errors.
func RespondText(c *gin.Context, code int, msg string) {
	c.String(code, msg)
}

// RespondError maps err to a status code and writes "<context>: <err>".
// store.ErrNotFound becomes 404 with notFound as body; everything else is a 500.
func RespondError(c *gin.Context, err error, context, notFound string) {
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusNotFound, notFound)
		return
	}
	ErrorLogger.WithFields(map[string]interface{}{
		"method":     c.Request.Method,
		"path":       c.FullPath(),
		"request_id": c.GetString(RequestIDKey),
	}).WithError(err).Error(context)
	c.String(http.StatusInternalServerError, context+": "+err.Error())
}

const RequestIDKey = "request_id"
