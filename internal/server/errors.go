package server

import (
	"database/sql"
	"errors"
	"net/http"

	"clubdeportivo/internal/api"
	"clubdeportivo/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// ErrorMiddleware translates errors attached with c.Error into JSON
// responses. Handlers only attach the error and return; the mapping to
// a status code lives here.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		status, message := translate(last.Err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", last.Err,
			)
		}

		c.JSON(status, api.ErrorResponse{Error: message})
	}
}

func translate(err error) (int, string) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message
	}

	if errors.Is(err, sql.ErrNoRows) {
		return http.StatusNotFound, "Recurso no encontrado"
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return http.StatusConflict, "El recurso ya existe"
	}

	return http.StatusInternalServerError, err.Error()
}
