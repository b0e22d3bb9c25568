package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubdeportivo/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware())
	router.GET("/fail", func(c *gin.Context) {
		c.Error(err)
	})
	return router
}

func doRequest(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/fail", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestErrorMiddleware_APIError(t *testing.T) {
	w := doRequest(newErrorRouter(api.NotFound("Turno no encontrado")))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body api.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Turno no encontrado", body.Error)
}

func TestErrorMiddleware_NoRows(t *testing.T) {
	w := doRequest(newErrorRouter(sql.ErrNoRows))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorMiddleware_UniqueViolation(t *testing.T) {
	w := doRequest(newErrorRouter(&pq.Error{Code: "23505"}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestErrorMiddleware_Unknown(t *testing.T) {
	w := doRequest(newErrorRouter(errors.New("boom")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body api.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "boom", body.Error)
}

func TestErrorMiddleware_NoError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware())
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest("GET", "/ok", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
