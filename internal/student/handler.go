package student

import (
	"fmt"
	"net/http"
	"strconv"

	"clubdeportivo/internal/api"
	"clubdeportivo/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(NewRepository(db))}
}

func parseCI(c *gin.Context) (int64, bool) {
	ci, err := strconv.ParseInt(c.Param("ci"), 10, 64)
	if err != nil {
		c.Error(api.BadRequest("ci inválida"))
		return 0, false
	}
	return ci, true
}

// @Summary      List students
// @Tags         alumnos
// @Produce      json
// @Success      200 {array} student.Student
// @Failure      404 {object} api.ErrorResponse
// @Router       /alumnos [get]
func (h *Handler) List(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// @Summary      Create a student
// @Tags         alumnos
// @Accept       json
// @Produce      json
// @Param        request body student.CreateStudentRequest true "Student payload"
// @Success      201 {object} student.Student
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /alumnos [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	student, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

// @Summary      Update a student
// @Description  Updates only the fields present and non-empty in the payload.
// @Tags         alumnos
// @Accept       json
// @Produce      json
// @Param        ci path int true "Student CI"
// @Param        request body student.UpdateStudentRequest true "Fields to update"
// @Success      200 {object} api.DetailResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /alumnos/{ci} [put]
func (h *Handler) Update(c *gin.Context) {
	ci, ok := parseCI(c)
	if !ok {
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	if err := h.service.Update(c.Request.Context(), ci, req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.DetailResponse{
		Detail: fmt.Sprintf("Alumno con ci %d actualizado exitosamente", ci),
	})
}

// @Summary      Delete a student
// @Tags         alumnos
// @Produce      json
// @Param        ci path int true "Student CI"
// @Success      200 {object} api.DetailResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /alumnos/{ci} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ci, ok := parseCI(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), ci); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.DetailResponse{
		Detail: fmt.Sprintf("Alumno con ci %d eliminado exitosamente", ci),
	})
}

// @Summary      Register a student
// @Description  Creates the student and its login credential together.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body student.CreateStudentRequest true "Registration payload"
// @Success      201 {object} student.Student
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	student, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	metrics.RecordRegistration()
	c.JSON(http.StatusCreated, student)
}

// @Summary      Login
// @Description  Verifies credentials; no session or token is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body student.LoginRequest true "Credentials"
// @Success      200 {object} api.DetailResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	if err := h.service.Login(c.Request.Context(), req); err != nil {
		metrics.RecordLoginAttempt("failure")
		c.Error(err)
		return
	}

	metrics.RecordLoginAttempt("success")
	c.JSON(http.StatusOK, api.DetailResponse{Detail: "Login exitoso"})
}

// @Summary      Delete a credential
// @Tags         auth
// @Produce      json
// @Param        ci path int true "Student CI"
// @Success      200 {object} api.DetailResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /login/{ci} [delete]
func (h *Handler) DeleteCredential(c *gin.Context) {
	ci, ok := parseCI(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCredential(c.Request.Context(), ci); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.DetailResponse{
		Detail: fmt.Sprintf("Credencial del alumno %d eliminada exitosamente", ci),
	})
}
