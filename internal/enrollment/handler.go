package enrollment

import (
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

// @Summary      Enroll a student in a class
// @Tags         inscripciones
// @Accept       json
// @Produce      json
// @Param        request body enrollment.EnrollRequest true "Enrollment payload"
// @Success      201 {object} enrollment.Enrollment
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /inscribir_alumno [post]
func (h *Handler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	enrollment, err := h.service.Enroll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	metrics.RecordEnrollment()
	c.JSON(http.StatusCreated, enrollment)
}

// @Summary      Remove a student from a class
// @Tags         inscripciones
// @Produce      json
// @Param        id_clase path int true "Class ID"
// @Param        ci path int true "Student CI"
// @Success      200 {object} api.DetailResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /desinscribir_alumno/{id_clase}/{ci} [delete]
func (h *Handler) Unenroll(c *gin.Context) {
	idClase, err := strconv.Atoi(c.Param("id_clase"))
	if err != nil {
		c.Error(api.BadRequest("id_clase inválido"))
		return
	}
	ci, err := strconv.ParseInt(c.Param("ci"), 10, 64)
	if err != nil {
		c.Error(api.BadRequest("ci inválida"))
		return
	}

	if err := h.service.Unenroll(c.Request.Context(), idClase, ci); err != nil {
		c.Error(err)
		return
	}

	metrics.RecordEnrollmentCancellation()
	c.JSON(http.StatusOK, api.DetailResponse{Detail: "Alumno desinscripto exitosamente"})
}
