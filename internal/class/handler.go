package class

import (
	"net/http"
	"strconv"

	"clubdeportivo/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(NewRepository(db))}
}

// @Summary      List classes
// @Description  Returns every class with its activity, instructor and slot.
// @Tags         clases
// @Produce      json
// @Success      200 {array} class.ClassDetailResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /clases [get]
func (h *Handler) List(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// @Summary      Create a class
// @Description  The activity is resolved by name.
// @Tags         clases
// @Accept       json
// @Produce      json
// @Param        request body class.CreateClassRequest true "Class payload"
// @Success      201 {object} class.Class
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /clases [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	class, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, class)
}

// @Summary      List a student's classes
// @Tags         clases
// @Produce      json
// @Param        ci path int true "Student CI"
// @Success      200 {array} class.ClassDetailResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /clases_alumno/{ci} [get]
func (h *Handler) ListByStudent(c *gin.Context) {
	ci, err := strconv.ParseInt(c.Param("ci"), 10, 64)
	if err != nil {
		c.Error(api.BadRequest("ci inválida"))
		return
	}

	classes, err := h.service.ListByStudent(c.Request.Context(), ci)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, classes)
}
