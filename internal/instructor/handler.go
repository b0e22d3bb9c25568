package instructor

import (
	"net/http"

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

// @Summary      List instructors
// @Tags         instructores
// @Produce      json
// @Success      200 {array} instructor.Instructor
// @Failure      404 {object} api.ErrorResponse
// @Router       /instructores [get]
func (h *Handler) List(c *gin.Context) {
	instructors, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, instructors)
}

// @Summary      Create an instructor
// @Tags         instructores
// @Accept       json
// @Produce      json
// @Param        request body instructor.CreateInstructorRequest true "Instructor payload"
// @Success      201 {object} instructor.Instructor
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /instructores [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	instructor, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, instructor)
}
