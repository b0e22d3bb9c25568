package activity

import (
	"fmt"
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

// @Summary      List activities
// @Tags         actividades
// @Produce      json
// @Success      200 {array} activity.Activity
// @Failure      404 {object} api.ErrorResponse
// @Router       /actividades [get]
func (h *Handler) List(c *gin.Context) {
	activities, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// @Summary      Create an activity
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Param        request body activity.CreateActivityRequest true "Activity payload"
// @Success      201 {object} activity.Activity
// @Failure      400 {object} api.ErrorResponse
// @Router       /actividades [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	activity, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// @Summary      Update an activity
// @Description  Updates only the fields present in the payload.
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Param        id path int true "Activity ID"
// @Param        request body activity.UpdateActivityRequest true "Fields to update"
// @Success      200 {object} api.DetailResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /actividades/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(api.BadRequest("id inválido"))
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.DetailResponse{
		Detail: fmt.Sprintf("Actividad con id %d actualizada exitosamente", id),
	})
}

// @Summary      Delete an activity
// @Description  Deletes the activity and all classes that reference it.
// @Tags         actividades
// @Produce      json
// @Param        id path int true "Activity ID"
// @Success      200 {object} api.DetailResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /actividades/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(api.BadRequest("id inválido"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.DetailResponse{
		Detail: fmt.Sprintf("Actividad con id %d eliminada exitosamente", id),
	})
}

// @Summary      Activity popularity report
// @Description  Activities ranked by distinct enrolled students.
// @Tags         actividades
// @Produce      json
// @Success      200 {array} activity.PopularActivity
// @Failure      404 {object} api.ErrorResponse
// @Router       /actividades/populares [get]
func (h *Handler) Popular(c *gin.Context) {
	popular, err := h.service.Popular(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, popular)
}
