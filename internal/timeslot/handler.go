package timeslot

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

// @Summary      List time slots
// @Tags         turnos
// @Produce      json
// @Success      200 {array} timeslot.TimeSlotResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /turnos [get]
func (h *Handler) List(c *gin.Context) {
	slots, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// @Summary      Create a time slot
// @Tags         turnos
// @Accept       json
// @Produce      json
// @Param        request body timeslot.CreateTimeSlotRequest true "Slot payload, times as HH:MM:SS"
// @Success      201 {object} timeslot.TimeSlotResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /turnos [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.BadRequest(err.Error()))
		return
	}

	slot, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// @Summary      Delete a time slot
// @Tags         turnos
// @Produce      json
// @Param        id path int true "Slot ID"
// @Success      200 {object} api.DetailResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /turnos/{id} [delete]
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
		Detail: fmt.Sprintf("Turno con id %d eliminado exitosamente", id),
	})
}

// @Summary      Slot usage report
// @Description  Slots labeled "HH:MM - HH:MM" ranked by scheduled classes.
// @Tags         turnos
// @Produce      json
// @Success      200 {array} timeslot.SlotUsageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /turnos/clases [get]
func (h *Handler) Usage(c *gin.Context) {
	usage, err := h.service.Usage(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, usage)
}
