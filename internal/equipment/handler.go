package equipment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(NewRepository(db))}
}

// @Summary      List equipment
// @Tags         equipamiento
// @Produce      json
// @Success      200 {array} equipment.Equipment
// @Failure      404 {object} api.ErrorResponse
// @Router       /equipamiento [get]
func (h *Handler) List(c *gin.Context) {
	equipment, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}
