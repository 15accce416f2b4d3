package handlers

import (
	"net/http"

	"food_monitor/internal/foods"

	"github.com/gin-gonic/gin"
)

// @Summary      Food profiles
// @Tags         foods
// @Produce      json
// @Success      200  {array}  models.FoodProfile
// @Router       /api/foods [get]
func (h *Handler) listFoods(c *gin.Context) {
	c.JSON(http.StatusOK, foods.All())
}
