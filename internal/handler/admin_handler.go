package handler

import (
	"medical-tourism-backend/internal/service"
	"medical-tourism-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	statsService *service.StatsService
}

func NewAdminHandler(statsService *service.StatsService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
	}
}

// GetStats returns the admin summary counts
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetAdminStats()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}
