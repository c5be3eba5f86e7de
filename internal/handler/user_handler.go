package handler

import (
	"net/http"

	"medical-tourism-backend/internal/middleware"
	"medical-tourism-backend/internal/service"
	"medical-tourism-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns the caller's own profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	profile, err := h.userService.GetProfile(user.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

// UpdateProfile applies an allow-listed merge to the caller's own profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var update service.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.userService.UpdateProfile(user.ID, update)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Profile updated successfully",
		"user":    profile,
	})
}
