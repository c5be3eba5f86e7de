package handler

import (
	"net/http"
	"strconv"

	"medical-tourism-backend/internal/middleware"
	"medical-tourism-backend/internal/service"
	"medical-tourism-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// GetDoctors retrieves the active doctor catalog
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.doctorService.GetActiveDoctors()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetDoctor retrieves a specific doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.GetDoctorByID(uint(id))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// CreateDoctor creates a new doctor (admin only)
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var input service.DoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	admin, _ := middleware.CurrentUser(c)

	doctor, err := h.doctorService.CreateDoctor(input, admin.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, doctor)
}

// UpdateDoctor applies an allow-listed merge to a doctor (admin only)
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var update service.DoctorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	admin, _ := middleware.CurrentUser(c)

	doctor, err := h.doctorService.UpdateDoctor(uint(id), update, admin.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Doctor updated successfully",
		"doctor":  doctor,
	})
}

// DeleteDoctor deactivates a doctor (admin only)
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	admin, _ := middleware.CurrentUser(c)

	if err := h.doctorService.DeactivateDoctor(uint(id), admin.ID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Doctor deactivated successfully")
}
