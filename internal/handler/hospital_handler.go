package handler

import (
	"net/http"
	"strconv"

	"medical-tourism-backend/internal/middleware"
	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/service"
	"medical-tourism-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// GetHospitals retrieves the active hospital catalog
func (h *HospitalHandler) GetHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.GetActiveHospitals()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.GetHospitalByID(uint(id))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// CreateHospital creates a new hospital (admin only)
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var hospital models.Hospital
	if err := c.ShouldBindJSON(&hospital); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	hospital.ID = 0
	hospital.IsActive = true

	admin, _ := middleware.CurrentUser(c)

	if err := h.hospitalService.CreateHospital(&hospital, admin.ID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, hospital)
}

// UpdateHospital merges fields into an existing hospital (admin only)
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var fields models.Hospital
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	fields.ID = 0

	admin, _ := middleware.CurrentUser(c)

	hospital, err := h.hospitalService.UpdateHospital(uint(id), &fields, admin.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Hospital updated successfully",
		"hospital": hospital,
	})
}

// DeleteHospital deactivates a hospital (admin only)
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	admin, _ := middleware.CurrentUser(c)

	if err := h.hospitalService.DeactivateHospital(uint(id), admin.ID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Hospital deactivated successfully")
}
