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

type HospitalTreatmentHandler struct {
	hospitalTreatmentService *service.HospitalTreatmentService
}

func NewHospitalTreatmentHandler(hospitalTreatmentService *service.HospitalTreatmentService) *HospitalTreatmentHandler {
	return &HospitalTreatmentHandler{
		hospitalTreatmentService: hospitalTreatmentService,
	}
}

// GetTreatmentsByHospital lists a hospital's active offerings
func (h *HospitalTreatmentHandler) GetTreatmentsByHospital(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("hospitalId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	offerings, err := h.hospitalTreatmentService.GetTreatmentsByHospital(uint(hospitalID))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, offerings)
}

// GetHospitalsByTreatment lists the hospitals actively offering a treatment
func (h *HospitalTreatmentHandler) GetHospitalsByTreatment(c *gin.Context) {
	treatmentID, err := strconv.ParseUint(c.Param("treatmentId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid treatment ID")
		return
	}

	offerings, err := h.hospitalTreatmentService.GetHospitalsByTreatment(uint(treatmentID))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, offerings)
}

// CreateHospitalTreatment binds a treatment to a hospital (admin only)
func (h *HospitalTreatmentHandler) CreateHospitalTreatment(c *gin.Context) {
	var ht models.HospitalTreatment
	if err := c.ShouldBindJSON(&ht); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	ht.ID = 0
	ht.IsActive = true

	admin, _ := middleware.CurrentUser(c)

	created, err := h.hospitalTreatmentService.CreateHospitalTreatment(&ht, admin.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

// UpdateHospitalTreatment merges fields into an existing offering (admin only)
func (h *HospitalTreatmentHandler) UpdateHospitalTreatment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital treatment ID")
		return
	}

	var fields models.HospitalTreatment
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	fields.ID = 0

	admin, _ := middleware.CurrentUser(c)

	updated, err := h.hospitalTreatmentService.UpdateHospitalTreatment(uint(id), &fields, admin.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":            "Hospital treatment updated successfully",
		"hospital_treatment": updated,
	})
}

// DeleteHospitalTreatment deactivates an offering (admin only)
func (h *HospitalTreatmentHandler) DeleteHospitalTreatment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital treatment ID")
		return
	}

	admin, _ := middleware.CurrentUser(c)

	if err := h.hospitalTreatmentService.DeactivateHospitalTreatment(uint(id), admin.ID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Hospital treatment deactivated successfully")
}
