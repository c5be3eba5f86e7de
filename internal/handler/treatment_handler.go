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

type TreatmentHandler struct {
	treatmentService *service.TreatmentService
}

func NewTreatmentHandler(treatmentService *service.TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentService: treatmentService,
	}
}

// GetTreatments retrieves the active treatment catalog
func (h *TreatmentHandler) GetTreatments(c *gin.Context) {
	treatments, err := h.treatmentService.GetActiveTreatments()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"treatments": treatments,
		"count":      len(treatments),
	})
}

// GetTreatment retrieves a specific treatment by ID
func (h *TreatmentHandler) GetTreatment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid treatment ID")
		return
	}

	treatment, err := h.treatmentService.GetTreatmentByID(uint(id))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, treatment)
}

// CreateTreatment creates a new treatment (admin only)
func (h *TreatmentHandler) CreateTreatment(c *gin.Context) {
	var treatment models.Treatment
	if err := c.ShouldBindJSON(&treatment); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	treatment.ID = 0
	treatment.IsActive = true

	admin, _ := middleware.CurrentUser(c)

	if err := h.treatmentService.CreateTreatment(&treatment, admin.ID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, treatment)
}

// UpdateTreatment merges fields into an existing treatment (admin only)
func (h *TreatmentHandler) UpdateTreatment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid treatment ID")
		return
	}

	var fields models.Treatment
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	fields.ID = 0

	admin, _ := middleware.CurrentUser(c)

	treatment, err := h.treatmentService.UpdateTreatment(uint(id), &fields, admin.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   "Treatment updated successfully",
		"treatment": treatment,
	})
}

// DeleteTreatment deactivates a treatment (admin only)
func (h *TreatmentHandler) DeleteTreatment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid treatment ID")
		return
	}

	admin, _ := middleware.CurrentUser(c)

	if err := h.treatmentService.DeactivateTreatment(uint(id), admin.ID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Treatment deactivated successfully")
}
