package handlers

import (
	"ClinicDesk/logger"
	"ClinicDesk/middlewares"
	"ClinicDesk/models"
	"ClinicDesk/services"
	"ClinicDesk/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service *services.DoctorService
	log     *logger.Logger
}

func NewDoctorHandler(service *services.DoctorService, log *logger.Logger) *DoctorHandler {
	return &DoctorHandler{service: service, log: log}
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := bindJSON(c, h.log, &doctor); err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	if err := h.service.Create(c.Request.Context(), &doctor); err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "doctor": doctor}, http.StatusCreated)
}

// ListDoctors serves the public doctor directory with its speciality filter options.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	var filter services.DoctorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.WithContext(c.Request.Context()).WithError(err).Warn("Rejected doctor list query")
		middlewares.RespondError(c, h.log, utils.NewValidationError("Invalid query parameters"))
		return
	}
	doctors, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	specialities, err := h.service.Specialities(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"success":      true,
		"doctors":      doctors,
		"specialities": specialities,
	}, http.StatusOK)
}
