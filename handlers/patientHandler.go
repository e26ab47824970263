package handlers

import (
	"ClinicDesk/logger"
	"ClinicDesk/middlewares"
	"ClinicDesk/models"
	"ClinicDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
	log     *logger.Logger
}

func NewPatientHandler(service *services.PatientService, log *logger.Logger) *PatientHandler {
	return &PatientHandler{service: service, log: log}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := bindJSON(c, h.log, &patient); err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	if err := h.service.Create(c.Request.Context(), &patient); err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "patient": patient}, http.StatusCreated)
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	patient, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "patient": patient}, http.StatusOK)
}

func (h *PatientHandler) GetPatientByUHID(c *gin.Context) {
	patient, err := h.service.GetByUHID(c.Request.Context(), c.Param("uhid"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "patient": patient}, http.StatusOK)
}

func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "patients": patients}, http.StatusOK)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var patient models.Patient
	if err := bindJSON(c, h.log, &patient); err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &patient)
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "patient": updated}, http.StatusOK)
}
