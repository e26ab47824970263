package handlers

import (
	"ClinicDesk/logger"
	"ClinicDesk/middlewares"
	"ClinicDesk/services"
	"ClinicDesk/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

const bookingFailedMessage = "Unable to book the appointment right now, please try again."

type AppointmentHandler struct {
	service *services.AppointmentService
	log     *logger.Logger
}

func NewAppointmentHandler(service *services.AppointmentService, log *logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{service: service, log: log}
}

// BookAppointment is the public booking endpoint. An empty body is treated as
// a booking with every field missing. Every failure, storage included, is
// answered with 400 {"success": false, "message": ...} as the booking form expects.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var input utils.BookingInput
	if err := bindJSON(c, h.log, &input); err != nil && !isEmptyBody(err) {
		middlewares.RespondError(c, h.log, err)
		return
	}
	appointment, err := h.service.Book(c.Request.Context(), input)
	if err != nil {
		if !utils.IsValidationError(err) {
			h.log.WithContext(c.Request.Context()).WithError(err).Error("Failed to book appointment")
			err = utils.NewValidationError(bookingFailedMessage)
		}
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "appointment": appointment}, http.StatusCreated)
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appointment, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "appointment": appointment}, http.StatusOK)
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.List(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "appointments": appointments}, http.StatusOK)
}
