package controllers

import (
	"ClinicDesk/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the unauthenticated routes used by the patient-facing site.
func SetupPublicRoutes(router gin.IRoutes, appointmentHandler *handlers.AppointmentHandler, doctorHandler *handlers.DoctorHandler, invoiceHandler *handlers.InvoiceHandler) {
	router.POST("/api/appointment-booking/book", appointmentHandler.BookAppointment)
	router.GET("/api/doctor/list", doctorHandler.ListDoctors)
	router.GET("/api/public/invoices/:invoiceNo/pdf", invoiceHandler.SharedPDF)
}
