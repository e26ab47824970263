package controllers

import (
	"ClinicDesk/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the staff routes. The group is expected to carry
// the bearer token middleware.
func SetupAdminRoutes(admin *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, patientHandler *handlers.PatientHandler, appointmentHandler *handlers.AppointmentHandler, doctorHandler *handlers.DoctorHandler) {
	bills := admin.Group("/bills")
	bills.POST("", invoiceHandler.CreateInvoice)
	bills.GET("", invoiceHandler.ListInvoices)
	bills.GET("/:invoiceNo", invoiceHandler.GetInvoice)
	bills.GET("/:invoiceNo/pdf", invoiceHandler.DownloadPDF)
	bills.POST("/:invoiceNo/email", invoiceHandler.EmailInvoice)
	bills.GET("/:invoiceNo/share", invoiceHandler.ShareInvoice)

	patients := admin.Group("/patients")
	patients.POST("", patientHandler.CreatePatient)
	patients.GET("", patientHandler.ListPatients)
	patients.GET("/uhid/:uhid", patientHandler.GetPatientByUHID)
	patients.GET("/:id", patientHandler.GetPatient)
	patients.PUT("/:id", patientHandler.UpdatePatient)

	appointments := admin.Group("/appointments")
	appointments.GET("", appointmentHandler.ListAppointments)
	appointments.GET("/:id", appointmentHandler.GetAppointment)

	admin.POST("/doctors", doctorHandler.CreateDoctor)
}
