package handlers

import (
	"ClinicDesk/logger"
	"ClinicDesk/middlewares"
	"ClinicDesk/models"
	"ClinicDesk/services"
	"ClinicDesk/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service *services.InvoiceService
	log     *logger.Logger
}

func NewInvoiceHandler(service *services.InvoiceService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{service: service, log: log}
}

// CreateInvoice answers with the assigned invoice number and the balance due as total.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var input utils.InvoiceInput
	if err := bindJSON(c, h.log, &input); err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	invoice, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"success":   true,
		"invoiceNo": invoice.InvoiceNo,
		"total":     invoice.BalanceDue,
		"bill":      invoice,
	}, http.StatusCreated)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.Get(c.Request.Context(), c.Param("invoiceNo"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "bill": invoice}, http.StatusOK)
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "bills": invoices}, http.StatusOK)
}

func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	invoice, pdf, err := h.service.RenderPDF(c.Request.Context(), c.Param("invoiceNo"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	writePDF(c, invoice, pdf, "attachment")
}

// SharedPDF serves an invoice PDF to anyone holding a valid share token.
func (h *InvoiceHandler) SharedPDF(c *gin.Context) {
	invoice, pdf, err := h.service.OpenShared(c.Request.Context(), c.Param("invoiceNo"), c.Query("token"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	writePDF(c, invoice, pdf, "inline")
}

func (h *InvoiceHandler) EmailInvoice(c *gin.Context) {
	invoice, err := h.service.Email(c.Request.Context(), c.Param("invoiceNo"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"success": true,
		"message": fmt.Sprintf("Invoice %s sent to %s", invoice.InvoiceNo, invoice.Email),
	}, http.StatusOK)
}

func (h *InvoiceHandler) ShareInvoice(c *gin.Context) {
	link, err := h.service.ShareLink(c.Request.Context(), c.Param("invoiceNo"))
	if err != nil {
		middlewares.RespondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"success": true, "share": link}, http.StatusOK)
}

func writePDF(c *gin.Context, invoice *models.Invoice, pdf []byte, disposition string) {
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, invoice.InvoiceNo+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
