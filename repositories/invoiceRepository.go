package repositories

import (
	"ClinicDesk/cache"
	"ClinicDesk/database"
	"ClinicDesk/logger"
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const invoicesCacheKey = "invoices_cache"

// FormatInvoiceNo renders a sequence value as an invoice number, e.g. INV-000042.
func FormatInvoiceNo(seq int64) string {
	return fmt.Sprintf("INV-%06d", seq)
}

type InvoiceRepository struct {
	db     *gorm.DB
	cache  *cache.Cache
	locker *database.Locker
	log    *logrus.Entry
}

func NewInvoiceRepository(db *gorm.DB, cache *cache.Cache, locker *database.Locker, log *logger.Logger) *InvoiceRepository {
	return &InvoiceRepository{db: db, cache: cache, locker: locker, log: log.WithComponent("invoice_repository")}
}

// Create stores the invoice and its line items in one transaction and assigns
// the invoice number from the database sequence. Any number set by the caller
// is overwritten.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	lockKey := fmt.Sprintf("invoice_lock:%s", invoice.PatientID)
	release, err := r.locker.Acquire(ctx, lockKey)
	if err != nil {
		return utils.NewPersistenceError(err, "failed to lock patient billing")
	}
	defer releaseLock(ctx, r.log, lockKey, release)

	if err := r.insert(ctx, invoice); err != nil {
		return err
	}

	logger.ForRequest(r.log, ctx).WithFields(logrus.Fields{
		"invoice_no": invoice.InvoiceNo,
		"patient_id": invoice.PatientID,
	}).Info("Invoice created")

	invalidate(ctx, r.cache, r.log, r.getInvoiceCacheKey(invoice.InvoiceNo), invoicesCacheKey)
	return nil
}

// GetByInvoiceNo returns the invoice with its line items in billed order.
func (r *InvoiceRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := readThrough(ctx, r.cache, r.log, r.getInvoiceCacheKey(invoiceNo), &invoice, func(ctx context.Context) error {
		err := r.db.WithContext(ctx).
			Preload("LineItems", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			First(&invoice, "invoice_no = ?", invoiceNo).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("invoice", invoiceNo)
		}
		if err != nil {
			return utils.NewPersistenceError(err, "failed to get invoice")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetAll returns every invoice, newest first.
func (r *InvoiceRepository) GetAll(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := readThrough(ctx, r.cache, r.log, invoicesCacheKey, &invoices, func(ctx context.Context) error {
		err := r.db.WithContext(ctx).
			Preload("LineItems", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Order("created_at DESC").
			Find(&invoices).Error
		if err != nil {
			return utils.NewPersistenceError(err, "failed to get all invoices")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// insert writes the invoice and its line items in one transaction. The id and
// invoice number are only set on the invoice once the insert has succeeded;
// on failure the invoice is left as it was passed in.
func (r *InvoiceRepository) insert(ctx context.Context, invoice *models.Invoice) error {
	before := *invoice
	items := append([]models.LineItem(nil), invoice.LineItems...)

	id := invoice.ID
	if id == "" {
		id = uuid.New().String()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq int64
		if err := tx.Raw("SELECT nextval('" + database.InvoiceNoSequence + "')").Scan(&seq).Error; err != nil {
			return fmt.Errorf("failed to obtain next invoice number: %w", err)
		}

		invoice.ID = id
		invoice.InvoiceNo = FormatInvoiceNo(seq)
		for i := range invoice.LineItems {
			invoice.LineItems[i].InvoiceID = id
		}
		return tx.Omit("Patient").Create(invoice).Error
	})
	if err != nil {
		*invoice = before
		copy(invoice.LineItems, items)
		return utils.NewPersistenceError(err, "failed to create invoice")
	}
	return nil
}

func (r *InvoiceRepository) getInvoiceCacheKey(invoiceNo string) string {
	return fmt.Sprintf("invoice_cache:%s", invoiceNo)
}
