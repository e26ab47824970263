package repositories

import (
	"ClinicDesk/logger"
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var errDatabaseDown = errors.New("database is down")

// downPool is a connection pool whose every operation fails.
type downPool struct{}

func (downPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errDatabaseDown
}

func (downPool) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errDatabaseDown
}

func (downPool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errDatabaseDown
}

func (downPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (downPool) BeginTx(context.Context, *sql.TxOptions) (*sql.Tx, error) {
	return nil, errDatabaseDown
}

func TestFormatInvoiceNo(t *testing.T) {
	assert.Equal(t, "INV-000001", FormatInvoiceNo(1))
	assert.Equal(t, "INV-004242", FormatInvoiceNo(4242))
	assert.Equal(t, "INV-1234567", FormatInvoiceNo(1234567))
}

func TestInvoiceRepository_FailedInsertLeavesInvoiceUntouched(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: downPool{}}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	require.NoError(t, err)

	repo := &InvoiceRepository{db: db, log: logger.Discard().WithComponent("invoice_repository")}
	invoice := &models.Invoice{
		PatientID: "p-1",
		Date:      "2024-03-15",
		LineItems: []models.LineItem{
			{Position: 1, Description: "Consultation", Quantity: 1, UnitPrice: decimal.NewFromInt(500), LineTotal: decimal.NewFromInt(500)},
			{Position: 2, Description: "Lab Test", Quantity: 2, UnitPrice: decimal.NewFromInt(150), LineTotal: decimal.NewFromInt(300)},
		},
		Subtotal:   decimal.NewFromInt(800),
		BalanceDue: decimal.NewFromInt(800),
	}

	err = repo.insert(context.Background(), invoice)
	require.Error(t, err)
	assert.True(t, utils.IsPersistenceError(err))

	assert.Empty(t, invoice.ID)
	assert.Empty(t, invoice.InvoiceNo)
	require.Len(t, invoice.LineItems, 2)
	for i, item := range invoice.LineItems {
		assert.Empty(t, item.InvoiceID)
		assert.Equal(t, i+1, item.Position)
	}
}
