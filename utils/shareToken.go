package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

// Share token errors
var (
	ErrShareKeyLength     = errors.New("share token key must be 32 bytes long")
	ErrShareTokenExpired  = errors.New("share link has expired")
	ErrShareTokenMismatch = errors.New("share link does not match this invoice")
)

// ShareClaims is the payload of an invoice share link.
type ShareClaims struct {
	InvoiceNo string    `json:"invoiceNo"`
	Expiry    time.Time `json:"expiry"`
}

// ShareTokens issues and checks PASETO v2 local tokens that let a patient open
// one invoice without a staff token.
type ShareTokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewShareTokens creates a ShareTokens with a 32-byte symmetric key.
func NewShareTokens(key []byte, ttl time.Duration) (*ShareTokens, error) {
	if len(key) != 32 {
		return nil, ErrShareKeyLength
	}
	return &ShareTokens{key: key, ttl: ttl, now: time.Now}, nil
}

// Generate returns a token for invoiceNo and its expiry.
func (s *ShareTokens) Generate(invoiceNo string) (string, time.Time, error) {
	claims := ShareClaims{
		InvoiceNo: invoiceNo,
		Expiry:    s.now().Add(s.ttl).UTC(),
	}
	token, err := paseto.NewV2().Encrypt(s.key, claims, nil)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate share token: %w", err)
	}
	return token, claims.Expiry, nil
}

// Validate checks that token is intact, unexpired and issued for invoiceNo.
func (s *ShareTokens) Validate(token, invoiceNo string) error {
	var claims ShareClaims
	if err := paseto.NewV2().Decrypt(token, s.key, &claims, nil); err != nil {
		return fmt.Errorf("failed to decrypt share token: %w", err)
	}
	if s.now().After(claims.Expiry) {
		return ErrShareTokenExpired
	}
	if claims.InvoiceNo != invoiceNo {
		return ErrShareTokenMismatch
	}
	return nil
}
