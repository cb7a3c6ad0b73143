package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// receiptSuffixBytes is the number of random bytes appended to a receipt
// number. Three bytes hex-encode to six characters, which together with the
// millisecond timestamp keeps receipt numbers unique under concurrent
// requests; the balance_payments.receipt_no unique constraint backstops it.
const receiptSuffixBytes = 3

// NewReceiptNo generates a human-facing receipt number of the form
// BP-<epochMillis>-<hex suffix>.
func NewReceiptNo() (string, error) {
	b := make([]byte, receiptSuffixBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes for receipt number: %w", err)
	}
	return fmt.Sprintf("BP-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b)), nil
}
