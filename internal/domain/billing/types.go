package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusAwaitingPayment     Status = "awaiting_payment"
	StatusPendingVerification Status = "pending_verification"
	StatusVerified            Status = "verified"
	StatusRejected            Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAwaitingPayment, StatusPendingVerification, StatusVerified, StatusRejected:
		return true
	default:
		return false
	}
}

// ParseStatus converts a stored status string, rejecting values outside the
// known set.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown transaction status %q", raw)
	}
	return s, nil
}

// Transaction is a checkout attempt owned by a single user.
type Transaction struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	PlanID        string          `json:"plan_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AcceptReference records the external payment reference and moves the
// transaction into manual verification.
func (t *Transaction) AcceptReference(ref string, now time.Time) {
	t.TransactionID = ref
	t.Status = StatusPendingVerification
	t.UpdatedAt = now
}
