package ports

import (
	"context"
	"encoding/json"
	"time"

	"lexiq/internal/domain/billing"
	"lexiq/internal/domain/company"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx billing.Transaction) error
	GetByID(ctx context.Context, id string) (billing.Transaction, error)
	// UpdateReference sets the external reference on the transaction with the
	// given document id. It returns ErrPermissionDenied when ownerID is empty or
	// does not own the record.
	UpdateReference(ctx context.Context, docID, ownerID, ref string, now time.Time) error
}

type CompanyRepository interface {
	Save(ctx context.Context, rec company.Record) error
	ListByOwner(ctx context.Context, ownerID string) ([]company.Record, error)
}

type AuditEvent struct {
	Type       string
	EntityID   string
	ActorID    string
	OccurredAt time.Time
	Payload    json.RawMessage
}

type AuditRepository interface {
	Append(ctx context.Context, events []AuditEvent) error
	ListByEntity(ctx context.Context, entityID string, limit int) ([]AuditEvent, error)
}
