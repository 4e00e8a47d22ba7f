package memory

import (
	"context"

	"lexiq/internal/app/ports"
)

type AuditRepo struct {
	store *Store
}

func NewAuditRepo(store *Store) AuditRepo {
	return AuditRepo{store: store}
}

func (r AuditRepo) Append(ctx context.Context, events []ports.AuditEvent) error {
	return r.store.write(ctx, func() error {
		r.store.audit = append(r.store.audit, events...)
		return nil
	})
}

// ListByEntity returns the latest events for entityID, newest first.
func (r AuditRepo) ListByEntity(ctx context.Context, entityID string, limit int) ([]ports.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	out := []ports.AuditEvent{}
	r.store.read(ctx, func() {
		for i := len(r.store.audit) - 1; i >= 0 && len(out) < limit; i-- {
			if r.store.audit[i].EntityID == entityID {
				out = append(out, r.store.audit[i])
			}
		}
	})
	return out, nil
}
