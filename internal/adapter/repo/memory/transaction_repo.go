package memory

import (
	"context"
	"time"

	"lexiq/internal/app/ports"
	"lexiq/internal/domain/billing"
)

type TransactionRepo struct {
	store *Store
}

func NewTransactionRepo(store *Store) TransactionRepo {
	return TransactionRepo{store: store}
}

func (r TransactionRepo) Create(ctx context.Context, tx billing.Transaction) error {
	return r.store.write(ctx, func() error {
		if _, ok := r.store.transactions[tx.ID]; ok {
			return ports.ErrConflict
		}
		r.store.transactions[tx.ID] = tx
		return nil
	})
}

func (r TransactionRepo) GetByID(ctx context.Context, id string) (billing.Transaction, error) {
	var (
		tx billing.Transaction
		ok bool
	)
	r.store.read(ctx, func() {
		tx, ok = r.store.transactions[id]
	})
	if !ok {
		return billing.Transaction{}, ports.ErrNotFound
	}
	return tx, nil
}

func (r TransactionRepo) UpdateReference(ctx context.Context, docID, ownerID, ref string, now time.Time) error {
	if ownerID == "" {
		return ports.ErrPermissionDenied
	}
	return r.store.write(ctx, func() error {
		tx, ok := r.store.transactions[docID]
		if !ok {
			return ports.ErrNotFound
		}
		if tx.OwnerID != ownerID {
			return ports.ErrPermissionDenied
		}
		tx.AcceptReference(ref, now)
		r.store.transactions[docID] = tx
		return nil
	})
}
