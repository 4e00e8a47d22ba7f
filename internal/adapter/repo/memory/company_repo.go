package memory

import (
	"context"
	"sort"

	"lexiq/internal/app/ports"
	"lexiq/internal/domain/company"
)

type CompanyRepo struct {
	store *Store
}

func NewCompanyRepo(store *Store) CompanyRepo {
	return CompanyRepo{store: store}
}

func (r CompanyRepo) Save(ctx context.Context, rec company.Record) error {
	return r.store.write(ctx, func() error {
		key := companyKey(rec.OwnerID, rec.CIN)
		if _, ok := r.store.companyKeys[key]; ok {
			return ports.ErrConflict
		}
		r.store.companies[rec.ID] = rec
		r.store.companyKeys[key] = rec.ID
		return nil
	})
}

func (r CompanyRepo) ListByOwner(ctx context.Context, ownerID string) ([]company.Record, error) {
	out := []company.Record{}
	r.store.read(ctx, func() {
		for _, rec := range r.store.companies {
			if rec.OwnerID == ownerID {
				out = append(out, rec)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
