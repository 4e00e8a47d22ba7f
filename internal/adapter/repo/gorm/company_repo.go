package gormrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lexiq/internal/adapter/repo/gorm/model"
	"lexiq/internal/app/ports"
	"lexiq/internal/domain/company"
)

type CompanyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepo {
	return CompanyRepo{db: db}
}

func (r CompanyRepo) Save(ctx context.Context, rec company.Record) error {
	m := model.Company{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		Cin:       rec.CIN,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
	}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r CompanyRepo) ListByOwner(ctx context.Context, ownerID string) ([]company.Record, error) {
	rows := []model.Company{}
	err := conn(ctx, r.db).
		Where(&model.Company{OwnerID: ownerID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "created_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]company.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, company.Record{
			ID:        row.ID,
			OwnerID:   row.OwnerID,
			CIN:       row.Cin,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
