package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lexiq/internal/adapter/repo/gorm/model"
	"lexiq/internal/app/ports"
	"lexiq/internal/domain/billing"
)

type TransactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepo {
	return TransactionRepo{db: db}
}

func (r TransactionRepo) Create(ctx context.Context, tx billing.Transaction) error {
	m := model.Transaction{
		ID:            tx.ID,
		OwnerID:       tx.OwnerID,
		PlanID:        tx.PlanID,
		Amount:        tx.Amount.StringFixed(2),
		Currency:      tx.Currency,
		TransactionID: tx.TransactionID,
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r TransactionRepo) GetByID(ctx context.Context, id string) (billing.Transaction, error) {
	var m model.Transaction
	if err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return billing.Transaction{}, ports.ErrNotFound
		}
		return billing.Transaction{}, err
	}
	return toTransaction(m)
}

func (r TransactionRepo) UpdateReference(ctx context.Context, docID, ownerID, ref string, now time.Time) error {
	if ownerID == "" {
		return ports.ErrPermissionDenied
	}
	db := conn(ctx, r.db)
	var m model.Transaction
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "owner_id").
		Where("id = ?", docID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ErrNotFound
		}
		return err
	}
	if m.OwnerID != ownerID {
		return ports.ErrPermissionDenied
	}
	return db.Model(&model.Transaction{}).
		Where("id = ? AND owner_id = ?", docID, ownerID).
		Updates(map[string]any{
			"transaction_id": ref,
			"status":         string(billing.StatusPendingVerification),
			"updated_at":     now,
		}).Error
}

func toTransaction(m model.Transaction) (billing.Transaction, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return billing.Transaction{}, fmt.Errorf("transaction %s amount: %w", m.ID, err)
	}
	status, err := billing.ParseStatus(m.Status)
	if err != nil {
		return billing.Transaction{}, fmt.Errorf("transaction %s: %w", m.ID, err)
	}
	return billing.Transaction{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		PlanID:        m.PlanID,
		Amount:        amount,
		Currency:      m.Currency,
		TransactionID: m.TransactionID,
		Status:        status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}
