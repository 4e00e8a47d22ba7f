package gormrepo

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lexiq/internal/adapter/repo/gorm/model"
	"lexiq/internal/app/ports"
)

type AuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) AuditRepo {
	return AuditRepo{db: db}
}

func (r AuditRepo) Append(ctx context.Context, events []ports.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.AuditEvent, 0, len(events))
	for _, e := range events {
		payload := []byte(e.Payload)
		if len(payload) == 0 || !json.Valid(payload) {
			payload = []byte("{}")
		}
		rows = append(rows, model.AuditEvent{
			Type:       e.Type,
			EntityID:   e.EntityID,
			ActorID:    e.ActorID,
			OccurredAt: e.OccurredAt,
			Payload:    payload,
		})
	}
	return conn(ctx, r.db).Create(&rows).Error
}

func (r AuditRepo) ListByEntity(ctx context.Context, entityID string, limit int) ([]ports.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows := []model.AuditEvent{}
	err := conn(ctx, r.db).
		Where(&model.AuditEvent{EntityID: entityID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		}).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ports.AuditEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.AuditEvent{
			Type:       row.Type,
			EntityID:   row.EntityID,
			ActorID:    row.ActorID,
			OccurredAt: row.OccurredAt,
			Payload:    json.RawMessage(row.Payload),
		})
	}
	return out, nil
}
