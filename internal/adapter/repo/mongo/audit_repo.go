package mongorepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lexiq/internal/app/ports"
)

type auditDoc struct {
	Type       string    `bson:"type"`
	EntityID   string    `bson:"entity_id"`
	ActorID    string    `bson:"actor_id"`
	OccurredAt time.Time `bson:"occurred_at"`
	Payload    bson.M    `bson:"payload"`
}

type AuditRepo struct {
	coll *mongo.Collection
}

func NewAuditRepo(store *Store) AuditRepo {
	return AuditRepo{coll: store.db.Collection(CollectionAuditEvents)}
}

func (r AuditRepo) Append(ctx context.Context, events []ports.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}
	docs := make([]any, 0, len(events))
	for _, e := range events {
		payload := bson.M{}
		if len(e.Payload) > 0 {
			if err := bson.UnmarshalExtJSON(e.Payload, false, &payload); err != nil {
				return fmt.Errorf("audit payload for %s: %w", e.Type, err)
			}
		}
		docs = append(docs, auditDoc{
			Type:       e.Type,
			EntityID:   e.EntityID,
			ActorID:    e.ActorID,
			OccurredAt: e.OccurredAt,
			Payload:    payload,
		})
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r AuditRepo) ListByEntity(ctx context.Context, entityID string, limit int) ([]ports.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	cur, err := r.coll.Find(ctx,
		bson.M{"entity_id": entityID},
		options.Find().
			SetSort(bson.D{{Key: "occurred_at", Value: -1}, {Key: "_id", Value: -1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	var docs []auditDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]ports.AuditEvent, 0, len(docs))
	for _, d := range docs {
		payload, err := bson.MarshalExtJSON(d.Payload, false, false)
		if err != nil {
			return nil, fmt.Errorf("audit payload for %s: %w", d.Type, err)
		}
		out = append(out, ports.AuditEvent{
			Type:       d.Type,
			EntityID:   d.EntityID,
			ActorID:    d.ActorID,
			OccurredAt: d.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
