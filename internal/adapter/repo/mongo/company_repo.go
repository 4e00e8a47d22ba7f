package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lexiq/internal/app/ports"
	"lexiq/internal/domain/company"
)

type companyDoc struct {
	ID        string    `bson:"_id"`
	OwnerID   string    `bson:"owner_id"`
	CIN       string    `bson:"cin"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
}

type CompanyRepo struct {
	coll *mongo.Collection
}

func NewCompanyRepo(store *Store) CompanyRepo {
	return CompanyRepo{coll: store.db.Collection(CollectionCompanies)}
}

// Save relies on the unique (owner_id, cin) index for duplicate detection.
func (r CompanyRepo) Save(ctx context.Context, rec company.Record) error {
	_, err := r.coll.InsertOne(ctx, companyDoc{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		CIN:       rec.CIN,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return ports.ErrConflict
	}
	return err
}

func (r CompanyRepo) ListByOwner(ctx context.Context, ownerID string) ([]company.Record, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	var docs []companyDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]company.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, company.Record{
			ID:        d.ID,
			OwnerID:   d.OwnerID,
			CIN:       d.CIN,
			Name:      d.Name,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}
