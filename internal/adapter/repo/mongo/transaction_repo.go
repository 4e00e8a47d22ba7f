package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lexiq/internal/app/ports"
	"lexiq/internal/domain/billing"
)

type transactionDoc struct {
	ID            string    `bson:"_id"`
	OwnerID       string    `bson:"owner_id"`
	PlanID        string    `bson:"plan_id"`
	Amount        string    `bson:"amount"`
	Currency      string    `bson:"currency"`
	TransactionID string    `bson:"transaction_id"`
	Status        string    `bson:"status"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type TransactionRepo struct {
	coll *mongo.Collection
}

func NewTransactionRepo(store *Store) TransactionRepo {
	return TransactionRepo{coll: store.db.Collection(CollectionTransactions)}
}

func (r TransactionRepo) Create(ctx context.Context, tx billing.Transaction) error {
	doc := transactionDoc{
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
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r TransactionRepo) GetByID(ctx context.Context, id string) (billing.Transaction, error) {
	var doc transactionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return billing.Transaction{}, ports.ErrNotFound
		}
		return billing.Transaction{}, err
	}
	amount, err := decimal.NewFromString(doc.Amount)
	if err != nil {
		return billing.Transaction{}, fmt.Errorf("transaction %s amount: %w", doc.ID, err)
	}
	status, err := billing.ParseStatus(doc.Status)
	if err != nil {
		return billing.Transaction{}, fmt.Errorf("transaction %s: %w", doc.ID, err)
	}
	return billing.Transaction{
		ID:            doc.ID,
		OwnerID:       doc.OwnerID,
		PlanID:        doc.PlanID,
		Amount:        amount,
		Currency:      doc.Currency,
		TransactionID: doc.TransactionID,
		Status:        status,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}

// UpdateReference applies a partial $set scoped to the owner.
func (r TransactionRepo) UpdateReference(ctx context.Context, docID, ownerID, ref string, now time.Time) error {
	if ownerID == "" {
		return ports.ErrPermissionDenied
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": docID, "owner_id": ownerID},
		bson.M{"$set": bson.M{
			"transaction_id": ref,
			"status":         string(billing.StatusPendingVerification),
			"updated_at":     now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": docID}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return ports.ErrPermissionDenied
}
