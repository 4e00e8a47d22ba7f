package mongorepo

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lexiq/internal/app/ports"
	"lexiq/internal/domain/billing"
	"lexiq/internal/domain/company"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("LEXIQ_MONGO_URI")
	if uri == "" {
		t.Skip("LEXIQ_MONGO_URI is required for integration test")
	}
	ctx := context.Background()
	store, err := Connect(ctx, uri, "lexiq_it_"+uuid.NewString()[:8], 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, store.EnsureIndexes(ctx))
	t.Cleanup(func() {
		_ = store.Database().Drop(context.Background())
		_ = store.Close(context.Background())
	})
	return store
}

func TestConnect_RequiresDatabaseName(t *testing.T) {
	_, err := Connect(context.Background(), "mongodb://localhost:27017", " ", time.Second)
	require.ErrorIs(t, err, ErrEmptyDatabaseName)
}

func TestTransactionRepo_UpdateReferenceOwnership(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	repo := NewTransactionRepo(store)
	now := time.Now().UTC().Truncate(time.Millisecond)
	tx := billing.NewTransaction(uuid.NewString(), "owner-1", billing.Plans["professional"], now)

	require.NoError(t, repo.Create(ctx, tx))
	require.ErrorIs(t, repo.Create(ctx, tx), ports.ErrConflict)
	require.ErrorIs(t, repo.UpdateReference(ctx, tx.ID, "", "UTR1", now), ports.ErrPermissionDenied)
	require.ErrorIs(t, repo.UpdateReference(ctx, tx.ID, "owner-2", "UTR1", now), ports.ErrPermissionDenied)
	require.ErrorIs(t, repo.UpdateReference(ctx, "missing", "owner-1", "UTR1", now), ports.ErrNotFound)
	require.NoError(t, repo.UpdateReference(ctx, tx.ID, "owner-1", "UTR1", now.Add(time.Minute)))

	got, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	require.Equal(t, "UTR1", got.TransactionID)
	require.Equal(t, billing.StatusPendingVerification, got.Status)
	require.True(t, got.Amount.Equal(tx.Amount))
	require.Equal(t, tx.PlanID, got.PlanID)
}

func TestCompanyRepo_DuplicateAndOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	repo := NewCompanyRepo(store)
	base := time.Now().UTC().Truncate(time.Millisecond)

	first := company.Record{ID: uuid.NewString(), OwnerID: "u1", CIN: "L17110MH1973PLC019786", Name: "A", CreatedAt: base}
	second := company.Record{ID: uuid.NewString(), OwnerID: "u1", CIN: "U72200KA2009PTC049889", Name: "B", CreatedAt: base.Add(time.Second)}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	dup := first
	dup.ID = uuid.NewString()
	require.ErrorIs(t, repo.Save(ctx, dup), ports.ErrConflict)

	list, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
}

func TestAuditRepo_PayloadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	repo := NewAuditRepo(store)

	payload, err := json.Marshal(map[string]string{"transaction_id": "UTR1"})
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, []ports.AuditEvent{{
		Type:       "transaction.reference_submitted",
		EntityID:   "tx-1",
		ActorID:    "owner-1",
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}}))

	events, err := repo.ListByEntity(ctx, "tx-1", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.JSONEq(t, `{"transaction_id":"UTR1"}`, string(events[0].Payload))
}
