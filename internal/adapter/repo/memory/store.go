package memory

import (
	"context"
	"maps"
	"sync"

	"lexiq/internal/app/ports"
	"lexiq/internal/domain/billing"
	"lexiq/internal/domain/company"
)

type Store struct {
	mu           sync.RWMutex
	transactions map[string]billing.Transaction
	companies    map[string]company.Record
	companyKeys  map[string]string
	audit        []ports.AuditEvent
}

func NewStore() *Store {
	return &Store{
		transactions: make(map[string]billing.Transaction),
		companies:    make(map[string]company.Record),
		companyKeys:  make(map[string]string),
	}
}

func companyKey(ownerID, cin string) string {
	return ownerID + "::" + cin
}

func (s *Store) SeedTransaction(tx billing.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[tx.ID] = tx
}

type txKey struct{}

// inTx reports whether ctx already holds this store's write lock.
func (s *Store) inTx(ctx context.Context) bool {
	held, _ := ctx.Value(txKey{}).(*Store)
	return held == s
}

func (s *Store) write(ctx context.Context, fn func() error) error {
	if !s.inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn()
}

func (s *Store) read(ctx context.Context, fn func()) {
	if !s.inTx(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

type snapshot struct {
	transactions map[string]billing.Transaction
	companies    map[string]company.Record
	companyKeys  map[string]string
	auditLen     int
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		transactions: maps.Clone(s.transactions),
		companies:    maps.Clone(s.companies),
		companyKeys:  maps.Clone(s.companyKeys),
		auditLen:     len(s.audit),
	}
}

func (s *Store) restore(snap snapshot) {
	s.transactions = snap.transactions
	s.companies = snap.companies
	s.companyKeys = snap.companyKeys
	s.audit = s.audit[:snap.auditLen]
}
