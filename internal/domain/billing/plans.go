package billing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const CurrencyINR = "INR"

type Plan struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

var Plans = map[string]Plan{
	"starter": {
		ID:       "starter",
		Name:     "Starter",
		Amount:   decimal.RequireFromString("999.00"),
		Currency: CurrencyINR,
	},
	"professional": {
		ID:       "professional",
		Name:     "Professional",
		Amount:   decimal.RequireFromString("2499.00"),
		Currency: CurrencyINR,
	},
	"enterprise": {
		ID:       "enterprise",
		Name:     "Enterprise",
		Amount:   decimal.RequireFromString("9999.00"),
		Currency: CurrencyINR,
	},
}

func LookupPlan(id string) (Plan, bool) {
	p, ok := Plans[id]
	return p, ok
}

// PlanIDs returns the catalog ids in ascending order.
func PlanIDs() []string {
	ids := make([]string, 0, len(Plans))
	for id := range Plans {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NewTransaction creates an unpaid transaction for plan p.
func NewTransaction(id, ownerID string, p Plan, now time.Time) Transaction {
	return Transaction{
		ID:        id,
		OwnerID:   ownerID,
		PlanID:    p.ID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    StatusAwaitingPayment,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
