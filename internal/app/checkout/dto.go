package checkout

import (
	"encoding/json"
	"strings"
	"time"

	"lexiq/internal/domain/billing"
)

type BeginRequest struct {
	PlanID string `json:"planId" form:"planId" validate:"required,plan"`
	UserID string `json:"-" form:"-"`
}

func (r BeginRequest) normalize() BeginRequest {
	r.PlanID = strings.ToLower(strings.TrimSpace(r.PlanID))
	r.UserID = strings.TrimSpace(r.UserID)
	return r
}

type BeginResponse = billing.Transaction

type SubmitReferenceRequest struct {
	TransactionDocID string `json:"transactionDocId" form:"transactionDocId" validate:"required"`
	TransactionID    string `json:"transactionId" form:"transactionId" validate:"required,max=100"`
	UserID           string `json:"-" form:"-"`
}

func (r SubmitReferenceRequest) normalize() SubmitReferenceRequest {
	r.TransactionDocID = strings.TrimSpace(r.TransactionDocID)
	r.TransactionID = strings.TrimSpace(r.TransactionID)
	r.UserID = strings.TrimSpace(r.UserID)
	return r
}

type SubmitReferenceResponse struct {
	TransactionDocID string         `json:"transactionDocId"`
	TransactionID    string         `json:"transactionId"`
	Status           billing.Status `json:"status"`
}

type StatusRequest struct {
	TransactionDocID string `json:"transactionDocId" form:"transactionDocId" validate:"required"`
	UserID           string `json:"-" form:"-"`
}

func (r StatusRequest) normalize() StatusRequest {
	r.TransactionDocID = strings.TrimSpace(r.TransactionDocID)
	r.UserID = strings.TrimSpace(r.UserID)
	return r
}

type HistoryEntry struct {
	Type       string          `json:"type"`
	ActorID    string          `json:"actor_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

type StatusResponse struct {
	Transaction billing.Transaction `json:"transaction"`
	History     []HistoryEntry      `json:"history"`
}
