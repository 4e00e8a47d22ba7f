package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lexiq/internal/app/dispatch"
	"lexiq/internal/app/envelope"
	"lexiq/internal/app/ports"
	"lexiq/internal/domain/billing"
)

const (
	EventTransactionCreated            = "transaction.created"
	EventTransactionReferenceSubmitted = "transaction.reference_submitted"
)

var BeginOperation = dispatch.Operation{
	Name:    "checkout.begin",
	Success: "Checkout started. Complete the payment and submit your transaction reference.",
	Failure: "We couldn't start checkout right now. Please try again.",
}

// SubmitReferenceOperation surfaces store error text to the caller.
var SubmitReferenceOperation = dispatch.Operation{
	Name:            "checkout.submit_reference",
	Success:         "Transaction reference submitted. We'll verify your payment shortly.",
	NotFound:        "This transaction could not be found.",
	ExposeErrorText: true,
}

var StatusOperation = dispatch.Operation{
	Name:     "checkout.status",
	Success:  "Transaction loaded.",
	Failure:  "We couldn't load this transaction right now. Please try again.",
	NotFound: "This transaction could not be found.",
}

// historyLimit caps the audit entries returned with a transaction.
const historyLimit = 20

type BeginUseCase struct {
	Dispatch     dispatch.Deps
	Transactions ports.TransactionRepository
	Audit        ports.AuditRepository
	TxManager    ports.TxManager
	Now          func() time.Time
	NewID        func() string
}

type SubmitReferenceUseCase struct {
	Dispatch     dispatch.Deps
	Transactions ports.TransactionRepository
	Audit        ports.AuditRepository
	TxManager    ports.TxManager
	Now          func() time.Time
}

func (u BeginUseCase) Execute(ctx context.Context, req BeginRequest) envelope.State[BeginResponse] {
	req = req.normalize()
	if errs := u.Dispatch.Validate(req); len(errs) > 0 {
		return dispatch.Invalid[BeginResponse](u.Dispatch, BeginOperation, errs)
	}
	if req.UserID == "" {
		return dispatch.Failure[BeginResponse](u.Dispatch, BeginOperation, fmt.Errorf("begin checkout: %w", ports.ErrPermissionDenied))
	}
	plan, _ := billing.LookupPlan(req.PlanID)

	tx := billing.NewTransaction(u.newID(), req.UserID, plan, nowUTC(u.Now))
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Transactions.Create(txCtx, tx); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		payload, err := json.Marshal(map[string]string{
			"plan_id":  tx.PlanID,
			"amount":   tx.Amount.StringFixed(2),
			"currency": tx.Currency,
		})
		if err != nil {
			return err
		}
		return u.Audit.Append(txCtx, []ports.AuditEvent{{
			Type:       EventTransactionCreated,
			EntityID:   tx.ID,
			ActorID:    req.UserID,
			OccurredAt: tx.CreatedAt,
			Payload:    payload,
		}})
	})
	if err != nil {
		return dispatch.Failure[BeginResponse](u.Dispatch, BeginOperation, err)
	}
	return dispatch.Success(u.Dispatch, BeginOperation, tx)
}

// Execute records the payment reference. Ownership is enforced by the store.
func (u SubmitReferenceUseCase) Execute(ctx context.Context, req SubmitReferenceRequest) envelope.State[SubmitReferenceResponse] {
	req = req.normalize()
	if errs := u.Dispatch.Validate(req); len(errs) > 0 {
		return dispatch.Invalid[SubmitReferenceResponse](u.Dispatch, SubmitReferenceOperation, errs)
	}

	now := nowUTC(u.Now)
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Transactions.UpdateReference(txCtx, req.TransactionDocID, req.UserID, req.TransactionID, now); err != nil {
			return err
		}
		payload, err := json.Marshal(map[string]string{"transaction_id": req.TransactionID})
		if err != nil {
			return err
		}
		return u.Audit.Append(txCtx, []ports.AuditEvent{{
			Type:       EventTransactionReferenceSubmitted,
			EntityID:   req.TransactionDocID,
			ActorID:    req.UserID,
			OccurredAt: now,
			Payload:    payload,
		}})
	})
	if err != nil {
		return dispatch.Failure[SubmitReferenceResponse](u.Dispatch, SubmitReferenceOperation, err)
	}
	return dispatch.Success(u.Dispatch, SubmitReferenceOperation, SubmitReferenceResponse{
		TransactionDocID: req.TransactionDocID,
		TransactionID:    req.TransactionID,
		Status:           billing.StatusPendingVerification,
	})
}

type StatusUseCase struct {
	Dispatch     dispatch.Deps
	Transactions ports.TransactionRepository
	Audit        ports.AuditRepository
}

// Execute returns the caller's transaction with its audit history, newest first.
func (u StatusUseCase) Execute(ctx context.Context, req StatusRequest) envelope.State[StatusResponse] {
	req = req.normalize()
	if errs := u.Dispatch.Validate(req); len(errs) > 0 {
		return dispatch.Invalid[StatusResponse](u.Dispatch, StatusOperation, errs)
	}
	if req.UserID == "" {
		return dispatch.Failure[StatusResponse](u.Dispatch, StatusOperation, fmt.Errorf("transaction status: %w", ports.ErrPermissionDenied))
	}

	tx, err := u.Transactions.GetByID(ctx, req.TransactionDocID)
	if err != nil {
		return dispatch.Failure[StatusResponse](u.Dispatch, StatusOperation, fmt.Errorf("get transaction %s: %w", req.TransactionDocID, err))
	}
	if tx.OwnerID != req.UserID {
		return dispatch.Failure[StatusResponse](u.Dispatch, StatusOperation, fmt.Errorf("transaction %s: %w", tx.ID, ports.ErrPermissionDenied))
	}
	events, err := u.Audit.ListByEntity(ctx, tx.ID, historyLimit)
	if err != nil {
		return dispatch.Failure[StatusResponse](u.Dispatch, StatusOperation, fmt.Errorf("list audit for %s: %w", tx.ID, err))
	}
	history := make([]HistoryEntry, 0, len(events))
	for _, e := range events {
		history = append(history, HistoryEntry{
			Type:       e.Type,
			ActorID:    e.ActorID,
			OccurredAt: e.OccurredAt,
			Payload:    e.Payload,
		})
	}
	return dispatch.Success(u.Dispatch, StatusOperation, StatusResponse{Transaction: tx, History: history})
}

func (u BeginUseCase) newID() string {
	if u.NewID != nil {
		return u.NewID()
	}
	return uuid.NewString()
}

func nowUTC(fn func() time.Time) time.Time {
	if fn == nil {
		fn = time.Now
	}
	return fn().UTC()
}
