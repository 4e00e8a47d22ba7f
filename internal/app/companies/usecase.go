package companies

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lexiq/internal/app/dispatch"
	"lexiq/internal/app/envelope"
	"lexiq/internal/app/ports"
	"lexiq/internal/domain/company"
)

var SaveOperation = dispatch.Operation{
	Name:     "companies.save",
	Success:  "Company saved to your dashboard.",
	Failure:  "We couldn't save this company right now. Please try again.",
	Conflict: "This company is already on your dashboard.",
}

var ListOperation = dispatch.Operation{
	Name:    "companies.list",
	Success: "Companies loaded.",
	Failure: "We couldn't load your companies right now. Please try again.",
}

type SaveUseCase struct {
	Dispatch  dispatch.Deps
	Companies ports.CompanyRepository
	Now       func() time.Time
	NewID     func() string
}

type ListUseCase struct {
	Dispatch  dispatch.Deps
	Companies ports.CompanyRepository
}

func (u SaveUseCase) Execute(ctx context.Context, req SaveRequest) envelope.State[SaveResponse] {
	req = req.normalize()
	if errs := u.Dispatch.Validate(req); len(errs) > 0 {
		return dispatch.Invalid[SaveResponse](u.Dispatch, SaveOperation, errs)
	}
	if req.UserID == "" {
		return dispatch.Failure[SaveResponse](u.Dispatch, SaveOperation, fmt.Errorf("save company: %w", ports.ErrPermissionDenied))
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	rec := company.Record{
		ID:        newID(),
		OwnerID:   req.UserID,
		CIN:       req.CIN,
		Name:      req.Name,
		CreatedAt: nowFn().UTC(),
	}
	if err := u.Companies.Save(ctx, rec); err != nil {
		return dispatch.Failure[SaveResponse](u.Dispatch, SaveOperation, err)
	}
	return dispatch.Success(u.Dispatch, SaveOperation, rec)
}

// Execute lists the caller's companies, newest first.
func (u ListUseCase) Execute(ctx context.Context, req ListRequest) envelope.State[ListResponse] {
	owner := strings.TrimSpace(req.UserID)
	if owner == "" {
		return dispatch.Failure[ListResponse](u.Dispatch, ListOperation, fmt.Errorf("list companies: %w", ports.ErrPermissionDenied))
	}
	records, err := u.Companies.ListByOwner(ctx, owner)
	if err != nil {
		return dispatch.Failure[ListResponse](u.Dispatch, ListOperation, err)
	}
	if records == nil {
		records = []company.Record{}
	}
	return dispatch.Success(u.Dispatch, ListOperation, ListResponse{Companies: records})
}
