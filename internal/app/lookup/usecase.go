package lookup

import (
	"context"

	"lexiq/internal/app/dispatch"
	"lexiq/internal/app/envelope"
	"lexiq/internal/app/ports"
)

var Operation = dispatch.Operation{
	Name:     "lookup.company",
	Success:  "Company details retrieved.",
	Failure:  "We couldn't fetch company details right now. Please try again.",
	NotFound: "No company was found for this CIN.",
}

type CompanyUseCase struct {
	Dispatch dispatch.Deps
	Registry ports.CompanyRegistry
}

// Execute upper-cases and trims the CIN before the length check.
func (u CompanyUseCase) Execute(ctx context.Context, req Request) envelope.State[Response] {
	return dispatch.Run(ctx, u.Dispatch, Operation, req.Normalize(), u.Registry.CompanyDetails)
}
