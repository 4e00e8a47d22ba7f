package diligence

import (
	"context"

	"lexiq/internal/app/dispatch"
	"lexiq/internal/app/envelope"
	"lexiq/internal/app/ports"
)

var Operation = dispatch.Operation{
	Name:    "diligence.checklist",
	Success: "Due diligence checklist generated.",
	Failure: "We couldn't generate the checklist right now. Please try again.",
}

type ChecklistUseCase struct {
	Dispatch  dispatch.Deps
	Generator ports.ChecklistGenerator
}

func (u ChecklistUseCase) Execute(ctx context.Context, req Request) envelope.State[Response] {
	return dispatch.Run(ctx, u.Dispatch, Operation, req.Normalize(), u.Generator.GenerateChecklist)
}
