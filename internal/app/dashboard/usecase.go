package dashboard

import (
	"context"

	"lexiq/internal/app/dispatch"
	"lexiq/internal/app/envelope"
	"lexiq/internal/app/ports"
)

var Operation = dispatch.Operation{
	Name:    "dashboard.suggest",
	Success: "Dashboard suggestions generated.",
	Failure: "We couldn't generate dashboard suggestions right now. Please try again.",
}

type SuggestUseCase struct {
	Dispatch dispatch.Deps
	Advisor  ports.DashboardAdvisor
}

func (u SuggestUseCase) Execute(ctx context.Context, req Request) envelope.State[Response] {
	return dispatch.Run(ctx, u.Dispatch, Operation, req.Normalize(), u.Advisor.SuggestDashboardConfig)
}
