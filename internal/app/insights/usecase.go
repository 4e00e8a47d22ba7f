package insights

import (
	"context"

	"lexiq/internal/app/dispatch"
	"lexiq/internal/app/envelope"
	"lexiq/internal/app/ports"
)

var Operation = dispatch.Operation{
	Name:    "insights.report",
	Success: "Report insights generated.",
	Failure: "We couldn't analyse this report right now. Please try again.",
}

type ReportUseCase struct {
	Dispatch dispatch.Deps
	Analyst  ports.ReportAnalyst
}

func (u ReportUseCase) Execute(ctx context.Context, req Request) envelope.State[Response] {
	return dispatch.Run(ctx, u.Dispatch, Operation, req.Normalize(), u.Analyst.ReportInsights)
}
