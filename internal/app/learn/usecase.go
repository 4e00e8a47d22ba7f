package learn

import (
	"context"

	"lexiq/internal/app/dispatch"
	"lexiq/internal/app/envelope"
	"lexiq/internal/app/ports"
)

var Operation = dispatch.Operation{
	Name:    "learn.topic",
	Success: "Learning content ready.",
	Failure: "We couldn't prepare learning content for this topic. Please try again.",
}

type TopicUseCase struct {
	Dispatch dispatch.Deps
	Guide    ports.LearningGuide
}

// Execute forwards the topic with the level defaulted to beginner.
func (u TopicUseCase) Execute(ctx context.Context, req Request) envelope.State[Response] {
	return dispatch.Run(ctx, u.Dispatch, Operation, req.Normalize(), u.Guide.LearningTopic)
}
