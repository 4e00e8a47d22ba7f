package ports

import (
	"context"

	"lexiq/internal/domain/advisory"
)

type DashboardAdvisor interface {
	SuggestDashboardConfig(ctx context.Context, in advisory.DashboardInput) (advisory.SuggestionSet, error)
}

type ChecklistGenerator interface {
	GenerateChecklist(ctx context.Context, in advisory.ChecklistInput) (advisory.Checklist, error)
}

type LearningGuide interface {
	LearningTopic(ctx context.Context, in advisory.LearnInput) (advisory.LearnOutput, error)
}

type ReportAnalyst interface {
	ReportInsights(ctx context.Context, in advisory.ReportInsightsInput) (advisory.ReportInsightsOutput, error)
}

// CompanyRegistry resolves a CIN to registry details. Unknown CINs return ErrNotFound.
type CompanyRegistry interface {
	CompanyDetails(ctx context.Context, in advisory.CompanyDetailsInput) (advisory.CompanyDetails, error)
}
