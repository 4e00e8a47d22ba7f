package openaiflow

import (
	"context"
	"fmt"

	"lexiq/internal/app/ports"
	"lexiq/internal/domain/advisory"
)

func (c *Client) SuggestDashboardConfig(ctx context.Context, in advisory.DashboardInput) (advisory.SuggestionSet, error) {
	var out advisory.SuggestionSet
	err := c.complete(ctx, "suggest dashboard config", dashboardPrompt, in, &out)
	return out, err
}

func (c *Client) GenerateChecklist(ctx context.Context, in advisory.ChecklistInput) (advisory.Checklist, error) {
	var out advisory.Checklist
	err := c.complete(ctx, "generate checklist", checklistPrompt, in, &out)
	return out, err
}

func (c *Client) LearningTopic(ctx context.Context, in advisory.LearnInput) (advisory.LearnOutput, error) {
	var out advisory.LearnOutput
	err := c.complete(ctx, "learning topic", learnPrompt, in, &out)
	return out, err
}

func (c *Client) ReportInsights(ctx context.Context, in advisory.ReportInsightsInput) (advisory.ReportInsightsOutput, error) {
	var out advisory.ReportInsightsOutput
	err := c.complete(ctx, "report insights", reportPrompt, in, &out)
	return out, err
}

type companyLookup struct {
	Found bool `json:"found"`
	advisory.CompanyDetails
}

// CompanyDetails returns ports.ErrNotFound when the model reports no match.
func (c *Client) CompanyDetails(ctx context.Context, in advisory.CompanyDetailsInput) (advisory.CompanyDetails, error) {
	var out companyLookup
	if err := c.complete(ctx, "company details", companyPrompt, in, &out); err != nil {
		return advisory.CompanyDetails{}, err
	}
	if !out.Found || out.Name == "" {
		return advisory.CompanyDetails{}, fmt.Errorf("company %s: %w", in.CIN, ports.ErrNotFound)
	}
	if out.CIN == "" {
		out.CIN = in.CIN
	}
	return out.CompanyDetails, nil
}
