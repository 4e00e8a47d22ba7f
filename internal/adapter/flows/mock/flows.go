// Package mockflow returns deterministic advisory output for local runs and tests.
package mockflow

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"lexiq/internal/app/ports"
	"lexiq/internal/domain/advisory"
)

type Flows struct{}

func New() Flows {
	return Flows{}
}

func (Flows) SuggestDashboardConfig(_ context.Context, in advisory.DashboardInput) (advisory.SuggestionSet, error) {
	return advisory.SuggestionSet{
		Summary: "Suggested widgets for: " + in.BusinessGoal,
		Suggestions: []advisory.DashboardWidget{
			{ID: "compliance-calendar", Title: "Compliance calendar", Description: "Upcoming statutory due dates."},
			{ID: "gst-returns", Title: "GST returns", Description: "Filing status of GSTR-1 and GSTR-3B."},
			{ID: "roc-filings", Title: "ROC filings", Description: "Annual returns and financial statements with the registrar."},
		},
	}, nil
}

func (Flows) GenerateChecklist(_ context.Context, in advisory.ChecklistInput) (advisory.Checklist, error) {
	return advisory.Checklist{
		Title: "Due diligence checklist: " + in.DealType,
		Categories: []advisory.ChecklistCategory{
			{Name: "Corporate", Items: []advisory.ChecklistItem{
				{ID: "corp-1", Text: "Certificate of incorporation and MoA/AoA", Priority: "high"},
				{ID: "corp-2", Text: "Board and shareholder resolutions", Priority: "medium"},
			}},
			{Name: "Tax", Items: []advisory.ChecklistItem{
				{ID: "tax-1", Text: "Income tax assessments for the last three years", Priority: "high"},
				{ID: "tax-2", Text: "GST registrations and returns", Priority: "medium"},
			}},
		},
	}, nil
}

func (Flows) LearningTopic(_ context.Context, in advisory.LearnInput) (advisory.LearnOutput, error) {
	return advisory.LearnOutput{
		Title:   in.Topic,
		Summary: fmt.Sprintf("Introduction to %s (%s level).", in.Topic, in.Level),
		Sections: []advisory.LearnSection{
			{Heading: "Overview", Body: "What " + in.Topic + " covers and who it applies to."},
			{Heading: "Obligations", Body: "Key filings, registers and deadlines."},
		},
		KeyTakeaways: []string{"Know your deadlines.", "Keep records current."},
	}, nil
}

func (Flows) ReportInsights(_ context.Context, in advisory.ReportInsightsInput) (advisory.ReportInsightsOutput, error) {
	summary := "Insights for " + in.ReportType
	if in.Period != "" {
		summary += " (" + in.Period + ")"
	}
	return advisory.ReportInsightsOutput{
		Summary: summary,
		Insights: []advisory.Insight{
			{Title: "Data volume", Detail: fmt.Sprintf("Report contains %d characters of data.", len(in.ReportData)), Severity: "info"},
		},
		Recommendations: []string{"Review the figures against the previous period."},
	}, nil
}

// cinPattern: listing, industry code, state, year, ownership, registration number.
var cinPattern = regexp.MustCompile(`^([LU])(\d{5})([A-Z]{2})(\d{4})([A-Z]{3})(\d{6})$`)

var ownership = map[string]string{
	"PLC": "Public Limited Company",
	"PTC": "Private Limited Company",
	"OPC": "One Person Company",
	"NPL": "Section 8 Company",
	"GOI": "Government of India Company",
	"SGC": "State Government Company",
}

// CompanyDetails decodes the CIN itself. Malformed CINs are not found.
func (Flows) CompanyDetails(_ context.Context, in advisory.CompanyDetailsInput) (advisory.CompanyDetails, error) {
	m := cinPattern.FindStringSubmatch(strings.ToUpper(in.CIN))
	if m == nil {
		return advisory.CompanyDetails{}, fmt.Errorf("company %s: %w", in.CIN, ports.ErrNotFound)
	}
	category, ok := ownership[m[5]]
	if !ok {
		category = "Company limited by shares"
	}
	listing := "Unlisted"
	if m[1] == "L" {
		listing = "Listed"
	}
	return advisory.CompanyDetails{
		CIN:               m[0],
		Name:              fmt.Sprintf("Registered Company %s", m[6]),
		Status:            "Active",
		Category:          listing + " " + category,
		IncorporationDate: m[4],
		RegisteredAddress: "State code " + m[3],
	}, nil
}
