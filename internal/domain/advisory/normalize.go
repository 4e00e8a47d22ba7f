package advisory

import "strings"

func (in DashboardInput) Normalize() DashboardInput {
	in.BusinessGoal = strings.TrimSpace(in.BusinessGoal)
	return in
}

func (in ChecklistInput) Normalize() ChecklistInput {
	in.DealType = strings.TrimSpace(in.DealType)
	return in
}

// Normalize trims the topic and defaults the level to beginner.
func (in LearnInput) Normalize() LearnInput {
	in.Topic = strings.TrimSpace(in.Topic)
	in.Level = strings.ToLower(strings.TrimSpace(in.Level))
	if in.Level == "" {
		in.Level = LevelBeginner
	}
	return in
}

func (in ReportInsightsInput) Normalize() ReportInsightsInput {
	in.ReportType = strings.TrimSpace(in.ReportType)
	in.ReportData = strings.TrimSpace(in.ReportData)
	in.Period = strings.TrimSpace(in.Period)
	return in
}

// NormalizeCIN upper-cases and strips whitespace around a company identification number.
func NormalizeCIN(cin string) string {
	return strings.ToUpper(strings.TrimSpace(cin))
}

func (in CompanyDetailsInput) Normalize() CompanyDetailsInput {
	in.CIN = NormalizeCIN(in.CIN)
	return in
}
