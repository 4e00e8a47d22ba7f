package advisory

// DashboardInput is the business goal a user wants the dashboard tuned for.
type DashboardInput struct {
	BusinessGoal string `json:"businessGoal" form:"businessGoal" validate:"required,min=10" message:"Please describe your business goal in at least 10 characters."`
}

type DashboardWidget struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rationale   string `json:"rationale,omitempty"`
}

type SuggestionSet struct {
	Summary     string            `json:"summary"`
	Suggestions []DashboardWidget `json:"suggestions"`
}

type ChecklistInput struct {
	DealType string `json:"dealType" form:"dealType" validate:"required,min=3,max=100"`
}

type ChecklistItem struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Priority string `json:"priority,omitempty"`
}

type ChecklistCategory struct {
	Name  string          `json:"name"`
	Items []ChecklistItem `json:"items"`
}

type Checklist struct {
	Title      string              `json:"title"`
	Categories []ChecklistCategory `json:"categories"`
}

// Learning levels accepted by LearnInput.Level.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

type LearnInput struct {
	Topic string `json:"topic" form:"topic" validate:"required,min=3,max=200"`
	Level string `json:"level,omitempty" form:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

type LearnSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type LearnOutput struct {
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	Sections      []LearnSection `json:"sections"`
	KeyTakeaways  []string       `json:"keyTakeaways"`
	FurtherTopics []string       `json:"furtherTopics,omitempty"`
}

type ReportInsightsInput struct {
	ReportType string `json:"reportType" form:"reportType" validate:"required,max=100"`
	ReportData string `json:"reportData" form:"reportData" validate:"required,min=10"`
	Period     string `json:"period,omitempty" form:"period" validate:"max=50"`
}

type Insight struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Severity string `json:"severity,omitempty"`
}

type ReportInsightsOutput struct {
	Summary         string    `json:"summary"`
	Insights        []Insight `json:"insights"`
	Recommendations []string  `json:"recommendations"`
}

// CINLength is the fixed length of a company identification number.
const CINLength = 21

type CompanyDetailsInput struct {
	CIN string `json:"cin" form:"cin" validate:"required,len=21" message:"CIN must be exactly 21 characters."`
}

type Director struct {
	Name            string `json:"name"`
	DIN             string `json:"din,omitempty"`
	Designation     string `json:"designation,omitempty"`
	AppointmentDate string `json:"appointmentDate,omitempty"`
}

type CompanyDetails struct {
	CIN               string     `json:"cin"`
	Name              string     `json:"name"`
	Status            string     `json:"status"`
	Category          string     `json:"category,omitempty"`
	IncorporationDate string     `json:"incorporationDate,omitempty"`
	RegisteredAddress string     `json:"registeredAddress,omitempty"`
	AuthorizedCapital string     `json:"authorizedCapital,omitempty"`
	PaidUpCapital     string     `json:"paidUpCapital,omitempty"`
	Directors         []Director `json:"directors,omitempty"`
}
