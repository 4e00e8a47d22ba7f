package insights

import "lexiq/internal/domain/advisory"

type Request = advisory.ReportInsightsInput

type Response = advisory.ReportInsightsOutput
