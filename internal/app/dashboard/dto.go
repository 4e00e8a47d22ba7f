package dashboard

import "lexiq/internal/domain/advisory"

type Request = advisory.DashboardInput

type Response = advisory.SuggestionSet
