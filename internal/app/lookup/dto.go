package lookup

import "lexiq/internal/domain/advisory"

type Request = advisory.CompanyDetailsInput

type Response = advisory.CompanyDetails
