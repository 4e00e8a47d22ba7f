package diligence

import "lexiq/internal/domain/advisory"

type Request = advisory.ChecklistInput

type Response = advisory.Checklist
