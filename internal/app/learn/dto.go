package learn

import "lexiq/internal/domain/advisory"

type Request = advisory.LearnInput

type Response = advisory.LearnOutput
