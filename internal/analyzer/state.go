package analyzer

// State identifies the pipeline stage an analysis is in. Transitions are
// linear from Idle through Complete; Error is terminal and reachable from
// any stage.
type State string

const (
	StateIdle               State = "idle"
	StateFetchingProfile    State = "fetching_profile"
	StateFetchingRepos      State = "fetching_repos"
	StateAnalyzingLanguages State = "analyzing_languages"
	StateFetchingReadmes    State = "fetching_readmes"
	StateDetectingTechStack State = "detecting_tech_stack"
	StateRankingProjects    State = "ranking_projects"
	StateComplete           State = "complete"
	StateError              State = "error"
)

// ProgressFunc receives a state tag and a human-readable message before
// each stage runs. It is invoked synchronously on the analysis goroutine,
// so implementations must not block.
type ProgressFunc func(state State, message string)
