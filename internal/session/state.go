package session

// State names the single active screen of a session. Exactly one state
// is active at any instant.
type State int

const (
	// StateLanding is the initial state: waiting for a document.
	StateLanding State = iota

	// StateDashboard has a staged document, ready to generate.
	StateDashboard

	// StateLoading is waiting on the analysis call.
	StateLoading

	// StateQuiz is administering questions. The answer store is
	// writable only here.
	StateQuiz

	// StateScoreModal gates entry into the result: the score has been
	// computed and is shown as an overlay awaiting acknowledgement.
	StateScoreModal

	// StateResult shows the review views until an explicit reset.
	StateResult
)

func (s State) String() string {
	switch s {
	case StateLanding:
		return "landing"
	case StateDashboard:
		return "dashboard"
	case StateLoading:
		return "loading"
	case StateQuiz:
		return "quiz"
	case StateScoreModal:
		return "scoreModal"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// ResultView selects the secondary view inside the result state. It is
// independent from the main state but scoped to the result's lifetime.
type ResultView int

const (
	ViewAnalysis ResultView = iota
	ViewScorecard
	ViewRetry
)

func (v ResultView) String() string {
	switch v {
	case ViewAnalysis:
		return "analysis"
	case ViewScorecard:
		return "scorecard"
	case ViewRetry:
		return "retry"
	default:
		return "unknown"
	}
}
