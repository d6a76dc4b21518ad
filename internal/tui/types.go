package tui

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateSearch
	StateQuiz
	StateResults
)

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	welcome *Welcome
	search  *SearchModel
	quiz    *QuizModel
	results *ResultsModel
	client  *Client
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the search view
type EnterSearchMsg struct{}

// sent to start a new quiz
type EnterQuizMsg struct{}

// sent when search results arrive
type SearchResultsMsg struct {
	query   string
	results []scoredFragrance
}

// sent when a quiz session has been created
type QuizStartedMsg struct {
	token     string
	questions []quizQuestion
}

// sent when an answer was accepted
type AnswerSavedMsg struct {
	questionID string
	remaining  int
}

// sent when the quiz analysis completes
type AnalysisMsg struct {
	archetype       quizArchetype
	recommendations []scoredFragrance
	insight         insightPayload
}
