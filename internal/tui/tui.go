package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func NewApp() *Model {
	client := NewClient()

	return &Model{
		state:   StateWelcome,
		client:  client,
		welcome: NewWelcome(),
		search:  NewSearchModel(client),
		results: NewResultsModel(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// esc clears errors and returns to the menu from any view
		if msg.String() == "esc" {
			m.state = StateWelcome
			m.err = nil
			m.welcome.input = ""

			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// views track their own size
		m.search, _ = m.search.Update(msg)
		m.results, _ = m.results.Update(msg)

		return m, nil

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterSearchMsg:
		m.state = StateSearch
		m.err = nil

		return m, m.search.Init()

	case EnterQuizMsg:
		m.state = StateQuiz
		m.err = nil
		m.quiz = NewQuizModel(m.client)

		return m, m.quiz.Init()

	case AnalysisMsg:
		m.results.SetAnalysis(msg)
		m.state = StateResults

		return m, nil
	}

	switch m.state {
	case StateWelcome:
		return m.updateWelcome(msg)

	case StateSearch:
		return m.updateSearch(msg)

	case StateQuiz:
		return m.updateQuiz(msg)

	case StateResults:
		return m.updateResults(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateSearch:
		return m.search.View()

	case StateQuiz:
		return m.quiz.View()

	case StateResults:
		return m.results.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)

	return m, cmd
}

func (m *Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m *Model) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quiz == nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.quiz, cmd = m.quiz.Update(msg)

	return m, cmd
}

func (m *Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)

	return m, cmd
}

func errorView(err error) string {
	return errorStyle.Render(fmt.Sprintf("\n  Error: %v\n", err)) +
		helpStyle.Render("\n  press esc for menu, ctrl+c to exit.\n")
}
