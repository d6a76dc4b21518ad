package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// quiz flow: one question at a time, cursor-driven option picker
type QuizModel struct {
	spinner    spinner.Model
	client     *Client
	token      string
	questions  []quizQuestion
	current    int
	cursor     int
	selected   map[string]bool
	isFetching bool
	analyzing  bool
}

func NewQuizModel(client *Client) *QuizModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorGold)

	return &QuizModel{
		spinner:  sp,
		client:   client,
		selected: make(map[string]bool),
	}
}

// Init creates the session on the server
func (m *QuizModel) Init() tea.Cmd {
	m.isFetching = true
	return tea.Batch(m.spinner.Tick, m.client.StartQuizCmd())
}

func (m *QuizModel) Update(msg tea.Msg) (*QuizModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case QuizStartedMsg:
		m.token = msg.token
		m.questions = msg.questions
		m.current = 0
		m.cursor = 0
		m.selected = make(map[string]bool)
		m.isFetching = false

		return m, nil

	case AnswerSavedMsg:
		m.isFetching = false

		if m.current+1 < len(m.questions) {
			m.current++
			m.cursor = 0
			m.selected = make(map[string]bool)

			return m, nil
		}

		// all questions answered, run the analysis
		m.analyzing = true
		m.isFetching = true

		return m, tea.Batch(m.spinner.Tick, m.client.AnalyzeCmd(m.token))

	case spinner.TickMsg:
		if m.isFetching {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

		return m, nil

	case tea.KeyMsg:
		if m.isFetching || len(m.questions) == 0 {
			return m, nil
		}

		return m.handleKey(msg)
	}

	return m, nil
}

func (m *QuizModel) handleKey(msg tea.KeyMsg) (*QuizModel, tea.Cmd) {
	question := m.questions[m.current]

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(question.Options)-1 {
			m.cursor++
		}

	case " ":
		if question.MultiSelect {
			m.toggle(question)
		}

	case "enter":
		values := m.answerValues(question)
		if len(values) == 0 {
			return m, nil
		}

		m.isFetching = true

		return m, tea.Batch(m.spinner.Tick, m.client.SubmitAnswerCmd(m.token, question.ID, values))
	}

	return m, nil
}

// toggle flips the option under the cursor, respecting max_choices
func (m *QuizModel) toggle(question quizQuestion) {
	value := question.Options[m.cursor].Value

	if m.selected[value] {
		delete(m.selected, value)
		return
	}

	if question.MaxChoices > 0 && len(m.selected) >= question.MaxChoices {
		return
	}

	m.selected[value] = true
}

// answerValues resolves the submission for the current question: the
// checked set for multi-select, the cursor row otherwise
func (m *QuizModel) answerValues(question quizQuestion) []string {
	if !question.MultiSelect {
		return []string{question.Options[m.cursor].Value}
	}

	var values []string

	for _, opt := range question.Options {
		if m.selected[opt.Value] {
			values = append(values, opt.Value)
		}
	}

	return values
}

func (m *QuizModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("scent profile quiz"))
	b.WriteString("\n\n")

	if m.isFetching {
		b.WriteString(m.spinner.View())

		if m.analyzing {
			b.WriteString(infoStyle.Render(" analyzing your answers..."))
		} else {
			b.WriteString(infoStyle.Render(" loading..."))
		}

		return b.String()
	}

	if len(m.questions) == 0 {
		return b.String()
	}

	question := m.questions[m.current]

	progress := fmt.Sprintf("question %d of %d", m.current+1, len(m.questions))
	b.WriteString(infoStyle.Render(progress))
	b.WriteString("\n\n")

	b.WriteString(questionStyle.Render(question.Prompt))
	b.WriteString("\n")

	for i, opt := range question.Options {
		marker := " "
		if question.MultiSelect && m.selected[opt.Value] {
			marker = "x"
		}

		line := fmt.Sprintf("[%s] %s", marker, opt.Label)

		if i == m.cursor {
			b.WriteString(optionSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(optionStyle.Render("  " + line))
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")

	if question.MultiSelect {
		hint := "space to select, enter to continue"
		if question.MaxChoices > 0 {
			hint = fmt.Sprintf("space to select (up to %d), enter to continue", question.MaxChoices)
		}

		b.WriteString(helpStyle.Render(hint + ", esc for menu."))
	} else {
		b.WriteString(helpStyle.Render("enter to choose, esc for menu."))
	}

	return b.String()
}
