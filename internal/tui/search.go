package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxVisibleResults = 10

// catalog search view
type SearchModel struct {
	input      textinput.Model
	spinner    spinner.Model
	client     *Client
	width      int
	query      string
	results    []scoredFragrance
	isFetching bool
	searched   bool
}

func NewSearchModel(client *Client) *SearchModel {
	ti := textinput.New()
	ti.Placeholder = "fresh citrus for summer..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorGold)

	return &SearchModel{
		input:   ti,
		spinner: sp,
		client:  client,
	}
}

func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SearchModel) Update(msg tea.Msg) (*SearchModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query != "" && !m.isFetching {
				m.isFetching = true
				m.query = query

				return m, tea.Batch(m.spinner.Tick, m.client.SearchCmd(query))
			}

			return m, nil

		case "ctrl+l":
			m.input.SetValue("")
			m.results = nil
			m.searched = false

			return m, nil
		}

	case SearchResultsMsg:
		m.isFetching = false
		m.searched = true
		m.results = msg.results
		m.input.Focus()

		return m, nil

	case spinner.TickMsg:
		if m.isFetching {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 10
	}

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("catalog search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.isFetching:
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(" searching..."))

	case m.searched && len(m.results) == 0:
		b.WriteString(infoStyle.Render(fmt.Sprintf("no matches for %q", m.query)))

	case len(m.results) > 0:
		b.WriteString(renderResults(m.results, maxVisibleResults))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter to search, ctrl+l to clear, esc for menu."))

	return b.String()
}

// renderResults formats scored fragrances as an aligned list
func renderResults(results []scoredFragrance, limit int) string {
	var b strings.Builder

	for i, r := range results {
		if i >= limit {
			break
		}

		f := r.Fragrance

		line := fmt.Sprintf("  %2d. %s %s",
			i+1,
			resultBrandStyle.Render(f.BrandName),
			resultNameStyle.Render(f.Name),
		)
		b.WriteString(line)
		b.WriteString("\n")

		meta := fmt.Sprintf("      %s | %.1f (%d ratings)", f.Gender, f.RatingValue, f.RatingCount)
		if len(f.Accords) > 0 {
			meta += " | " + strings.Join(firstN(f.Accords, 3), ", ")
		}

		b.WriteString(resultMetaStyle.Render(meta))
		b.WriteString("\n")
	}

	return b.String()
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}

	return values[:n]
}
