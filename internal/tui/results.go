package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// quiz results view: archetype, picks, and insight rendered as markdown
type ResultsModel struct {
	viewport viewport.Model
	renderer *glamour.TermRenderer
	markdown string
	width    int
	height   int
	ready    bool
}

func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetAnalysis builds and renders the result document
func (m *ResultsModel) SetAnalysis(msg AnalysisMsg) {
	m.markdown = buildResultsMarkdown(msg)
	m.renderContent()
}

func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	var cmd tea.Cmd

	if windowMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = windowMsg.Width
		m.height = windowMsg.Height

		if !m.ready {
			m.viewport = viewport.New(windowMsg.Width, windowMsg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = windowMsg.Width
			m.viewport.Height = windowMsg.Height - 4
		}

		m.renderContent()

		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *ResultsModel) View() string {
	if !m.ready || m.markdown == "" {
		return infoStyle.Render("\n  no results yet.\n")
	}

	return m.viewport.View() + "\n" + helpStyle.Render("scroll with arrows, esc for menu.")
}

// renderContent re-renders the markdown at the current width
func (m *ResultsModel) renderContent() {
	if m.markdown == "" {
		return
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		if m.ready {
			m.viewport.SetContent(m.markdown)
		}

		return
	}

	m.renderer = renderer

	rendered, err := renderer.Render(m.markdown)
	if err != nil {
		rendered = m.markdown
	}

	if m.ready {
		m.viewport.SetContent(rendered)
	}
}

func buildResultsMarkdown(msg AnalysisMsg) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", msg.archetype.Name)

	if msg.archetype.Tagline != "" {
		fmt.Fprintf(&b, "*%s*\n\n", msg.archetype.Tagline)
	}

	if msg.insight.Text != "" {
		b.WriteString(msg.insight.Text)
		b.WriteString("\n\n")
	}

	b.WriteString("## Your matches\n\n")

	for i, r := range msg.recommendations {
		f := r.Fragrance

		fmt.Fprintf(&b, "%d. **%s** by %s", i+1, f.Name, f.BrandName)

		if len(f.Accords) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(firstN(f.Accords, 3), ", "))
		}

		if f.SamplePriceUSD > 0 {
			fmt.Fprintf(&b, ", sample $%d", f.SamplePriceUSD)
		}

		b.WriteString("\n")
	}

	return b.String()
}
