package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorGold      = lipgloss.Color("#D4AF37")
	colorRose      = lipgloss.Color("#C48793")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			MarginBottom(2)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	commandDescStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				PaddingLeft(1)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginBottom(1)

	optionStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	optionSelectedStyle = lipgloss.NewStyle().
				Foreground(colorGold).
				Bold(true).
				PaddingLeft(2)

	resultNameStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	resultBrandStyle = lipgloss.NewStyle().
				Foreground(colorRose)

	resultMetaStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ███████╗ ██████╗███████╗███╗   ██╗████████╗███╗   ███╗ █████╗ ████████╗ ██████╗██╗  ██╗
  ██╔════╝██╔════╝██╔════╝████╗  ██║╚══██╔══╝████╗ ████║██╔══██╗╚══██╔══╝██╔════╝██║  ██║
  ███████╗██║     █████╗  ██╔██╗ ██║   ██║   ██╔████╔██║███████║   ██║   ██║     ███████║
  ╚════██║██║     ██╔══╝  ██║╚██╗██║   ██║   ██║╚██╔╝██║██╔══██║   ██║   ██║     ██╔══██║
  ███████║╚██████╗███████╗██║ ╚████║   ██║   ██║ ╚═╝ ██║██║  ██║   ██║   ╚██████╗██║  ██║
  ╚══════╝ ╚═════╝╚══════╝╚═╝  ╚═══╝   ╚═╝   ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝
`
