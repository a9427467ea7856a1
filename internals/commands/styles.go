package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const boxWidth = 80

var (
	styleErrBox = lipgloss.NewStyle().
			Width(boxWidth).
			MarginTop(1).
			Padding(1, 2).
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b71c1c", Dark: "#fa8a8a"}).
			Background(lipgloss.AdaptiveColor{Light: "#ffcdd2", Dark: "#512222"}).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderLeftForeground(lipgloss.Color("#f86262"))

	styleErrCode = lipgloss.NewStyle().Faint(true)

	styleHelpBox = lipgloss.NewStyle().
			Width(boxWidth).
			Padding(1, 2, 0).
			Margin(0, 1).
			Background(lipgloss.AdaptiveColor{Light: "#e9e9e9", Dark: "#2f2f2f"})
)

// ErrorBox renders an error (and optional help text below it)
func ErrorBox(errorString string, helpText string) string {
	return errorBox("", errorString, helpText)
}

func errorBox(code string, errorString string, helpText string) string {
	title := Emoji("❗ ") + "Error: " + errorString
	if code != "" {
		title += " " + styleErrCode.Render("["+code+"]")
	}
	blocks := []string{styleErrBox.Render(title)}
	if helpText != "" {
		blocks = append(blocks, styleHelpBox.Render(Emoji("❔ ")+helpText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// suggestionBox lists suggestions as bullet points
func suggestionBox(suggestions []string) string {
	b := strings.Builder{}
	b.WriteString(Emoji("📎 "))
	if len(suggestions) == 1 {
		b.WriteString("Suggestion:\n")
	} else {
		b.WriteString("Suggestions:\n")
	}
	for _, s := range suggestions {
		b.WriteString(" ⦁ " + s + "\n")
	}
	return styleHelpBox.Render(b.String())
}
