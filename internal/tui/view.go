package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	appTitle = "RADIUS Users Editor"

	formWidth       = 56
	formInputWidth  = 48
	minConfirmWidth = 38
	messageWidth    = 50
)

var (
	barColor    = lipgloss.Color("#005F87")
	accentColor = lipgloss.Color("#AF5FAF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(barColor)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(barColor)
	modifiedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00")).
			Background(barColor)
	tableBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555"))
	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accentColor)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	inputStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#303030"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		BorderBottom(true).
		Bold(true).
		Foreground(barColor)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(accentColor).
		Bold(false)
	return s
}

// ModelView renders the TUI model's view as a string.
func ModelView(m model) string {
	switch m.ActiveView {
	case ViewQuitting:
		return ""
	case ViewEdit:
		return overlay(m, formView(m.form))
	case ViewConfirm:
		return overlay(m, confirmView(m.prompt))
	case ViewMessage:
		return overlay(m, messageView(m.message, m.busy))
	default:
		return listView(m)
	}
}

func listView(m model) string {
	title := titleStyle.Width(m.width).Align(lipgloss.Center).Render(appTitle)
	records := tableBoxStyle.Render(m.table.View())
	return lipgloss.JoinVertical(lipgloss.Left, title, records, statusBar(m))
}

func statusBar(m model) string {
	text := m.status
	if text == "" {
		text = fmt.Sprintf("↑/↓: Navigate | Enter: Edit | a: Add | d: Delete | r: Restart %s | c: Copy MAC | F2: Save | F10: Quit", m.serviceName)
	}
	text = fmt.Sprintf(" Total entries: %d | %s", m.store.Len(), text)

	marker := ""
	if m.store.Dirty() {
		marker = " [modified]"
	}

	avail := max(m.width-runewidth.StringWidth(marker), 0)
	text = runewidth.FillRight(runewidth.Truncate(text, avail, "…"), avail)
	return statusStyle.Render(text) + modifiedStyle.Render(marker)
}

// overlay centers a popup on the screen.
func overlay(m model, popup string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
}

func popupTitle(title string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, popupTitleStyle.Render(" "+title+" "))
}

func formView(f editForm) string {
	inner := formWidth - 4
	title := "Edit Entry"
	if f.adding() {
		title = "Add Entry"
	}

	lines := []string{popupTitle(title, inner), ""}
	for field := 0; field < fieldCount; field++ {
		lines = append(lines,
			labelStyle.Render(fieldLabels[field]),
			renderInput(f.drafts[field], f.cursor, field == f.active),
			"",
		)
	}

	footer := hintStyle.Render("Enter=Save  Esc=Cancel  Tab=Next field")
	if f.err != "" {
		footer = errorStyle.Render(f.err)
	}
	lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, footer))

	return popupStyle.Width(formWidth - 2).Render(strings.Join(lines, "\n"))
}

// renderInput draws a fixed-width input box, scrolled so the cursor stays
// visible. Drafts hold printable ASCII only, so one rune is one cell.
func renderInput(draft []rune, cursor int, active bool) string {
	if !active {
		start := max(len(draft)-formInputWidth, 0)
		return inputStyle.Render(runewidth.FillRight(string(draft[start:]), formInputWidth))
	}

	start := max(cursor-formInputWidth+1, 0)
	end := min(len(draft), start+formInputWidth)
	visible := draft[start:end]
	at := cursor - start

	under := " "
	after := ""
	if at < len(visible) {
		under = string(visible[at])
		after = string(visible[at+1:])
	}
	used := len(visible)
	if at == len(visible) {
		used++
	}

	return inputStyle.Render(string(visible[:at])) +
		cursorStyle.Render(under) +
		inputStyle.Render(after+strings.Repeat(" ", max(formInputWidth-used, 0)))
}

func confirmView(prompt string) string {
	width := max(runewidth.StringWidth(prompt)+10, minConfirmWidth)
	inner := width - 4
	body := strings.Join([]string{
		popupTitle("Confirm", inner),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, prompt),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, labelStyle.Render("Y=Yes / N=No")),
	}, "\n")
	return popupStyle.Width(width - 2).Render(body)
}

func messageView(message string, busy bool) string {
	inner := messageWidth - 4
	lines := []string{popupTitle("Message", inner), ""}
	for _, line := range strings.Split(wrapText(message, inner), "\n") {
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, line))
	}

	hint := "<Press any key>"
	if busy {
		hint = "Please wait..."
	}
	lines = append(lines, "", lipgloss.PlaceHorizontal(inner, lipgloss.Right, hintStyle.Render(hint)))

	return popupStyle.Width(messageWidth - 2).Render(strings.Join(lines, "\n"))
}
