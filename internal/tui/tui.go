package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"radtui/internal/logger"
)

// wrapText wraps s to lines no wider than maxWidth display cells, breaking on
// word boundaries. A word wider than maxWidth gets a line of its own.
func wrapText(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		width := 0
		for _, word := range words {
			w := runewidth.StringWidth(word)
			if width > 0 && width+1+w > maxWidth {
				lines = append(lines, line.String())
				line.Reset()
				width = 0
			}
			if width > 0 {
				line.WriteByte(' ')
				width++
			}
			line.WriteString(word)
			width += w
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// Init initializes the TUI model and returns any initial commands to run.
func (m model) Init() tea.Cmd {
	return nil
}

// Run launches the editor on an already loaded store and blocks until the
// user quits.
func Run(opts Options) error {
	if opts.Store == nil || opts.File == nil {
		return fmt.Errorf("tui: store and users file are required")
	}

	log := logger.WithComponent("tui")
	log.Info().Str("file", opts.File.Path()).Int("records", opts.Store.Len()).Msg("starting editor")

	p := tea.NewProgram(&teaModelAdapter{InitialModel(opts)}, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if a, ok := final.(*teaModelAdapter); ok && a.m.store.Dirty() {
		log.Warn().Str("file", opts.File.Path()).Msg("quit with unsaved changes")
	}
	return nil
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
