package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"

	"radtui/internal/core"
)

// View represents the different screens of the TUI.
type View int

const (
	ViewList View = iota
	ViewEdit
	ViewConfirm
	ViewMessage
	ViewQuitting
)

// confirmAction is the operation a confirm popup guards.
type confirmAction int

const (
	confirmDelete confirmAction = iota
	confirmRestart
	confirmQuit
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	macColumnWidth  = 20
	vlanColumnWidth = 6
	minNameWidth    = 12

	// chromeHeight covers the title bar, table border and header and the
	// status bar.
	chromeHeight = 7
)

// Restarter restarts the RADIUS service.
type Restarter interface {
	Restart(ctx context.Context) error
}

// Options wires the TUI to its collaborators.
type Options struct {
	File        core.UsersFile
	Store       *core.Store
	Restarter   Restarter
	ServiceName string
	// CopyToClipboard defaults to clipboard.WriteAll.
	CopyToClipboard func(string) error
}

// model is the Bubbletea model for the TUI.
type model struct {
	table table.Model

	store       *core.Store
	file        core.UsersFile
	restarter   Restarter
	serviceName string
	copyText    func(string) error

	ActiveView View
	form       editForm
	confirm    confirmAction
	prompt     string
	message    string
	busy       bool   // a restart is running; the message popup ignores keys
	status     string // one-shot notice shown in the status bar

	width  int
	height int
}

// InitialModel creates the initial TUI model.
func InitialModel(opts Options) model {
	copyFn := opts.CopyToClipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "radiusd"
	}

	keys := table.DefaultKeyMap()
	// "d" and "u" are record commands here, not half-page scrolling.
	keys.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"))
	keys.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"))

	t := table.New(
		table.WithColumns(columns(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-chromeHeight),
		table.WithKeyMap(keys),
	)
	t.SetStyles(tableStyles())

	m := model{
		table:       t,
		store:       opts.Store,
		file:        opts.File,
		restarter:   opts.Restarter,
		serviceName: serviceName,
		copyText:    copyFn,
		ActiveView:  ViewList,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.refreshRows()
	return m
}

func columns(width int) []table.Column {
	// Each column carries one cell of padding on both sides, and the
	// surrounding border takes two more.
	nameWidth := max(width-macColumnWidth-vlanColumnWidth-6-2, minNameWidth)
	return []table.Column{
		{Title: "MAC Address", Width: macColumnWidth},
		{Title: "VLAN", Width: vlanColumnWidth},
		{Title: "Device Name", Width: nameWidth},
	}
}

// refreshRows rebuilds the table from the store and keeps the cursor on a
// valid row.
func (m *model) refreshRows() {
	records := m.store.Records()
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{r.MAC, r.VLAN, r.DeviceName}
	}
	m.table.SetRows(rows)

	switch cursor := m.table.Cursor(); {
	case len(rows) == 0:
		m.table.SetCursor(0)
	case cursor >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	case cursor < 0:
		m.table.SetCursor(0)
	}
}

// selected returns the store index under the cursor, or -1 when empty.
func (m model) selected() int {
	if m.store.Len() == 0 {
		return -1
	}
	return m.table.Cursor()
}
