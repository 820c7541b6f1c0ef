package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"radtui/internal/core"
	"radtui/internal/logger"
	"radtui/pkg/record"
)

// restartDoneMsg reports the outcome of a service restart.
type restartDoneMsg struct {
	err error
}

// restartCmd runs the restart off the update loop.
func restartCmd(r Restarter) tea.Cmd {
	return func() tea.Msg {
		return restartDoneMsg{err: r.Restart(context.Background())}
	}
}

// Update handles all Bubbletea update logic for the TUI model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case restartDoneMsg:
		return handleRestartDone(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}
	return m, nil
}

func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.ActiveView {
	case ViewQuitting:
		return m, nil
	case ViewEdit:
		return handleEditKey(m, msg)
	case ViewConfirm:
		return handleConfirmKey(m, msg)
	case ViewMessage:
		if m.busy {
			return m, nil
		}
		m.message = ""
		m.ActiveView = ViewList
		return m, nil
	}
	return handleListKey(m, msg)
}

func handleListKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "f10", "q", "ctrl+c":
		if m.store.Dirty() {
			return askConfirm(m, confirmQuit, "Quit without saving changes?"), nil
		}
		return quit(m)

	case "enter":
		i := m.selected()
		if i < 0 {
			return m, nil
		}
		r, err := m.store.Get(i)
		if err != nil {
			return showMessage(m, err.Error()), nil
		}
		m.form = newEditForm(i, r)
		m.ActiveView = ViewEdit
		return m, nil

	case "a", "A":
		m.form = newEditForm(-1, record.Record{})
		m.ActiveView = ViewEdit
		return m, nil

	case "d", "D":
		if m.selected() < 0 {
			return m, nil
		}
		return askConfirm(m, confirmDelete, "Delete selected entry? This cannot be undone!"), nil

	case "r", "R":
		return askConfirm(m, confirmRestart, fmt.Sprintf("Restart %s service now?", m.serviceName)), nil

	case "f2", "ctrl+s":
		return save(m), nil

	case "c", "C":
		return copySelected(m), nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func handleEditKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	form, result := m.form.handleKey(msg)
	m.form = form

	switch result {
	case formCancelled:
		m.ActiveView = ViewList
	case formSubmitted:
		log := logger.WithComponent("tui")
		if form.adding() {
			m.store.Add(form.result)
			m.refreshRows()
			m.table.SetCursor(m.store.Len() - 1)
			log.Debug().Str("record", form.result.String()).Msg("record added")
		} else {
			if err := m.store.Update(form.index, form.result); err != nil {
				return showMessage(m, err.Error()), nil
			}
			m.refreshRows()
			log.Debug().Int("index", form.index).Str("record", form.result.String()).Msg("record updated")
		}
		m.ActiveView = ViewList
	}
	return m, nil
}

func handleConfirmKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.ActiveView = ViewList
		return confirmed(m)
	case "n", "N", "esc":
		m.ActiveView = ViewList
	}
	return m, nil
}

func confirmed(m model) (model, tea.Cmd) {
	switch m.confirm {
	case confirmDelete:
		i := m.selected()
		if err := m.store.Delete(i); err != nil {
			return showMessage(m, err.Error()), nil
		}
		m.refreshRows()
		log := logger.WithComponent("tui")
		log.Debug().Int("index", i).Msg("record deleted")
		return m, nil

	case confirmRestart:
		if m.restarter == nil {
			return showMessage(m, fmt.Sprintf("No restart command configured for %s.", m.serviceName)), nil
		}
		m = showMessage(m, fmt.Sprintf("Restarting %s...", m.serviceName))
		m.busy = true
		return m, restartCmd(m.restarter)

	case confirmQuit:
		return quit(m)
	}
	return m, nil
}

func askConfirm(m model, action confirmAction, prompt string) model {
	m.confirm = action
	m.prompt = prompt
	m.ActiveView = ViewConfirm
	return m
}

func showMessage(m model, message string) model {
	m.message = message
	m.ActiveView = ViewMessage
	return m
}

func quit(m model) (model, tea.Cmd) {
	m.ActiveView = ViewQuitting
	return m, tea.Quit
}

func save(m model) model {
	if err := core.Save(m.file, m.store); err != nil {
		log := logger.WithComponent("tui")
		log.Error().Err(err).Str("file", m.file.Path()).Msg("save failed")
		return showMessage(m, fmt.Sprintf("Failed to save changes:\n%v", err))
	}
	return showMessage(m, "Changes saved successfully.")
}

func copySelected(m model) model {
	i := m.selected()
	if i < 0 {
		return m
	}
	r, err := m.store.Get(i)
	if err != nil {
		return m
	}
	if err := m.copyText(r.MAC); err != nil {
		m.status = fmt.Sprintf("Clipboard unavailable: %v", err)
		return m
	}
	m.status = fmt.Sprintf("Copied %s to clipboard", r.MAC)
	return m
}

func handleRestartDone(m model, msg restartDoneMsg) (model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		return showMessage(m, fmt.Sprintf("Failed to restart %s:\n%v", m.serviceName, msg.err)), nil
	}
	return showMessage(m, fmt.Sprintf("%s service restarted successfully!", m.serviceName)), nil
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.height = msg.Height
	m.width = msg.Width
	m.table.SetColumns(columns(msg.Width))
	m.table.SetWidth(msg.Width - 2)
	m.table.SetHeight(max(msg.Height-chromeHeight, 3))
	return m, nil
}
