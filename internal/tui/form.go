package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"radtui/pkg/record"
)

const (
	fieldMAC = iota
	fieldVLAN
	fieldDeviceName
	fieldCount
)

const (
	errMsgInvalidMAC  = "Invalid MAC address format!"
	errMsgInvalidVLAN = "VLAN must be a number!"
)

var fieldLabels = [fieldCount]string{
	"MAC Address (xx:xx:xx:xx:xx:xx):",
	"VLAN ID (number):",
	"Device Name:",
}

// formResult is what a key press did to the form.
type formResult int

const (
	formEditing formResult = iota
	formSubmitted
	formCancelled
)

// editForm holds the drafts of one add or edit operation. The store is only
// touched once the form is submitted.
type editForm struct {
	index  int // Store index being edited, or -1 when adding
	active int
	cursor int
	drafts [fieldCount][]rune
	err    string
	result record.Record
}

func newEditForm(index int, r record.Record) editForm {
	f := editForm{index: index}
	f.drafts[fieldMAC] = []rune(r.MAC)
	f.drafts[fieldVLAN] = []rune(r.VLAN)
	f.drafts[fieldDeviceName] = []rune(r.DeviceName)
	f.cursor = len(f.drafts[fieldMAC])
	return f
}

func (f editForm) adding() bool {
	return f.index < 0
}

func (f editForm) value(field int) string {
	return string(f.drafts[field])
}

// handleKey applies one key press. On formSubmitted the validated record is
// available in f.result.
func (f editForm) handleKey(msg tea.KeyMsg) (editForm, formResult) {
	switch msg.Type {
	case tea.KeyEnter:
		return f.submit()
	case tea.KeyEsc:
		return f, formCancelled
	case tea.KeyTab, tea.KeyDown:
		f.focus((f.active + 1) % fieldCount)
		return f, formEditing
	case tea.KeyShiftTab, tea.KeyUp:
		f.focus((f.active + fieldCount - 1) % fieldCount)
		return f, formEditing
	}

	f.err = ""
	draft := f.drafts[f.active]

	switch msg.Type {
	case tea.KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}
	case tea.KeyRight:
		if f.cursor < len(draft) {
			f.cursor++
		}
	case tea.KeyHome, tea.KeyCtrlA:
		f.cursor = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		f.cursor = len(draft)
	case tea.KeyBackspace:
		if f.cursor > 0 {
			f.drafts[f.active] = append(draft[:f.cursor-1:f.cursor-1], draft[f.cursor:]...)
			f.cursor--
		}
	case tea.KeyDelete:
		if f.cursor < len(draft) {
			f.drafts[f.active] = append(draft[:f.cursor:f.cursor], draft[f.cursor+1:]...)
		}
	case tea.KeySpace:
		f.insert([]rune{' '})
	case tea.KeyRunes:
		if !msg.Paste || !strings.ContainsAny(string(msg.Runes), "\r\n") {
			f.insert(msg.Runes)
		}
	}
	return f, formEditing
}

func (f *editForm) focus(field int) {
	f.active = field
	f.cursor = len(f.drafts[field])
	f.err = ""
}

// insert adds the printable ASCII runes of rs at the cursor.
func (f *editForm) insert(rs []rune) {
	var printable []rune
	for _, r := range rs {
		if r >= 0x20 && r <= 0x7e {
			printable = append(printable, r)
		}
	}
	if len(printable) == 0 {
		return
	}

	draft := f.drafts[f.active]
	out := make([]rune, 0, len(draft)+len(printable))
	out = append(out, draft[:f.cursor]...)
	out = append(out, printable...)
	out = append(out, draft[f.cursor:]...)
	f.drafts[f.active] = out
	f.cursor += len(printable)
}

func (f editForm) submit() (editForm, formResult) {
	mac := record.NormalizeMAC(f.value(fieldMAC))
	if !record.IsValidMAC(mac) {
		f.err = errMsgInvalidMAC
		return f, formEditing
	}
	vlan := strings.TrimSpace(f.value(fieldVLAN))
	if !record.IsValidVLAN(vlan) {
		f.err = errMsgInvalidVLAN
		return f, formEditing
	}

	r, err := record.New(mac, vlan, f.value(fieldDeviceName))
	if err != nil {
		f.err = err.Error()
		return f, formEditing
	}
	f.err = ""
	f.result = r
	return f, formSubmitted
}
