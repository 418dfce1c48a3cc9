package ui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/enlace/internal/records"
)

// panel is a management module as seen by the root model.
type panel interface {
	Title() string
	// Capturing reports whether keystrokes belong to a text input or an open
	// dialog, in which case the root model does not interpret shortcuts.
	Capturing() bool
	HandleKey(msg tea.KeyMsg, keys keyMap) (tea.Cmd, string)
	View(theme Theme, width, height int) string
	ViewMode() records.ViewMode
	SubView() records.SubView
	Reset()
}

// section binds a records.Module to its presentation and input state.
type section[T records.Record] struct {
	mod    *records.Module[T]
	schema schema[T]
	logger *zap.Logger

	cursor    int
	searching bool
	search    textinput.Model

	draft   T
	inputs  []textinput.Model
	focus   int
	missing map[string]bool
	invalid map[string]bool
	formErr string

	modal Modal
	// fromList is set when a delete was requested from a list row; declining
	// it returns to the list instead of the detail.
	fromList bool
	note     string
}

func newSection[T records.Record](mod *records.Module[T], sc schema[T], logger *zap.Logger) *section[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Buscar..."
	search.CharLimit = 64
	return &section[T]{
		mod:    mod,
		schema: sc,
		logger: logger.With(zap.String("panel", mod.Name())),
		search: search,
	}
}

func (s *section[T]) Title() string { return s.schema.title }

func (s *section[T]) Capturing() bool {
	return s.modal != nil || s.searching || s.mod.SubView() == records.SubViewForm
}

func (s *section[T]) ViewMode() records.ViewMode { return s.mod.ViewMode() }

func (s *section[T]) SubView() records.SubView { return s.mod.SubView() }

// Reset returns the module to its list. Records, search term and view mode
// are kept.
func (s *section[T]) Reset() {
	if s.mod.Confirming() {
		_ = s.mod.ConfirmDelete(false)
	}
	s.modal = nil
	s.fromList = false
	s.mod.Back()
	s.searching = false
	s.search.Blur()
	s.inputs = nil
}

// HandleKey routes a key press to the active sub-view. The returned string is
// a status line message, empty when nothing noteworthy happened.
func (s *section[T]) HandleKey(msg tea.KeyMsg, keys keyMap) (tea.Cmd, string) {
	s.note = ""
	if s.modal != nil {
		next, done := s.modal.Update(msg, keys)
		if done {
			s.modal = nil
		} else {
			s.modal = next
		}
		return nil, s.note
	}
	if s.searching {
		return s.handleSearchKey(msg, keys), s.note
	}

	var cmd tea.Cmd
	switch s.mod.SubView() {
	case records.SubViewForm:
		cmd = s.handleFormKey(msg, keys)
	case records.SubViewDetail:
		cmd = s.handleDetailKey(msg, keys)
	default:
		cmd = s.handleListKey(msg, keys)
	}
	return cmd, s.note
}

func (s *section[T]) handleListKey(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	visible := s.mod.Visible()
	switch {
	case key.Matches(msg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, keys.Down):
		if s.cursor < len(visible)-1 {
			s.cursor++
		}
	case key.Matches(msg, keys.Top):
		s.cursor = 0
	case key.Matches(msg, keys.Bottom):
		s.cursor = max(len(visible)-1, 0)
	case key.Matches(msg, keys.CycleView):
		mode := s.mod.CycleViewMode()
		s.logger.Debug("view mode changed", zap.Stringer("mode", mode))
	case key.Matches(msg, keys.Search):
		s.searching = true
		s.search.SetValue(s.mod.Term())
		s.search.CursorEnd()
		return s.search.Focus()
	case key.Matches(msg, keys.New):
		s.openForm(s.mod.New())
		return textinput.Blink
	case key.Matches(msg, keys.Submit):
		s.selectRow(visible)
	case key.Matches(msg, keys.Edit):
		if s.selectRow(visible) {
			return s.startEdit()
		}
	case key.Matches(msg, keys.Delete):
		if s.selectRow(visible) {
			s.startDelete()
			s.fromList = s.modal != nil
		}
	case key.Matches(msg, keys.Back):
		if s.mod.Term() != "" {
			s.mod.Search("")
			s.cursor = 0
		}
	}
	return nil
}

// selectRow opens the detail of the record under the cursor. The dashboard has
// no rows.
func (s *section[T]) selectRow(visible []T) bool {
	if s.mod.ViewMode() == records.ViewDashboard || len(visible) == 0 {
		return false
	}
	s.cursor = min(s.cursor, len(visible)-1)
	if err := s.mod.Select(visible[s.cursor].RecordID()); err != nil {
		s.note = err.Error()
		return false
	}
	return true
}

func (s *section[T]) handleSearchKey(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Submit):
		s.stopSearch(true)
		return nil
	case key.Matches(msg, keys.Back):
		s.stopSearch(false)
		return nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.mod.Search(s.search.Value())
	s.cursor = 0
	return cmd
}

// stopSearch leaves search mode, keeping the term only when keep is set.
func (s *section[T]) stopSearch(keep bool) {
	s.searching = false
	s.search.Blur()
	if !keep {
		s.search.SetValue("")
		s.mod.Search("")
		s.cursor = 0
	}
}

func (s *section[T]) handleDetailKey(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Edit):
		return s.startEdit()
	case key.Matches(msg, keys.Delete):
		s.startDelete()
	case key.Matches(msg, keys.Back):
		s.mod.Back()
	}
	return nil
}

func (s *section[T]) startEdit() tea.Cmd {
	r, err := s.mod.Edit()
	if err != nil {
		s.note = err.Error()
		return nil
	}
	s.openForm(r)
	return textinput.Blink
}

func (s *section[T]) startDelete() {
	if err := s.mod.RequestDelete(); err != nil {
		s.note = err.Error()
		return
	}
	r, _ := s.mod.Selected()
	s.modal = newConfirmModal(
		"Eliminar "+s.schema.singular,
		fmt.Sprintf("¿Está seguro de que desea eliminar el registro #%d? Esta acción no se puede deshacer.", r.RecordID()),
		s.answerDelete,
	)
}

func (s *section[T]) answerDelete(accept bool) {
	fromList := s.fromList
	s.fromList = false
	r, _ := s.mod.Selected()
	if err := s.mod.ConfirmDelete(accept); err != nil {
		s.note = err.Error()
		return
	}
	if !accept {
		if fromList {
			s.mod.Back()
		}
		return
	}
	s.note = fmt.Sprintf("Registro #%d eliminado", r.RecordID())
	s.cursor = min(s.cursor, max(len(s.mod.Visible())-1, 0))
}

func (s *section[T]) openForm(r T) {
	s.draft = r
	s.missing = nil
	s.invalid = nil
	s.formErr = ""
	s.focus = 0
	s.inputs = make([]textinput.Model, len(s.schema.fields))
	for i, f := range s.schema.fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		in.SetValue(f.value(r))
		s.inputs[i] = in
	}
	s.inputs[0].Focus()
}

func (s *section[T]) handleFormKey(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		s.mod.Cancel()
		s.inputs = nil
		return nil
	case key.Matches(msg, keys.NextField):
		return s.moveFocus(1)
	case key.Matches(msg, keys.PrevField):
		return s.moveFocus(-1)
	case key.Matches(msg, keys.Submit):
		s.submitForm()
		return nil
	}
	// Option fields behave as selectors and take no typed text.
	if len(s.schema.fields[s.focus].options) > 0 {
		switch {
		case key.Matches(msg, keys.PrevOption):
			s.cycleOption(-1)
		case key.Matches(msg, keys.NextOption):
			s.cycleOption(1)
		}
		return nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s *section[T]) moveFocus(delta int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.inputs)) % len(s.inputs)
	return s.inputs[s.focus].Focus()
}

// cycleOption moves the focused selector by delta, wrapping around. A value
// outside the options lands on the first or last one.
func (s *section[T]) cycleOption(delta int) {
	options := s.schema.fields[s.focus].options
	i := slices.Index(options, s.inputs[s.focus].Value())
	if i < 0 && delta < 0 {
		i = 0
	}
	n := len(options)
	s.inputs[s.focus].SetValue(options[(i+delta+n)%n])
	delete(s.invalid, s.schema.fields[s.focus].name)
}

func (s *section[T]) submitForm() {
	r := s.draft
	for i, f := range s.schema.fields {
		if err := f.set(&r, s.inputs[i].Value()); err != nil {
			s.formErr = err.Error()
			return
		}
	}
	editing := s.mod.Editing()
	saved, err := s.mod.Save(r)
	switch {
	case errors.Is(err, records.ErrRequired):
		s.missing = names(r.Missing())
		s.invalid = nil
		s.formErr = "Complete los campos obligatorios"
		return
	case errors.Is(err, records.ErrInvalid):
		if c, ok := any(r).(records.Constrained); ok {
			s.invalid = names(c.Invalid())
		}
		s.missing = nil
		s.formErr = "Seleccione un valor válido de la lista"
		return
	}
	if err != nil {
		s.formErr = err.Error()
		s.logger.Warn("save failed", zap.Error(err))
		return
	}
	s.inputs = nil
	if editing {
		s.note = fmt.Sprintf("Cambios guardados (#%d)", saved.RecordID())
	} else {
		s.note = fmt.Sprintf("Registro #%d creado", saved.RecordID())
	}
}

func names(list []string) map[string]bool {
	out := make(map[string]bool, len(list))
	for _, name := range list {
		out[name] = true
	}
	return out
}
