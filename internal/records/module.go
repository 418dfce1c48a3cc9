package records

import (
	"fmt"

	"go.uber.org/zap"
)

// SubView is the state of a module's sub-view machine.
type SubView int

const (
	SubViewList SubView = iota
	SubViewDetail
	SubViewForm
)

func (s SubView) String() string {
	switch s {
	case SubViewDetail:
		return "detail"
	case SubViewForm:
		return "form"
	default:
		return "list"
	}
}

// ViewMode is the presentational layout of the list sub-view.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewCards
	ViewListView
	ViewDashboard
)

var viewModes = []ViewMode{ViewList, ViewCards, ViewListView, ViewDashboard}

func (v ViewMode) String() string {
	switch v {
	case ViewCards:
		return "cards"
	case ViewListView:
		return "listview"
	case ViewDashboard:
		return "dashboard"
	default:
		return "list"
	}
}

// Label is the on-screen name of the view mode.
func (v ViewMode) Label() string {
	switch v {
	case ViewCards:
		return "Tarjetas"
	case ViewListView:
		return "Lista"
	case ViewDashboard:
		return "Dashboard"
	default:
		return "Tabla"
	}
}

// ParseViewMode maps a view mode name back to its value.
func ParseViewMode(name string) (ViewMode, error) {
	for _, v := range viewModes {
		if v.String() == name {
			return v, nil
		}
	}
	return ViewList, fmt.Errorf("unknown view mode %q", name)
}

// Module is the per-module list state for one record type.
type Module[T Record] struct {
	name       string
	coll       *Collection[T]
	newRecord  func() T
	logger     *zap.Logger
	term       string
	view       ViewMode
	sub        SubView
	selected   int // record id; 0 when nothing is selected
	editing    bool
	confirming bool
}

// NewModule builds a module over coll. newRecord supplies the defaults of a
// blank form.
func NewModule[T Record](name string, coll *Collection[T], newRecord func() T, logger *zap.Logger) *Module[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Module[T]{
		name:      name,
		coll:      coll,
		newRecord: newRecord,
		logger:    logger.With(zap.String("module", name)),
	}
}

// Name identifies the module in logs.
func (m *Module[T]) Name() string { return m.name }

// Collection exposes the underlying records.
func (m *Module[T]) Collection() *Collection[T] { return m.coll }

// Search replaces the search term.
func (m *Module[T]) Search(term string) { m.term = term }

// Term returns the current search term.
func (m *Module[T]) Term() string { return m.term }

// Visible returns the records matching the current search term.
func (m *Module[T]) Visible() []T { return m.coll.Filter(m.term) }

// ViewMode returns the current view mode.
func (m *Module[T]) ViewMode() ViewMode { return m.view }

// SetViewMode selects a view mode; it has no effect on data.
func (m *Module[T]) SetViewMode(v ViewMode) { m.view = v }

// CycleViewMode advances to the next view mode.
func (m *Module[T]) CycleViewMode() ViewMode {
	m.view = viewModes[(int(m.view)+1)%len(viewModes)]
	return m.view
}

// SubView returns the active sub-view.
func (m *Module[T]) SubView() SubView { return m.sub }

// Editing reports whether the form edits an existing record.
func (m *Module[T]) Editing() bool { return m.editing }

// Confirming reports whether a delete is awaiting confirmation.
func (m *Module[T]) Confirming() bool { return m.confirming }

// Selected returns the selected record.
func (m *Module[T]) Selected() (T, bool) {
	if m.selected == 0 {
		var zero T
		return zero, false
	}
	return m.coll.Get(m.selected)
}

// Select points the module at the record with id and shows its detail.
func (m *Module[T]) Select(id int) error {
	if _, ok := m.coll.Get(id); !ok {
		return fmt.Errorf("select %d: %w", id, ErrNotFound)
	}
	m.selected = id
	m.sub = SubViewDetail
	m.confirming = false
	return nil
}

// Back clears the selection and returns to the list.
func (m *Module[T]) Back() {
	m.toList()
}

// New opens a blank form.
func (m *Module[T]) New() T {
	m.selected = 0
	m.editing = false
	m.confirming = false
	m.sub = SubViewForm
	return m.newRecord()
}

// Edit opens the form pre-filled with the selected record.
func (m *Module[T]) Edit() (T, error) {
	r, ok := m.Selected()
	if !ok || m.sub != SubViewDetail {
		var zero T
		return zero, fmt.Errorf("edit: %w", ErrNotFound)
	}
	m.editing = true
	m.confirming = false
	m.sub = SubViewForm
	return r, nil
}

// Cancel abandons the form and returns to the list.
func (m *Module[T]) Cancel() {
	m.toList()
}

// Save validates r and stores it. Editing replaces the record with the same
// id; otherwise r is appended under a new id. The module returns to the list.
func (m *Module[T]) Save(r T) (T, error) {
	if err := Validate(r); err != nil {
		return r, err
	}
	if m.editing {
		if err := m.coll.Replace(r); err != nil {
			return r, err
		}
		m.logger.Info("record updated", zap.Int("id", r.RecordID()))
	} else {
		r = m.coll.Add(r)
		m.logger.Info("record created", zap.Int("id", r.RecordID()))
	}
	m.toList()
	return r, nil
}

// RequestDelete opens the confirmation gate for the selected record.
func (m *Module[T]) RequestDelete() error {
	if _, ok := m.Selected(); !ok || m.sub != SubViewDetail {
		return fmt.Errorf("delete: %w", ErrNotFound)
	}
	m.confirming = true
	return nil
}

// ConfirmDelete resolves the confirmation gate. Declining leaves the
// collection untouched and keeps the detail open; accepting removes exactly
// the selected record and returns to the list.
func (m *Module[T]) ConfirmDelete(accept bool) error {
	if !m.confirming {
		return nil
	}
	m.confirming = false
	if !accept {
		return nil
	}
	id := m.selected
	if err := m.coll.Remove(id); err != nil {
		return err
	}
	m.logger.Info("record deleted", zap.Int("id", id))
	m.toList()
	return nil
}

func (m *Module[T]) toList() {
	m.selected = 0
	m.editing = false
	m.confirming = false
	m.sub = SubViewList
}
