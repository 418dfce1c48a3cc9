package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit         key.Binding
	Help         key.Binding
	CycleTheme   key.Binding
	ToggleLayout key.Binding
	Logout       key.Binding

	// Screens
	Users    key.Binding
	Requests key.Binding
	Forgot   key.Binding

	// Forms
	NextField key.Binding
	PrevField  key.Binding
	PrevOption key.Binding
	NextOption key.Binding
	Submit     key.Binding
	Back       key.Binding

	// Lists
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Search    key.Binding
	CycleView key.Binding
	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding

	// Confirmation
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Salir"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Ayuda"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cambiar tema"),
		),
		ToggleLayout: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Menú horizontal/vertical"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Cerrar sesión"),
		),

		Users: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Usuarios"),
		),
		Requests: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Solicitudes TI"),
		),
		Forgot: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "Recuperar contraseña"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Campo siguiente"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Campo anterior"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Opción anterior"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Opción siguiente"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirmar"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Volver"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Bajar"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Inicio"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Final"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Buscar"),
		),
		CycleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Cambiar vista"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Nuevo"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Editar"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Eliminar"),
		),

		Yes: key.NewBinding(
			key.WithKeys("y", "s"),
			key.WithHelp("y/s", "Sí"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "No"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Users, k.Requests, k.Logout},
		{k.Up, k.Down, k.Top, k.Bottom, k.Submit, k.Back},
		{k.Search, k.CycleView, k.New, k.Edit, k.Delete},
		{k.NextField, k.PrevField, k.PrevOption, k.NextOption},
		{k.ToggleLayout, k.CycleTheme, k.Help, k.Quit},
	}
}
