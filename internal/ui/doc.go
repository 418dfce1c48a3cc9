// Package ui provides the Bubble Tea terminal interface for Enlace.
//
// # Architecture Overview
//
// Model is the root tea.Model. It owns the screen router, the login and
// recovery gates and one panel per management module, and renders whichever
// screen the router reports as current. Timer expiries arrive as
// delay.ExpiredMsg and are routed to the gate that armed them.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View and global key handling
//   - login.go: login form, login progress and password recovery screens
//   - header.go: horizontal header, vertical sidebar, footer and loader
//   - section.go: generic panel binding a records.Module to its input state
//   - section_view.go: table, cards, list, dashboard, detail and form views
//   - schema.go: per-record columns, form fields, cards and dashboard data
//   - modal.go: delete confirmation dialog
//   - theme.go: color themes (Enlace, Slate, Nightfox)
//   - keys.go, help.go: key bindings and the help overlay
//
// # Screens
//
//   - Login: RUT and password inputs; submitting starts a progress display
//     with four steps and then opens user administration directly
//   - Forgot password: single RUT input with a static confirmation
//   - User administration and IT requests: list/cards/listview/dashboard
//     views, detail, create/edit form and delete confirmation
//
// Moving between the two main screens shows a loader for the configured
// navigation delay. The menu layout (header or sidebar) and the theme are
// persisted to the preferences file as soon as they change.
package ui
