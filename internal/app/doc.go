// Package app provides the orchestration layer for the Enlace application.
//
// # Overview
//
// This package wires together configuration, logging, preferences and the UI.
// It is the composition root: every dependency is built here and handed to
// the Bubble Tea model.
//
// # Startup
//
//  1. Load ~/.config/enlace/config.toml, a local .env and ENLACE_* overrides
//  2. Open the JSON log file (the terminal belongs to the TUI)
//  3. Read the menu layout and theme from the preferences file
//  4. Build the ui.Model with the configured navigation and login delays
//  5. Run the program under supervise until the user quits or ctx is done
//
// # Components
//
//   - app.go: Run and its Options
//   - supervise.go: errgroup pairing the program with a cancellation watcher
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration file or environment value
//   - Log file that cannot be created
//   - Terminal failure while running the program
//
// Recoverable errors (logged and shown in the status line):
//   - Preferences that cannot be written
//
// Missing or malformed preference files never fail startup; defaults apply.
package app
