// Package config loads the runtime settings of the Enlace console.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. A .env file in the working directory, if present
//  3. The TOML file (explicit path or ~/.config/enlace/config.toml); a
//     missing file is not an error
//  4. ENLACE_* environment variables
//
// Non-positive delays fall back to their defaults after all layers are
// applied, and paths get tilde expansion.
//
// # Default Values
//
//   - navigation_delay: 2s (loader shown between main screens)
//   - login_delay: 7.2s (login progress display)
//   - log_file: ~/.local/state/enlace/enlace.log
//   - prefs_file: ~/.config/enlace/prefs.toml
//
// # TOML Format
//
//	navigation_delay = "2s"
//	login_delay = "7200ms"
//	log_file = "~/.local/state/enlace/enlace.log"
//	prefs_file = "~/.config/enlace/prefs.toml"
//
// Durations use Go duration syntax. Every field is optional.
//
// # Environment
//
//	ENLACE_NAVIGATION_DELAY, ENLACE_LOGIN_DELAY, ENLACE_LOG_FILE, ENLACE_PREFS_FILE
//
// # Error Handling
//
// Load returns errors for unreadable or malformed files, invalid duration
// strings and environment values that do not parse. Missing files are not
// errors so Enlace works without any configuration.
package config
