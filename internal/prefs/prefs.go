// Package prefs handles Enlace user preferences persistence.
// Preferences are stored in ~/.config/enlace/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// MenuLayout selects the navigation chrome shown around the main screens.
type MenuLayout string

const (
	Horizontal MenuLayout = "horizontal"
	Vertical   MenuLayout = "vertical"
)

// ParseMenuLayout accepts only the two known layouts.
func ParseMenuLayout(value string) (MenuLayout, error) {
	switch MenuLayout(strings.ToLower(strings.TrimSpace(value))) {
	case Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown menu layout %q", value)
}

// Toggle returns the other layout.
func (l MenuLayout) Toggle() MenuLayout {
	if l == Vertical {
		return Horizontal
	}
	return Vertical
}

// Prefs holds user preferences for Enlace.
type Prefs struct {
	MenuLayout MenuLayout `toml:"chubb-menu-type"`
	Theme      string     `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/enlace/prefs.toml"
	defaultTheme     = "Enlace"
)

// Defaults returns the preferences used when nothing valid is stored.
func Defaults() Prefs {
	return Prefs{MenuLayout: Horizontal, Theme: defaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if
// missing. Invalid values are treated as absent.
func Load(path string) Prefs {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		return prefs // missing or unreadable
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	var raw struct {
		MenuLayout string `toml:"chubb-menu-type"`
		Theme      string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return prefs
	}

	if layout, err := ParseMenuLayout(raw.MenuLayout); err == nil {
		prefs.MenuLayout = layout
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		prefs.Theme = theme
	}
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := ParseMenuLayout(string(p.MenuLayout)); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	return writeFile(resolved, bytes)
}

// writeFile replaces path through a temp file in the same directory so a
// failed write never leaves a truncated prefs file behind.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// ToggleMenuLayout flips the stored layout and persists it. The flipped value
// is returned even when the write fails so callers can keep the in-memory
// toggle.
func ToggleMenuLayout(path string, current Prefs) (Prefs, error) {
	next := current
	next.MenuLayout = current.MenuLayout.Toggle()
	if err := Save(path, next); err != nil {
		return next, fmt.Errorf("persist menu layout: %w", err)
	}
	return next, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultPrefsPath)
	}
	return ExpandPath(path)
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
