package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p.MenuLayout != Horizontal {
		t.Fatalf("MenuLayout = %q, want %q", p.MenuLayout, Horizontal)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "enlace")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("chubb-menu-type = \"vertical\"\ntheme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.MenuLayout != Vertical {
		t.Fatalf("MenuLayout = %q, want %q", p.MenuLayout, Vertical)
	}
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
}

func TestLoad_InvalidLayoutTreatedAsAbsent(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("chubb-menu-type = \"diagonal\"\ntheme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(prefsFile)
	if p.MenuLayout != Horizontal {
		t.Fatalf("MenuLayout = %q, want %q", p.MenuLayout, Horizontal)
	}
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(prefsFile); p != Defaults() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{MenuLayout: Vertical, Theme: "Slate"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	raw, err := os.ReadFile(prefsFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(raw), "chubb-menu-type") || !strings.Contains(string(raw), "vertical") {
		t.Fatalf("prefs file = %q, want chubb-menu-type key", raw)
	}

	if loaded := Load(prefsFile); loaded.MenuLayout != Vertical {
		t.Fatalf("MenuLayout = %q, want vertical", loaded.MenuLayout)
	}
}

func TestSave_ReplacesFileWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	prefsFile := filepath.Join(dir, "prefs.toml")

	if err := Save(prefsFile, Prefs{MenuLayout: Vertical, Theme: "Slate"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(prefsFile, Prefs{MenuLayout: Horizontal, Theme: "Nightfox"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir entries = %v, want only prefs.toml", names)
	}

	info, err := os.Stat(prefsFile)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Fatalf("mode = %v, want 0644", perm)
	}
	if loaded := Load(prefsFile); loaded.MenuLayout != Horizontal || loaded.Theme != "Nightfox" {
		t.Fatalf("loaded = %+v, want horizontal/Nightfox", loaded)
	}
}

func TestSave_RejectsUnknownLayout(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(prefsFile, Prefs{MenuLayout: "diagonal"}); err == nil {
		t.Fatal("Save accepted an unknown layout")
	}
}

func TestToggleMenuLayout_RoundTrip(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	start := Load(prefsFile)

	once, err := ToggleMenuLayout(prefsFile, start)
	if err != nil {
		t.Fatalf("ToggleMenuLayout: %v", err)
	}
	if once.MenuLayout == start.MenuLayout {
		t.Fatalf("layout after one toggle = %q, want it to differ", once.MenuLayout)
	}
	if got := Load(prefsFile).MenuLayout; got != once.MenuLayout {
		t.Fatalf("persisted layout = %q, want %q", got, once.MenuLayout)
	}

	twice, err := ToggleMenuLayout(prefsFile, once)
	if err != nil {
		t.Fatalf("ToggleMenuLayout: %v", err)
	}
	if twice.MenuLayout != start.MenuLayout {
		t.Fatalf("layout after two toggles = %q, want %q", twice.MenuLayout, start.MenuLayout)
	}
	if got := Load(prefsFile).MenuLayout; got != start.MenuLayout {
		t.Fatalf("persisted layout = %q, want %q", got, start.MenuLayout)
	}
}

func TestToggleMenuLayout_KeepsValueOnWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	next, err := ToggleMenuLayout(filepath.Join(blocker, "prefs.toml"), Defaults())
	if err == nil {
		t.Fatal("expected write failure under a regular file")
	}
	if next.MenuLayout != Vertical {
		t.Fatalf("MenuLayout = %q, want vertical", next.MenuLayout)
	}
}

func TestParseMenuLayout(t *testing.T) {
	if l, err := ParseMenuLayout(" Vertical "); err != nil || l != Vertical {
		t.Fatalf("ParseMenuLayout = %q, %v", l, err)
	}
	if _, err := ParseMenuLayout(""); err == nil {
		t.Fatal("ParseMenuLayout(\"\") should fail")
	}
}
