package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Enlace" {
		t.Fatalf("ThemeNames()[0] = %q, want Enlace", names[0])
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Enlace"); got != "Slate" {
		t.Fatalf("NextTheme(Enlace) = %q, want Slate", got)
	}
	if got := NextTheme("Nightfox"); got != "Enlace" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Enlace", got)
	}
	if got := NextTheme("unknown"); got != "Enlace" {
		t.Fatalf("NextTheme(unknown) = %q, want Enlace", got)
	}
}

func TestGetTheme_FallsBack(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Enlace" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Enlace", got)
	}
}

func TestThemesCoverStatuses(t *testing.T) {
	statuses := []string{"Activo", "Inactivo", "EN DESARROLLO", "TERMINADO", "CERTIFICACION", "GESTION CONFIGURACION", "Alta", "Media", "Baja"}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, s := range statuses {
			if th.StatusColors[s] == "" {
				t.Fatalf("theme %s has no color for %q", name, s)
			}
		}
	}
}
