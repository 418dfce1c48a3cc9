package ui

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("  Valenzuela  ", 20); got != "Valenzuela" {
		t.Fatalf("truncate trimmed = %q", got)
	}
	if got := truncate("Tecnología", 5); got != "Tecn…" {
		t.Fatalf("truncate = %q, want %q", got, "Tecn…")
	}
}

func TestFit(t *testing.T) {
	if got := fit("abc", 5); got != "abc  " {
		t.Fatalf("fit short = %q", got)
	}
	if got := fit("abcdef", 4); got != "abc…" {
		t.Fatalf("fit long = %q", got)
	}
}

func TestOrDash(t *testing.T) {
	for _, in := range []string{"", " ", "//"} {
		if got := orDash(in); got != "-" {
			t.Fatalf("orDash(%q) = %q, want -", in, got)
		}
	}
	if got := orDash("15/04/24"); got != "15/04/24" {
		t.Fatalf("orDash = %q", got)
	}
}
