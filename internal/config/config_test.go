package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("Chdir restore: %v", err)
		}
	})
}

func chdirTemp(t *testing.T) {
	t.Helper()
	testChdir(t, t.TempDir())
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdirTemp(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NavigationDelay != 2*time.Second {
		t.Fatalf("NavigationDelay = %v, want 2s", cfg.NavigationDelay)
	}
	if cfg.LoginDelay != 7200*time.Millisecond {
		t.Fatalf("LoginDelay = %v, want 7.2s", cfg.LoginDelay)
	}

	wantLog := filepath.Join(home, ".local", "state", "enlace", "enlace.log")
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.LogDir() != filepath.Dir(wantLog) {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir(), filepath.Dir(wantLog))
	}
	if !strings.HasPrefix(cfg.PrefsFile, home) {
		t.Fatalf("PrefsFile = %q, want it under HOME %q", cfg.PrefsFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdirTemp(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
navigation_delay = " 500ms "
login_delay = "3s"
log_file = "  ~/logs/enlace.log  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NavigationDelay != 500*time.Millisecond {
		t.Fatalf("NavigationDelay = %v, want 500ms", cfg.NavigationDelay)
	}
	if cfg.LoginDelay != 3*time.Second {
		t.Fatalf("LoginDelay = %v, want 3s", cfg.LoginDelay)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "enlace.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdirTemp(t)
	t.Setenv("ENLACE_NAVIGATION_DELAY", "10ms")
	t.Setenv("ENLACE_PREFS_FILE", filepath.Join(home, "p.toml"))

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("navigation_delay = \"5s\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NavigationDelay != 10*time.Millisecond {
		t.Fatalf("NavigationDelay = %v, want 10ms", cfg.NavigationDelay)
	}
	if cfg.PrefsFile != filepath.Join(home, "p.toml") {
		t.Fatalf("PrefsFile = %q", cfg.PrefsFile)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd := t.TempDir()
	testChdir(t, wd)
	if err := os.WriteFile(filepath.Join(wd, ".env"), []byte("ENLACE_LOGIN_DELAY=250ms\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	// godotenv never overrides variables that are already set; make sure the
	// key is unset and restored afterwards.
	t.Setenv("ENLACE_LOGIN_DELAY", "")
	os.Unsetenv("ENLACE_LOGIN_DELAY")

	cfg, err := Load(filepath.Join(home, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LoginDelay != 250*time.Millisecond {
		t.Fatalf("LoginDelay = %v, want 250ms", cfg.LoginDelay)
	}
}

func TestLoad_InvalidDurationFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdirTemp(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("login_delay = \"soon\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted an invalid duration")
	}
}

func TestLoad_NonPositiveDelaysUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdirTemp(t)
	t.Setenv("ENLACE_NAVIGATION_DELAY", "0s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NavigationDelay != defaultNavigationDelay {
		t.Fatalf("NavigationDelay = %v, want default", cfg.NavigationDelay)
	}
}
