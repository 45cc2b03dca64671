package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func writePrefs(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Autoplay != nil {
		t.Fatalf("Autoplay = %v, want unset", *p.Autoplay)
	}
	if !p.AutoplayOr(true) || p.AutoplayOr(false) {
		t.Fatalf("AutoplayOr should return the fallback when unset")
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writePrefs(t, filepath.Join(home, ".config", "showcase", "prefs.toml"), "theme = \"Slate\"\nautoplay = false\n")

	p := Load("")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
	if p.AutoplayOr(true) {
		t.Fatalf("AutoplayOr(true) = true, want stored false")
	}
}

func TestSave_RoundTripCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Kanagawa"}.WithAutoplay(true)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded := Load(path)
	if loaded.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", loaded.Theme)
	}
	if loaded.Autoplay == nil || !*loaded.Autoplay {
		t.Fatalf("Autoplay = %v, want true", loaded.Autoplay)
	}
}

func TestSave_OmitsUnsetAutoplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if loaded := Load(path); loaded.Autoplay != nil {
		t.Fatalf("Autoplay = %v, want unset", *loaded.Autoplay)
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	writePrefs(t, path, "theme = \"\"\n")

	if p := Load(path); p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	writePrefs(t, path, "not valid toml {{{\n")

	if p := Load(path); p.Theme != defaultTheme || p.Autoplay != nil {
		t.Fatalf("Load = %+v, want defaults", p)
	}
}
