package earthmap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlaceholder_Size(t *testing.T) {
	lines := Placeholder(140, 35)
	if len(lines) != 35 {
		t.Fatalf("Placeholder(140, 35) has %d lines, want 35", len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 140 {
			t.Errorf("line %d has %d glyphs, want 140", i, n)
		}
	}
}

func TestPlaceholder_Pattern(t *testing.T) {
	const w, h = 140, 35
	lines := Placeholder(w, h)
	tests := []struct {
		x, y int
		want byte
	}{
		{0, 0, ' '},                 // outside the disc
		{w / 2, h / 2, '~'},         // centre, (70+17)%7 != 0
		{w/2 - 3, h / 2, '#'},       // (67+17)%7 == 0
		{w - 1, h - 1, ' '},         // far corner
		{w/2 + w/4, h / 2, ' '},     // exactly on the radius is outside
		{w/2 + w/4 - 1, h / 2, '~'}, // just inside, (104+17)%7 != 0
	}
	for _, tt := range tests {
		if got := lines[tt.y][tt.x]; got != tt.want {
			t.Errorf("Placeholder[%d][%d] = %q, want %q", tt.y, tt.x, got, tt.want)
		}
	}
}

func TestPlaceholder_Deterministic(t *testing.T) {
	a := strings.Join(Placeholder(60, 20), "\n")
	b := strings.Join(Placeholder(60, 20), "\n")
	if a != b {
		t.Error("Placeholder is not deterministic")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	if err := os.WriteFile(path, []byte("abc\r\ndef\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(path, 3, 2)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := string(g); got != "abcdef" {
		t.Errorf("Load() = %q, want %q", got, "abcdef")
	}
	if got := string(g.Reversed()); got != "fedcba" {
		t.Errorf("Reversed() = %q, want %q", got, "fedcba")
	}
	if got := g.String(3); got != "abc\ndef" {
		t.Errorf("String(3) = %q, want %q", got, "abc\ndef")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.txt")
	if err := os.WriteFile(short, []byte("ab\ncd"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "nope.txt"), ErrMapNotFound},
		{"wrong size", short, ErrMapUnavailable},
		{"directory", dir, ErrMapUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, 3, 2)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOpen_SynthesizesMissingMap(t *testing.T) {
	const w, h = 140, 35
	path := filepath.Join(t.TempDir(), "assets", "earth.txt")
	g, created, err := Open(path, w, h)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !created {
		t.Error("Open() created = false, want true")
	}
	if len(g) != w*h {
		t.Errorf("len(glyphs) = %d, want %d", len(g), w*h)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("placeholder not persisted: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) != h {
		t.Fatalf("persisted map has %d lines, want %d", len(lines), h)
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != w {
			t.Errorf("persisted line %d has %d glyphs, want %d", i, n, w)
		}
	}

	// A second open reuses the file.
	if _, created, err := Open(path, w, h); err != nil || created {
		t.Errorf("second Open() = created %v, err %v; want false, nil", created, err)
	}
}

func TestOpen_Unavailable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	// The parent "directory" is a regular file, so the placeholder cannot be written.
	_, _, err := Open(filepath.Join(blocker, "earth.txt"), 10, 4)
	if !errors.Is(err, ErrMapUnavailable) {
		t.Fatalf("Open() error = %v, want ErrMapUnavailable", err)
	}
	if errors.Is(err, ErrMapNotFound) {
		t.Error("Open() leaked ErrMapNotFound")
	}
}

func TestWritePlaceholder_Error(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WritePlaceholder(filepath.Join(blocker, "sub", "earth.txt"), 10, 4); err == nil {
		t.Error("WritePlaceholder() under a regular file succeeded, want error")
	}
}
