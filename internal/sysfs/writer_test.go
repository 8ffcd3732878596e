package sysfs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func TestWriteInt(t *testing.T) {
	root := t.TempDir()
	ledDir := filepath.Join(root, "sys", "class", "leds", "red")
	if err := os.MkdirAll(ledDir, 0o755); err != nil {
		t.Fatal(err)
	}

	w := New(root, testLogger())

	if !w.WriteInt("/sys/class/leds/red/brightness", 255) {
		t.Fatal("WriteInt() = false, want true")
	}

	data, err := os.ReadFile(filepath.Join(ledDir, "brightness"))
	if err != nil {
		t.Fatalf("reading back control file: %v", err)
	}
	if string(data) != "255" {
		t.Errorf("control file content = %q, want %q", string(data), "255")
	}
}

func TestWriteIntMissingDirectory(t *testing.T) {
	w := New(t.TempDir(), testLogger())

	if w.WriteInt("/sys/class/leds/nonexistent/brightness", 1) {
		t.Error("WriteInt() to missing directory = true, want false")
	}
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	ledDir := filepath.Join(root, "sys", "class", "leds", "button-backlight")
	if err := os.MkdirAll(ledDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(ledDir, "brightness"), []byte("0"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(root, testLogger())

	if !w.Exists("/sys/class/leds/button-backlight/brightness") {
		t.Error("Exists() = false for present control")
	}
	if w.Exists("/sys/class/leds/missing/brightness") {
		t.Error("Exists() = true for missing control")
	}
}

func TestEmptyRootUsesAbsolutePath(t *testing.T) {
	// With an empty root the path is used as-is; write to a real temp file.
	dir := t.TempDir()
	target := filepath.Join(dir, "brightness")

	w := New("", testLogger())
	if !w.WriteInt(target, 128) {
		t.Fatal("WriteInt() = false, want true")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "128" {
		t.Errorf("content = %q, want %q", string(data), "128")
	}
}
