package editor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		maestro string
		editor  string
		visual  string
		want    string
	}{
		{"maestro editor wins", "hx", "nvim", "code", "hx"},
		{"editor", "", "nvim", "code", "nvim"},
		{"visual", "", "", "code", "code"},
		{"blank treated as unset", "  ", "", "code --wait", "code --wait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MAESTRO_EDITOR", tt.maestro)
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)

			if got := Detect(); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetect_Fallback(t *testing.T) {
	t.Setenv("MAESTRO_EDITOR", "")
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	want := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		want = "nano"
	}
	if got := Detect(); got != want {
		t.Errorf("Detect() = %q, want %q", got, want)
	}
}

func TestOpen_Integration(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping integration test on windows (uses shell script mock)")
	}

	tmpDir := t.TempDir()
	mockEditor := filepath.Join(tmpDir, "mock-editor.sh")
	outputFile := filepath.Join(tmpDir, "output.txt")

	// The mock editor records its arguments
	script := "#!/bin/sh\necho \"$@\" > " + outputFile + "\n"
	if err := os.WriteFile(mockEditor, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MAESTRO_EDITOR", mockEditor+" --wait")

	target := filepath.Join(tmpDir, "workspaces.json")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	e := &Editor{Stdin: strings.NewReader(""), Stdout: &out, Stderr: &out}
	if err := e.Open(context.Background(), target); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(got)) != "--wait "+target {
		t.Errorf("mock editor args = %q, want %q", strings.TrimSpace(string(got)), "--wait "+target)
	}
}

func TestOpen_MissingBinary(t *testing.T) {
	t.Setenv("MAESTRO_EDITOR", "non-existent-binary-12345")

	var out bytes.Buffer
	e := &Editor{Stdout: &out, Stderr: &out}
	err := e.Open(context.Background(), "workspaces.json")
	if err == nil {
		t.Fatal("expected error for non-existent editor, got nil")
	}
	if !strings.Contains(err.Error(), "non-existent-binary-12345") {
		t.Errorf("error = %v, want it to name the editor", err)
	}
}
