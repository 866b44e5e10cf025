package workspace

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"config.jsonc", FormatJSON},
		{"config", FormatJSON},
		{"config.yaml", FormatYAML},
		{"CONFIG.YML", FormatYAML},
		{"/etc/maestro/workspaces.toml", FormatTOML},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDecode_JSON(t *testing.T) {
	data := []byte(`
	{
		// comments are allowed
		"workspaces": [
			{
				"name": "WorkspaceA",
				"description": "Description for workspaceA",
				"workspace_path": "/path/to/workspaceA",
				"container_working_dir": "/workspace",
				"last_updated": "2024-05-01T10:00:00Z"
			},
			{
				"name": "WorkspaceB",
				"description": "Description for workspaceB",
				"workspace_path": "/path/to/workspaceB",
				"container_working_dir": null,
			},
		]
	}`)

	cfg, err := Decode(data, FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(cfg.Workspaces) != 2 {
		t.Fatalf("len(Workspaces) = %d, want 2", len(cfg.Workspaces))
	}

	a, b := cfg.Workspaces[0], cfg.Workspaces[1]
	if a.Name != "WorkspaceA" || b.Name != "WorkspaceB" {
		t.Errorf("order not preserved: %v", cfg.Names())
	}
	if a.WorkingDir() != "/workspace" {
		t.Errorf("container_working_dir = %q, want /workspace", a.WorkingDir())
	}
	if a.LastUpdated == nil || a.LastUpdated.Year() != 2024 {
		t.Errorf("last_updated = %v, want 2024 timestamp", a.LastUpdated)
	}
	if b.ContainerWorkingDir != nil {
		t.Errorf("null container_working_dir decoded as %q", *b.ContainerWorkingDir)
	}
}

func TestDecode_DoesNotValidate(t *testing.T) {
	data := []byte(`{"workspaces": [{"name": "Workspace B", "description": "", "workspace_path": ""}]}`)
	cfg, err := Decode(data, FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected Validate() to reject decoded workspace")
	}
}

func TestDecode_EmptyWorkspaces(t *testing.T) {
	cfg, err := Decode([]byte(`{"workspaces": []}`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(cfg.Workspaces) != 0 {
		t.Errorf("len(Workspaces) = %d, want 0", len(cfg.Workspaces))
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		format      Format
		wantMissing bool
	}{
		{name: "missing workspaces", data: `{"invalid": "json"}`, wantMissing: true},
		{name: "null document", data: `null`, wantMissing: true},
		{name: "null workspaces", data: `{"workspaces": null}`, wantMissing: true},
		{name: "missing name", data: `{"workspaces": [{"description": "", "workspace_path": "/x"}]}`, wantMissing: true},
		{name: "missing description", data: `{"workspaces": [{"name": "a", "workspace_path": "/x"}]}`, wantMissing: true},
		{name: "missing workspace_path", data: `{"workspaces": [{"name": "a", "description": ""}]}`, wantMissing: true},
		{name: "null entry", data: `{"workspaces": [null]}`, wantMissing: true},
		{name: "syntax error", data: `{"workspaces": [`},
		{name: "wrong type", data: `{"workspaces": {"name": "a"}}`},
		{name: "name is a number", data: `{"workspaces": [{"name": 1, "description": "", "workspace_path": "/x"}]}`},
		{name: "bad timestamp", data: `{"workspaces": [{"name": "a", "description": "", "workspace_path": "/x", "last_updated": "yesterday"}]}`},
		{name: "top level array", data: `[]`},
		{name: "trailing data", data: `{"workspaces": []} {}`},
		{name: "yaml syntax error", data: "workspaces: [\n", format: FormatYAML},
		{name: "yaml missing workspaces", data: "other: 1\n", format: FormatYAML, wantMissing: true},
		{name: "toml syntax error", data: "workspaces = \n", format: FormatTOML},
		{name: "duplicate field", data: `{"workspaces": [{"name": "a", "name": "b", "description": "", "workspace_path": "/x"}]}`},
		{name: "duplicate top-level key", data: `{"workspaces": [], "workspaces": []}`},
		{name: "yaml duplicate key", data: "workspaces: []\nworkspaces: []\n", format: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := tt.format
			if format == "" {
				format = FormatJSON
			}
			_, err := Decode([]byte(tt.data), format)
			if err == nil {
				t.Fatal("Decode() expected error, got nil")
			}
			if got := errors.Is(err, ErrMissingKey); got != tt.wantMissing {
				t.Errorf("errors.Is(err, ErrMissingKey) = %v, want %v (err: %v)", got, tt.wantMissing, err)
			}
		})
	}
}

func TestDecode_YAML(t *testing.T) {
	data := []byte(`workspaces:
  - name: api
    description: Backend
    workspace_path: /src/api
    container_working_dir: /workspace
  - name: web
    description: Frontend
    workspace_path: /src/web
    container_working_dir: null
`)
	cfg, err := Decode(data, FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got := cfg.Names(); len(got) != 2 || got[0] != "api" || got[1] != "web" {
		t.Errorf("Names() = %v, want [api web]", got)
	}
	if cfg.Workspaces[0].WorkingDir() != "/workspace" {
		t.Errorf("container_working_dir = %q", cfg.Workspaces[0].WorkingDir())
	}
}

func TestDecode_TOML(t *testing.T) {
	data := []byte(`[[workspaces]]
name = "api"
description = "Backend"
workspace_path = "/src/api"

[[workspaces]]
name = "web"
description = "Frontend"
workspace_path = "/src/web"
`)
	cfg, err := Decode(data, FormatTOML)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got := cfg.Names(); len(got) != 2 || got[0] != "api" || got[1] != "web" {
		t.Errorf("Names() = %v, want [api web]", got)
	}
}

func TestDecode_DuplicateKey(t *testing.T) {
	data := []byte(`{"workspaces": [{"name": "a", "description": "", "workspace_path": "/x", "workspace_path": "/y"}]}`)
	_, err := Decode(data, FormatJSON)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("Decode() error = %v, want ErrDuplicateKey", err)
	}
	if !strings.Contains(err.Error(), `"workspace_path" in $.workspaces[0]`) {
		t.Errorf("error %q should locate the duplicate", err)
	}
}

func TestDecode_SameKeyInDifferentObjects(t *testing.T) {
	data := []byte(`{"workspaces": [
		{"name": "a", "description": "", "workspace_path": "/a"},
		{"name": "b", "description": "", "workspace_path": "/b"}
	]}`)
	if _, err := Decode(data, FormatJSON); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
}

func TestDecode_TOMLLocalDateTime(t *testing.T) {
	data := []byte(`[[workspaces]]
name = "api"
description = ""
workspace_path = "/src/api"
last_updated = 2024-05-01T10:00:00
`)
	cfg, err := Decode(data, FormatTOML)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	if got := cfg.Workspaces[0].LastUpdated; got == nil || !got.Equal(want) {
		t.Errorf("LastUpdated = %v, want %v", got, want)
	}
}
