package store

import (
	"testing"
)

func TestNewPointer(t *testing.T) {
	p := NewPointer("relative/../path.json")
	if p.ConfigFilePath != "relative/../path.json" {
		t.Errorf("NewPointer changed the path: %q", p.ConfigFilePath)
	}
}

func TestPointer_Marshal(t *testing.T) {
	data, err := NewPointer("/home/me/workspaces.json").Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := "{\n  \"config_file_path\": \"/home/me/workspaces.json\"\n}\n"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}

	got, err := UnmarshalPointer(data)
	if err != nil {
		t.Fatalf("UnmarshalPointer() error: %v", err)
	}
	if got.ConfigFilePath != "/home/me/workspaces.json" {
		t.Errorf("round trip = %q", got.ConfigFilePath)
	}
}

func TestUnmarshalPointer_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty input", ""},
		{"syntax error", "{"},
		{"missing key", "{}"},
		{"null path", `{"config_file_path": null}`},
		{"empty path", `{"config_file_path": ""}`},
		{"array", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalPointer([]byte(tt.data)); err == nil {
				t.Error("UnmarshalPointer() expected error, got nil")
			}
		})
	}
}

func TestUnmarshalPointer_IgnoresUnknownKeys(t *testing.T) {
	p, err := UnmarshalPointer([]byte(`{"config_file_path": "/x.json", "extra": true}`))
	if err != nil {
		t.Fatalf("UnmarshalPointer() error: %v", err)
	}
	if p.ConfigFilePath != "/x.json" {
		t.Errorf("ConfigFilePath = %q, want /x.json", p.ConfigFilePath)
	}
}
