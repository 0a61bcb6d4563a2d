package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProject(t *testing.T, modulePath, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	gomod := "module " + modulePath + "\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatal(err)
	}
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, "reflow.yaml"), []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional on empty dir failed: %v", err)
	}
	if cfg.App.Name != "" {
		t.Errorf("expected zero config, got app.name=%q", cfg.App.Name)
	}
}

func TestLoadOptional_ParsesAppName(t *testing.T) {
	dir := writeProject(t, "example.com/demo", "app:\n  name: demo_app\n")
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if cfg.App.Name != "demo_app" {
		t.Errorf("expected app.name demo_app, got %q", cfg.App.Name)
	}
}

func TestLoadOptional_RejectsMalformedYAML(t *testing.T) {
	dir := writeProject(t, "example.com/demo", "app: [not a mapping\n")
	if _, err := LoadOptional(dir); err == nil {
		t.Fatal("expected error for malformed reflow.yaml, got nil")
	}
}

func TestResolve_DefaultsAppNameFromModulePath(t *testing.T) {
	dir := writeProject(t, "github.com/user/myapp", "")
	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.ModulePath != "github.com/user/myapp" {
		t.Errorf("ModulePath = %q", resolved.ModulePath)
	}
	if resolved.AppName != "myapp" {
		t.Errorf("AppName = %q, want myapp", resolved.AppName)
	}
	if resolved.Root != dir {
		t.Errorf("Root = %q, want %q", resolved.Root, dir)
	}
}

func TestResolve_VersionedModulePath(t *testing.T) {
	dir := writeProject(t, "github.com/user/myapp/v2", "")
	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.AppName != "myapp" {
		t.Errorf("AppName = %q, want myapp (version suffix stripped)", resolved.AppName)
	}
}

func TestResolve_ExplicitNameWins(t *testing.T) {
	dir := writeProject(t, "github.com/user/myapp", "app:\n  name: custom\n")
	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.AppName != "custom" {
		t.Errorf("AppName = %q, want custom", resolved.AppName)
	}
}

func TestResolve_RejectsInvalidName(t *testing.T) {
	dir := writeProject(t, "github.com/user/myapp", "app:\n  name: \"has space\"\n")
	if _, err := Resolve(dir); err == nil {
		t.Fatal("expected error for invalid app.name, got nil")
	}
}

func TestResolve_MissingGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Fatal("expected error when go.mod is absent, got nil")
	}
}

func TestValidateAppName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "myapp", false},
		{"hyphen", "my-app", false},
		{"underscore", "my_app", false},
		{"uppercase", "MyApp", false},
		{"empty", "", true},
		{"space", "my app", true},
		{"leading digit", "1app", true},
		{"leading hyphen", "-app", true},
		{"slash", "my/app", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAppName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAppName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
