package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateComponentName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Task", false},
		{"camel", "TaskList", false},
		{"with digits", "Panel2", false},
		{"acronym", "HTTPPanel", false},

		{"empty", "", true},
		{"lowercase", "task", true},
		{"underscore", "Task_List", true},
		{"leading digit", "2Panel", true},
		{"space", "Task List", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateComponentName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateComponentName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Task", "task"},
		{"TaskList", "task_list"},
		{"HTTPPanel", "http_panel"},
		{"Panel2", "panel2"},
		{"MyHTTPServer2", "my_http_server2"},
	}
	for _, tt := range tests {
		if got := snakeCase(tt.input); got != tt.want {
			t.Errorf("snakeCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRunNew_GeneratesComponent(t *testing.T) {
	dir := t.TempDir()
	gomod := "module github.com/user/myapp\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	if err := runNew([]string{"TaskList"}); err != nil {
		t.Fatalf("runNew unexpected error: %v", err)
	}

	src, err := os.ReadFile(filepath.Join(dir, "components", "task_list.go"))
	if err != nil {
		t.Fatalf("expected components/task_list.go: %v", err)
	}
	for _, want := range []string{"package components", "type TaskList struct", "func BuildTaskList"} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated component missing %q:\n%s", want, src)
		}
	}

	// A second run must refuse to clobber the file.
	if err := runNew([]string{"TaskList"}); err == nil {
		t.Fatal("expected error for existing component file, got nil")
	}
}

func TestRunNew_NoArgs(t *testing.T) {
	if err := runNew(nil); err == nil {
		t.Fatal("expected error for no args, got nil")
	}
}
