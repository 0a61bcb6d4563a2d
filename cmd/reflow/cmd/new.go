package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-reflow/reflow/cmd/reflow/internal/config"
	"github.com/go-reflow/reflow/cmd/reflow/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "new",
		Short: "Generate a component skeleton",
		Long: `Generate a component skeleton in the current project.

The component name must be an exported Go identifier (UpperCamelCase).
A file named after the component (snake_case) is created under the
project's components directory, with a model slice type, a params type,
and Rebuild wired through a lens.

Examples:
  reflow new TaskList
  reflow new SettingsPanel`,
		Usage: "reflow new <ComponentName>",
		Run:   runNew,
	})
}

// runNew generates a component source file from the embedded skeleton. It
// must run inside a Reflow project (a Go module); the file lands in the
// components directory next to go.mod.
func runNew(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("component name is required\n\nUsage: reflow new <ComponentName>")
	}

	name := args[0]
	if err := validateComponentName(name); err != nil {
		return fmt.Errorf("invalid component name %q: %w", name, err)
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}

	componentsDir := filepath.Join(root, "components")
	if err := os.MkdirAll(componentsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create components directory: %w", err)
	}

	destPath := filepath.Join(componentsDir, snakeCase(name)+".go")
	if _, err := os.Stat(destPath); err == nil {
		return fmt.Errorf("component file %q already exists", destPath)
	}

	content, err := templates.ReadFile("component/component.go.tmpl")
	if err != nil {
		return fmt.Errorf("failed to read component template: %w", err)
	}

	rendered, err := templates.ProcessTemplate(string(content), templates.ProjectData{
		ModulePath: resolved.ModulePath,
		AppName:    resolved.AppName,
		Component:  name,
	})
	if err != nil {
		return fmt.Errorf("failed to render component template: %w", err)
	}

	if err := os.WriteFile(destPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	rel, relErr := filepath.Rel(root, destPath)
	if relErr != nil {
		rel = destPath
	}
	fmt.Printf("Created %s\n", rel)
	fmt.Printf("Mount it from a parent with core.CreateChild and a lens into %sState.\n", name)

	return nil
}

var validComponentName = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

// validateComponentName checks that a component name is an exported Go
// identifier: starts with an uppercase letter, contains only letters and
// digits.
func validateComponentName(name string) error {
	if name == "" {
		return fmt.Errorf("component name cannot be empty")
	}
	if !validComponentName.MatchString(name) {
		return fmt.Errorf("component name must be UpperCamelCase (start with an uppercase letter, letters and digits only)")
	}
	return nil
}

// snakeCase converts an UpperCamelCase identifier to snake_case for use as a
// file name: TaskList becomes task_list, HTTPPanel becomes http_panel.
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			// Break before an uppercase rune that starts a new word: either
			// the previous rune is lowercase/digit, or the next one is
			// lowercase (end of an acronym run).
			if i > 0 {
				prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z' || runes[i-1] >= '0' && runes[i-1] <= '9'
				nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
				if prevLower || nextLower {
					b.WriteRune('_')
				}
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
