package scaffold

import (
	"testing"

	"github.com/scaffgen-labs/scaffgen/internal/names"
)

func TestModes(t *testing.T) {
	modes := Modes()
	want := []string{"component", "context", "hook"}
	if len(modes) != len(want) {
		t.Fatalf("Modes() = %v, want %v", modes, want)
	}
	for i, m := range want {
		if modes[i] != m {
			t.Errorf("Modes()[%d] = %q, want %q", i, modes[i], m)
		}
	}
}

func TestModeFiles(t *testing.T) {
	files, err := ModeFiles("component")
	if err != nil {
		t.Fatalf("ModeFiles() error: %v", err)
	}
	want := []string{"__name__.test.tsx", "index.tsx"}
	if len(files) != len(want) {
		t.Fatalf("ModeFiles(component) = %v, want %v", files, want)
	}
	for i, f := range want {
		if files[i] != f {
			t.Errorf("files[%d] = %q, want %q", i, files[i], f)
		}
	}
}

func TestModeFilesUnknownMode(t *testing.T) {
	if _, err := ModeFiles("nope"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

// Every built-in set must render with every option combination. A template
// that fails to parse or execute is a bug in the tool, not a user error.
func TestAllTemplateSetsRender(t *testing.T) {
	derived, err := names.Derive("probe-widget")
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}

	combos := []struct {
		name          string
		state, effect bool
	}{
		{"plain", false, false},
		{"state", true, false},
		{"effect", false, true},
		{"state+effect", true, true},
	}

	for _, mode := range Modes() {
		for _, combo := range combos {
			t.Run(mode+"/"+combo.name, func(t *testing.T) {
				data := NewData(derived, "0.1.0")
				data.IncludeState = combo.state
				data.IncludeEffect = combo.effect

				files, err := Render(mode, data)
				if err != nil {
					t.Fatalf("Render() error: %v", err)
				}
				if len(files) == 0 {
					t.Fatal("Render() produced no files")
				}
				for _, f := range files {
					if len(f.Content) == 0 {
						t.Errorf("file %s rendered empty", f.Name)
					}
				}
			})
		}
	}
}

func TestRenderExpandsFileNamePlaceholder(t *testing.T) {
	derived, err := names.Derive("MyWidget")
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}

	files, err := Render("component", NewData(derived, "0.1.0"))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var sawTest bool
	for _, f := range files {
		if f.Name == "my-widget.test.tsx" {
			sawTest = true
		}
		if f.Name == "__name__.test.tsx" {
			t.Error("placeholder file name was not expanded")
		}
	}
	if !sawTest {
		t.Errorf("expected my-widget.test.tsx in %v", fileNames(files))
	}
}

func TestRenderSubstitutesExportedSymbol(t *testing.T) {
	derived, err := names.Derive("myWidget")
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}

	files, err := Render("component", NewData(derived, "0.1.0"))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, f := range files {
		if f.Name == "index.tsx" {
			assertContains(t, string(f.Content), "export function MyWidget(")
			return
		}
	}
	t.Fatalf("index.tsx not rendered, got %v", fileNames(files))
}

func fileNames(files []File) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}
