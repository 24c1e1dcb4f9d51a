package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/scaffgen-labs/scaffgen/internal/names"
)

//go:embed all:templates
var templateFS embed.FS

// namePlaceholder in a template file name expands to the kebab identifier,
// e.g. "__name__.test.tsx.tmpl" becomes "user-card.test.tsx".
const namePlaceholder = "__name__"

// Data holds all template variables available to scaffold templates.
type Data struct {
	Pascal        string // e.g., "UserCard"
	Kebab         string // e.g., "user-card"
	Version       string // tool version that generated the scaffold
	Year          int    // current year
	IncludeState  bool   // component only: emit a useState stanza
	IncludeEffect bool   // component only: emit a useEffect stanza
}

// NewData creates a Data from derived names with the time-dependent
// fields populated.
func NewData(d names.Derived, version string) *Data {
	return &Data{
		Pascal:  d.Pascal,
		Kebab:   d.Kebab,
		Version: version,
		Year:    time.Now().Year(),
	}
}

// File is one rendered output file, named relative to the scaffold directory.
type File struct {
	Name    string
	Content []byte
}

// TemplateError reports a broken or missing template set. This is a bug in
// the tool (or an invalid override directory), not a user input error.
type TemplateError struct {
	Mode string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template set %q: %v", e.Mode, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Modes returns the built-in template mode names in sorted order.
func Modes() []string {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil
	}
	var modes []string
	for _, e := range entries {
		if e.IsDir() {
			modes = append(modes, e.Name())
		}
	}
	sort.Strings(modes)
	return modes
}

// ModeFiles returns the output file names a mode produces with the
// placeholder left intact, for listing purposes.
func ModeFiles(mode string) ([]string, error) {
	entries, err := templateFS.ReadDir(path.Join("templates", mode))
	if err != nil {
		return nil, &TemplateError{Mode: mode, Err: err}
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, strings.TrimSuffix(e.Name(), ".tmpl"))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Render renders the built-in template set for mode.
func Render(mode string, data *Data) ([]File, error) {
	sub, err := fs.Sub(templateFS, path.Join("templates", mode))
	if err != nil {
		return nil, &TemplateError{Mode: mode, Err: err}
	}
	return renderFS(sub, mode, data)
}

// RenderDir renders a template set rooted at an on-disk directory. Used when
// a project config points at local templates that shadow the built-in sets.
func RenderDir(dir, mode string, data *Data) ([]File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &TemplateError{Mode: mode, Err: err}
	}
	if !info.IsDir() {
		return nil, &TemplateError{Mode: mode, Err: fmt.Errorf("%s is not a directory", dir)}
	}
	return renderFS(os.DirFS(dir), mode, data)
}

// renderFS parses and executes every .tmpl file in the set root, sorted by
// name so output order is stable.
func renderFS(fsys fs.FS, mode string, data *Data) ([]File, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, &TemplateError{Mode: mode, Err: err}
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		raw, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, &TemplateError{Mode: mode, Err: fmt.Errorf("reading %s: %w", entry.Name(), err)}
		}

		tmpl, err := template.New(entry.Name()).Parse(string(raw))
		if err != nil {
			return nil, &TemplateError{Mode: mode, Err: fmt.Errorf("parsing %s: %w", entry.Name(), err)}
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, &TemplateError{Mode: mode, Err: fmt.Errorf("executing %s: %w", entry.Name(), err)}
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outName = strings.ReplaceAll(outName, namePlaceholder, data.Kebab)

		files = append(files, File{Name: outName, Content: buf.Bytes()})
	}

	if len(files) == 0 {
		return nil, &TemplateError{Mode: mode, Err: fmt.Errorf("no templates found")}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
