package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed creatures/*.yaml
var embedded embed.FS

// ErrTemplateNotFound is returned when no data directory nor the embedded
// defaults hold the requested template.
var ErrTemplateNotFound = errors.New("template not found")

const templateDir = "creatures"

// Loader handles reading creature templates from the read-only data layer
type Loader struct {
	dataDirs []string
	defaults fs.FS
}

// NewLoader initializes a new Data Loader with the given data directory fallback hierarchy.
// The embedded defaults are searched last.
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
		defaults: embedded,
	}
}

// LoadTemplate finds a creature template by name, searching the data directories sequentially
func (l *Loader) LoadTemplate(name string) (*Template, error) {
	file := fileName(name)

	var t Template
	found, err := l.load(file, &t)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(file, ".yaml")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTemplates returns every template name visible to the loader, sorted.
func (l *Loader) ListTemplates() []string {
	seen := map[string]bool{}
	for _, dir := range l.dataDirs {
		matches, _ := filepath.Glob(filepath.Join(dir, templateDir, "*.yaml"))
		for _, m := range matches {
			seen[strings.TrimSuffix(filepath.Base(m), ".yaml")] = true
		}
	}
	if entries, err := fs.ReadDir(l.defaults, templateDir); err == nil {
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".yaml") {
				seen[strings.TrimSuffix(e.Name(), ".yaml")] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func fileName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-") + ".yaml"
}

func (l *Loader) load(file string, target any) (bool, error) {
	for _, dir := range l.dataDirs {
		p := filepath.Join(dir, templateDir, file)
		raw, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(raw, target); err != nil {
			return false, fmt.Errorf("failed to decode yaml reference %s: %w", p, err)
		}
		return true, nil
	}

	raw, err := fs.ReadFile(l.defaults, path.Join(templateDir, file))
	if err != nil {
		return false, nil
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("failed to decode embedded template %s: %w", file, err)
	}
	return true, nil
}
