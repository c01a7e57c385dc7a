// Package texto renders the Spanish announcement texts from embedded
// $variable templates. An override directory, when configured, takes
// precedence over the embedded set.
package texto

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.txt
var builtin embed.FS

type Renderer struct {
	overrideDir string
	cache       map[string]string
	printer     *message.Printer
	titler      cases.Caser
}

// NewRenderer builds a renderer. overrideDir may be empty; when set,
// templates found there shadow the embedded ones.
func NewRenderer(overrideDir string) *Renderer {
	return &Renderer{
		overrideDir: overrideDir,
		cache:       map[string]string{},
		printer:     message.NewPrinter(language.Spanish),
		titler:      cases.Title(language.Spanish),
	}
}

// template loads a template body by name (no extension), caching it.
func (r *Renderer) template(name string) (string, error) {
	if body, ok := r.cache[name]; ok {
		return body, nil
	}

	var raw []byte
	var err error
	if r.overrideDir != "" {
		raw, err = os.ReadFile(filepath.Join(r.overrideDir, name+".txt"))
	}
	if r.overrideDir == "" || err != nil {
		raw, err = builtin.ReadFile("templates/" + name + ".txt")
	}
	if err != nil {
		return "", fmt.Errorf("loading template %q: %w", name, err)
	}

	body := string(raw)
	r.cache[name] = body
	return body, nil
}

// Render substitutes vars into the named template. A variable referenced by
// the template but absent from vars is a hard error naming the variable.
func (r *Renderer) Render(name string, vars map[string]string) (string, error) {
	body, err := r.template(name)
	if err != nil {
		return "", err
	}

	var missing []string
	out := os.Expand(body, func(key string) string {
		if value, ok := vars[key]; ok {
			return value
		}
		missing = append(missing, key)
		return ""
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("template %q: missing variables: %s", name, strings.Join(missing, ", "))
	}
	return out, nil
}

// ListTemplates returns the available template names, override directory
// entries included, sorted and deduplicated.
func (r *Renderer) ListTemplates() []string {
	seen := map[string]bool{}

	entries, _ := builtin.ReadDir("templates")
	for _, e := range entries {
		seen[strings.TrimSuffix(e.Name(), ".txt")] = true
	}
	if r.overrideDir != "" {
		overrides, err := os.ReadDir(r.overrideDir)
		if err == nil {
			for _, e := range overrides {
				if strings.HasSuffix(e.Name(), ".txt") {
					seen[strings.TrimSuffix(e.Name(), ".txt")] = true
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// number formats n with Spanish digit grouping.
func (r *Renderer) number(n int) string {
	return r.printer.Sprintf("%d", n)
}
