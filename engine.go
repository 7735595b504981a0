package orbyte

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
)

// Engine renders a selected template file with a variable mapping. A
// reference to an unbound variable must surface as an error matching
// ErrMissingVariable; every other failure propagates unchanged. locale is the
// normalized locale of the resolution, available to locale-aware template
// functions.
type Engine interface {
	Render(path, locale string, vars map[string]any) (string, error)
}

// Translator supplies message-catalog lookups for the "t" template function.
// T never fails: implementations fall back internally, ultimately to the key.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// markupExts are stem suffixes rendered through html/template for contextual
// escaping; everything else produces raw text.
var markupExts = map[string]bool{
	".html": true,
	".htm":  true,
	".xml":  true,
}

// missingKeyRe extracts the variable name from a missingkey=error failure.
var missingKeyRe = regexp.MustCompile(`map has no entry for key "([^"]*)"`)

// EngineConfig configures a TemplateEngine.
type EngineConfig struct {
	// Extension is the template file extension (default DefaultExtension).
	Extension string
	// Filters are custom named functions merged into the builtin function map.
	Filters template.FuncMap
	// Translator backs the "t" template function; nil makes "t" echo the key.
	Translator Translator
	// Sandbox restricts templates to the builtin function map, for untrusted
	// template sources. Combining Sandbox with Filters is a config error.
	Sandbox bool
	// NoCache disables the parsed-template cache; every render reparses.
	NoCache bool
}

// Ensures TemplateEngine implements Engine.
var _ Engine = (*TemplateEngine)(nil)

// TemplateEngine is the default Engine. Plain templates render raw through
// text/template; files whose stem ends in .html, .htm, or .xml render through
// html/template with contextual escaping. Missing variables fail rendering
// (missingkey=error). Safe for concurrent use.
type TemplateEngine struct {
	ext        string
	filters    template.FuncMap
	translator Translator
	sandbox    bool
	cache      *templateCache // nil when caching is disabled
}

// NewEngine creates a TemplateEngine from cfg.
func NewEngine(cfg EngineConfig) (*TemplateEngine, error) {
	if cfg.Sandbox && len(cfg.Filters) > 0 {
		return nil, fmt.Errorf("%w: custom filters are not allowed in sandbox mode", ErrConfig)
	}
	ext := cfg.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	e := &TemplateEngine{
		ext:        ext,
		filters:    cfg.Filters,
		translator: cfg.Translator,
		sandbox:    cfg.Sandbox,
	}
	if !cfg.NoCache {
		e.cache = newTemplateCache()
	}
	return e, nil
}

// Render parses the template at path (from cache when fresh) and executes it
// with vars. An unbound variable reference returns a *VariableError; parse
// and other execution errors propagate unchanged.
func (e *TemplateEngine) Render(path, locale string, vars map[string]any) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("orbyte: read template %s: %w", path, err)
	}
	parse := func() (executable, error) { return e.parse(path, locale) }
	var tpl executable
	if e.cache != nil {
		tpl, err = e.cache.get(path+"\x00"+locale, info.ModTime(), parse)
	} else {
		tpl, err = parse()
	}
	if err != nil {
		return "", err
	}
	if vars == nil {
		vars = map[string]any{}
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, vars); err != nil {
		if m := missingKeyRe.FindStringSubmatch(err.Error()); m != nil {
			return "", &VariableError{Variable: m[1], Template: path, Err: ErrMissingVariable}
		}
		return "", err
	}
	return buf.String(), nil
}

// Reload clears the parsed-template cache (for hot-reload in development).
func (e *TemplateEngine) Reload() {
	if e.cache != nil {
		e.cache.reset()
	}
}

func (e *TemplateEngine) parse(path, locale string) (executable, error) {
	src, err := os.ReadFile(path) // #nosec G304 -- path comes from validated resolution
	if err != nil {
		return nil, fmt.Errorf("orbyte: read template %s: %w", path, err)
	}
	funcs := e.funcMap(locale)
	name := filepath.Base(path)
	if e.isMarkup(name) {
		return htmltemplate.New(name).Option("missingkey=error").Funcs(funcs).Parse(string(src))
	}
	return template.New(name).Option("missingkey=error").Funcs(funcs).Parse(string(src))
}

// isMarkup reports whether the file name, after stripping the template
// extension and any locale suffix, carries a markup extension.
func (e *TemplateEngine) isMarkup(name string) bool {
	stem := strings.TrimSuffix(name, e.ext)
	if i := strings.LastIndex(stem, "."); i > 0 && isLocaleSuffix(stem[i+1:]) {
		stem = stem[:i]
	}
	return markupExts[strings.ToLower(filepath.Ext(stem))]
}
