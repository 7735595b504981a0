package orbyte

import (
	"fmt"
	"maps"
	"strings"
	"text/template"
	"unicode/utf8"
)

// builtinFuncMap returns the template functions available to every template,
// including sandboxed ones.
func builtinFuncMap() template.FuncMap {
	return template.FuncMap{
		"upper":          strings.ToUpper,
		"lower":          strings.ToLower,
		"trim":           strings.TrimSpace,
		"join":           joinFilter,
		"default":        defaultFilter,
		"truncate_chars": truncateChars,
	}
}

// funcMap builds the per-render function map: builtins, custom filters
// (unless sandboxed), and the locale-bound "t" translation function.
func (e *TemplateEngine) funcMap(locale string) template.FuncMap {
	funcs := builtinFuncMap()
	if !e.sandbox {
		maps.Copy(funcs, e.filters)
	}
	funcs["t"] = e.makeTranslate(locale)
	return funcs
}

// makeTranslate returns the "t" function bound to the render locale. Without
// a configured Translator it echoes the message key.
func (e *TemplateEngine) makeTranslate(locale string) func(string, ...map[string]any) string {
	return func(key string, data ...map[string]any) string {
		if e.translator == nil {
			return key
		}
		var d map[string]any
		if len(data) > 0 {
			d = data[0]
		}
		return e.translator.T(locale, key, d)
	}
}

// truncateChars truncates text to at most maxChars runes.
// Uses RuneCountInString for early exit to avoid allocating []rune when no truncation is needed.
func truncateChars(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxChars])
}

// joinFilter joins list elements with sep. Accepts []string or []any.
func joinFilter(list any, sep string) (string, error) {
	switch v := list.(type) {
	case nil:
		return "", nil
	case []string:
		return strings.Join(v, sep), nil
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, sep), nil
	default:
		return "", fmt.Errorf("join: expected a list, got %T", list)
	}
}

// defaultFilter returns fallback when value is nil or an empty string.
func defaultFilter(fallback, value any) any {
	if value == nil {
		return fallback
	}
	if s, ok := value.(string); ok && s == "" {
		return fallback
	}
	return value
}
