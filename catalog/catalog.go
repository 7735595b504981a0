package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/orbyte-dev/orbyte"
)

// Ensures Catalog implements the engine's translator hook.
var _ orbyte.Translator = (*Catalog)(nil)

// Catalog is a message catalog backed by go-i18n, loaded from a directory of
// message files (active.en.toml, active.es.yaml, ...). Immutable after Load;
// safe for concurrent use.
type Catalog struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
}

// Load reads every .toml/.yaml/.yml/.json message file directly inside dir.
// The message locale comes from the filename, go-i18n convention. A missing
// or non-directory dir, a malformed file, or an empty directory is a
// configuration error.
func Load(dir, defaultLocale string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: catalog directory not found: %s", orbyte.ErrConfig, dir)
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid default locale %q: %v", orbyte.ErrConfig, defaultLocale, err)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("orbyte: read catalog dir %s: %w", dir, err)
	}
	loaded := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".toml", ".yaml", ".yml", ".json":
		default:
			continue
		}
		if _, err := bundle.LoadMessageFile(filepath.Join(dir, e.Name())); err != nil {
			return nil, fmt.Errorf("%w: catalog file %s is malformed: %v", orbyte.ErrConfig, e.Name(), err)
		}
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("%w: no message files in catalog directory: %s", orbyte.ErrConfig, dir)
	}
	return &Catalog{bundle: bundle, defaultLang: tag}, nil
}

// T renders the message identified by key for locale, falling back to the
// default locale and finally to the key itself.
func (c *Catalog) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	langs := make([]string, 0, 2)
	if locale != "" {
		langs = append(langs, locale)
	}
	langs = append(langs, c.defaultLang.String())
	localizer := i18n.NewLocalizer(c.bundle, langs...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}
