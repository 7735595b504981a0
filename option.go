package orbyte

import "text/template"

type config struct {
	defaultLocale string
	ext           string
	engine        Engine
	engineCfg     EngineConfig
	engineTouched bool
}

// Option configures New (functional options pattern).
type Option func(*config)

// WithDefaultLocale sets the default locale used in the fallback chain
// (default "en").
func WithDefaultLocale(locale string) Option {
	return func(c *config) {
		c.defaultLocale = locale
	}
}

// WithExtension sets the template file extension (default ".tmpl").
func WithExtension(ext string) Option {
	return func(c *config) {
		c.ext = ext
	}
}

// WithEngine replaces the default template engine, e.g. with a stub in tests.
// Cannot be combined with the engine options below.
func WithEngine(e Engine) Option {
	return func(c *config) {
		c.engine = e
	}
}

// WithFilters merges custom named functions into the default engine's
// function map.
func WithFilters(filters template.FuncMap) Option {
	return func(c *config) {
		c.engineCfg.Filters = filters
		c.engineTouched = true
	}
}

// WithTranslator installs a message catalog backing the "t" template function.
func WithTranslator(tr Translator) Option {
	return func(c *config) {
		c.engineCfg.Translator = tr
		c.engineTouched = true
	}
}

// WithSandbox restricts templates to the builtin function map, for untrusted
// template sources. Custom filters are rejected in sandbox mode.
func WithSandbox() Option {
	return func(c *config) {
		c.engineCfg.Sandbox = true
		c.engineTouched = true
	}
}

// WithoutCache disables the default engine's parsed-template cache.
func WithoutCache() Option {
	return func(c *config) {
		c.engineCfg.NoCache = true
		c.engineTouched = true
	}
}
