package orbyte

import "fmt"

// Orbyte composes a Resolver with a rendering Engine. Construct with New;
// configuration is immutable afterwards and concurrent calls are safe.
type Orbyte struct {
	resolver *Resolver
	engine   Engine
}

// New builds an Orbyte over the given search paths, highest priority first.
// Every path must exist and be a directory; paths are validated once here.
func New(searchPaths []string, opts ...Option) (*Orbyte, error) {
	cfg := &config{
		defaultLocale: DefaultLocale,
		ext:           DefaultExtension,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	res, err := NewResolver(searchPaths, cfg.defaultLocale, cfg.ext)
	if err != nil {
		return nil, err
	}
	eng := cfg.engine
	if eng == nil {
		cfg.engineCfg.Extension = cfg.ext
		eng, err = NewEngine(cfg.engineCfg)
		if err != nil {
			return nil, err
		}
	} else if cfg.engineTouched {
		return nil, fmt.Errorf("%w: WithEngine cannot be combined with engine options", ErrConfig)
	}
	return &Orbyte{resolver: res, engine: eng}, nil
}

// Render resolves identifier for locale and renders the chosen file with
// vars. A failed lookup returns a *LookupError listing every probed
// candidate; an unbound template variable returns a *VariableError. Any other
// engine error propagates unchanged.
func (o *Orbyte) Render(identifier string, vars map[string]any, locale string) (string, error) {
	res, err := o.resolver.Resolve(identifier, locale)
	if err != nil {
		return "", err
	}
	if res.Chosen == "" {
		return "", &LookupError{Identifier: identifier, Candidates: res.Candidates}
	}
	return o.engine.Render(res.Chosen, res.Locale, vars)
}

// Explanation is the diagnostic view of one lookup: the inputs, every
// candidate that was or would be probed, and the outcome.
type Explanation struct {
	Identifier string   `json:"identifier"`
	Locale     string   `json:"locale"`
	Candidates []string `json:"candidates"`
	Chosen     string   `json:"chosen,omitempty"`
}

// Explain performs the same resolution as Render without touching the
// rendering engine. Chosen is empty when no candidate matched.
func (o *Orbyte) Explain(identifier, locale string) (*Explanation, error) {
	res, err := o.resolver.Resolve(identifier, locale)
	if err != nil {
		return nil, err
	}
	return &Explanation{
		Identifier: res.Identifier,
		Locale:     res.Locale,
		Candidates: res.Candidates,
		Chosen:     res.Chosen,
	}, nil
}

// ListIdentifiers returns the sorted logical identifiers available across the
// search paths.
func (o *Orbyte) ListIdentifiers(recursive bool) ([]string, error) {
	return o.resolver.ListIdentifiers(recursive)
}

// Resolver returns the underlying resolver, e.g. for direct Resolve calls.
func (o *Orbyte) Resolver() *Resolver { return o.resolver }
