package filters

import (
	"fmt"
	"os"
	"reflect"
	"text/template"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/orbyte-dev/orbyte"
)

// Load evaluates the Go source file at path in a fresh yaegi interpreter and
// returns the filter set it exports. The file must declare package filters
// and export either a Filters map[string]any value or a GetFilters()
// map[string]any factory. Every value must be a function; any other shape is
// a configuration error.
//
// The interpreter sees only the standard library, never the host process
// symbols, so a filters file cannot reach into the running program.
func Load(path string) (template.FuncMap, error) {
	src, err := os.ReadFile(path) // #nosec G304 -- path supplied by the caller
	if err != nil {
		return nil, fmt.Errorf("%w: filters file not found: %s", orbyte.ErrConfig, path)
	}
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("orbyte: load interpreter stdlib: %w", err)
	}
	if _, err := i.Eval(string(src)); err != nil {
		return nil, fmt.Errorf("%w: filters file %s did not evaluate: %v", orbyte.ErrConfig, path, err)
	}

	if v, err := i.Eval("filters.Filters"); err == nil {
		m, ok := v.Interface().(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: Filters in %s must be a map[string]any", orbyte.ErrConfig, path)
		}
		return toFuncMap(m, path)
	}
	v, err := i.Eval("filters.GetFilters")
	if err != nil {
		return nil, fmt.Errorf("%w: filters file %s must export Filters or GetFilters()", orbyte.ErrConfig, path)
	}
	factory, ok := v.Interface().(func() map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: GetFilters in %s must be func() map[string]any", orbyte.ErrConfig, path)
	}
	return toFuncMap(factory(), path)
}

func toFuncMap(m map[string]any, path string) (template.FuncMap, error) {
	funcs := make(template.FuncMap, len(m))
	for name, fn := range m {
		if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
			return nil, fmt.Errorf("%w: filter %q in %s is not a function", orbyte.ErrConfig, name, path)
		}
		funcs[name] = fn
	}
	return funcs, nil
}
