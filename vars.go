package orbyte

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseVars parses a raw variables argument. A blank string means no
// variables. "@path" reads structured data from a file, decoded by extension
// (.toml via go-toml, anything else as YAML, which accepts JSON). Any other
// string is decoded directly as YAML/JSON. The result must be a string-keyed
// mapping; malformed input is a configuration error, not a lookup error.
func ParseVars(raw string) (map[string]any, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return map[string]any{}, nil
	}
	if rest, ok := strings.CutPrefix(v, "@"); ok {
		data, err := os.ReadFile(rest) // #nosec G304 -- path supplied by the caller
		if err != nil {
			return nil, fmt.Errorf("%w: vars file not found: %s", ErrConfig, rest)
		}
		return decodeVars(data, filepath.Ext(rest), rest)
	}
	return decodeVars([]byte(v), "", "inline vars")
}

func decodeVars(data []byte, ext, source string) (map[string]any, error) {
	out := map[string]any{}
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &out)
	default:
		err = yaml.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid variables mapping: %v", ErrConfig, source, err)
	}
	return out, nil
}
