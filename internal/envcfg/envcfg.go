// Package envcfg resolves default search paths from the process environment.
package envcfg

import (
	"os"
	"strings"
)

// PathsVar is the environment variable holding a colon-delimited list of
// default search paths.
const PathsVar = "ORBYTE_PROMPTS_PATH"

// SearchPaths returns explicit when non-empty, otherwise the non-empty
// entries of ORBYTE_PROMPTS_PATH, otherwise the current directory. The
// environment is read here, once, at configuration time; resolution itself
// never consults ambient state.
func SearchPaths(explicit []string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	var paths []string
	for _, p := range strings.Split(os.Getenv(PathsVar), ":") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return []string{"."}
	}
	return paths
}
