package orbyte

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	identifierRe = regexp.MustCompile(`^[\w\-/.]+$`)
	localeRe     = regexp.MustCompile(`^[A-Za-z]{2,3}(?:-[A-Za-z0-9]{2,8})*$`)
	// localeSuffixRe additionally accepts "_" separators, which appear in
	// filenames like invoice.en_US.tmpl before normalization.
	localeSuffixRe = regexp.MustCompile(`^[A-Za-z]{2,3}(?:[-_][A-Za-z0-9]{2,8})*$`)
)

// ValidateIdentifier checks that id is a usable logical template name:
// non-empty, relative, no ".." segments, no trailing template extension, and
// only letters, digits, "_", "-", "/" and ".". Nested namespaces use "/"
// (e.g. "emails/welcome").
func ValidateIdentifier(id, ext string) error {
	if id == "" {
		return fmt.Errorf("%w: identifier must not be empty", ErrConfig)
	}
	if strings.HasPrefix(id, "/") || filepath.IsAbs(id) {
		return fmt.Errorf("%w: identifier %q must not be absolute", ErrConfig, id)
	}
	for _, part := range strings.Split(id, "/") {
		if part == ".." {
			return fmt.Errorf("%w: identifier %q must not contain a %q segment", ErrConfig, id, "..")
		}
	}
	if ext != "" && strings.HasSuffix(id, ext) {
		return fmt.Errorf("%w: identifier %q must not include the %q extension", ErrConfig, id, ext)
	}
	if !identifierRe.MatchString(id) {
		return fmt.Errorf("%w: identifier %q contains unsupported characters (allowed: letters, digits, _, -, /, .)", ErrConfig, id)
	}
	return nil
}

// NormalizeLocale substitutes defaultLocale when locale is empty, maps "_" to
// "-" (en_US becomes en-US), and validates the result against the locale
// grammar: a 2-3 letter primary tag plus optional 2-8 alphanumeric subtags.
func NormalizeLocale(locale, defaultLocale string) (string, error) {
	loc := strings.TrimSpace(locale)
	if loc == "" {
		loc = strings.TrimSpace(defaultLocale)
	}
	if loc == "" {
		return "", fmt.Errorf("%w: locale must not be empty", ErrConfig)
	}
	loc = strings.ReplaceAll(loc, "_", "-")
	if !localeRe.MatchString(loc) {
		return "", fmt.Errorf("%w: locale %q is invalid, expected a tag like %q or %q", ErrConfig, loc, "en", "en-US")
	}
	return loc, nil
}

// ValidateSearchPaths checks once, at configuration time, that every search
// path exists and is a directory. Lookups do not re-check.
func ValidateSearchPaths(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: at least one search path is required", ErrConfig)
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("%w: search path does not exist: %s", ErrConfig, p)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: search path is not a directory: %s", ErrConfig, p)
		}
	}
	return nil
}

// isLocaleSuffix reports whether a filename stem segment looks like a locale
// tag: grammar match with "_" separators allowed, at most 10 characters.
func isLocaleSuffix(s string) bool {
	return len(s) <= 10 && localeSuffixRe.MatchString(s)
}
