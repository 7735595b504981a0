package orbyte

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// DefaultExtension is the template file extension used when none is configured.
const DefaultExtension = ".tmpl"

// DefaultLocale is the fallback locale used when none is configured.
const DefaultLocale = "en"

// excludedDirs are directory names skipped during identifier listing:
// version-control metadata, bytecode caches, virtual environments.
var excludedDirs = map[string]bool{
	".git":        true,
	".hg":         true,
	".svn":        true,
	"__pycache__": true,
	".venv":       true,
	"venv":        true,
}

// Resolution is the immutable result of one lookup: the requested identifier,
// the normalized locale, every candidate path probed (in probe order), and
// the chosen path (empty when nothing matched).
type Resolution struct {
	Identifier string
	Locale     string
	Candidates []string
	Chosen     string
}

// Resolver maps (identifier, locale) to a concrete template file among the
// configured search paths. Fields must not be mutated after construction to
// ensure goroutine safety.
type Resolver struct {
	searchPaths   []string
	defaultLocale string
	ext           string
}

// NewResolver creates a Resolver over the given search paths, highest
// priority first. Every path must exist and be a directory.
func NewResolver(searchPaths []string, defaultLocale, ext string) (*Resolver, error) {
	if err := ValidateSearchPaths(searchPaths); err != nil {
		return nil, err
	}
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	if ext == "" {
		ext = DefaultExtension
	}
	return &Resolver{
		searchPaths:   slices.Clone(searchPaths),
		defaultLocale: defaultLocale,
		ext:           ext,
	}, nil
}

// DefaultLocale returns the configured default locale.
func (r *Resolver) DefaultLocale() string { return r.defaultLocale }

// Extension returns the configured template file extension.
func (r *Resolver) Extension() string { return r.ext }

// Resolve probes candidate files for identifier under every search path.
//
// Candidate names, in order: {id}.{locale}{ext}, {id}.{defaultLocale}{ext}
// (only when the locale differs from the default), {id}{ext}. Search paths
// are tried in priority order with all names within one path before the next
// path, so a match in an earlier path always wins, even against a more
// locale-specific file in a later one. The first existing candidate
// short-circuits and the candidate list is truncated at that point.
func (r *Resolver) Resolve(identifier, locale string) (*Resolution, error) {
	if err := ValidateIdentifier(identifier, r.ext); err != nil {
		return nil, err
	}
	loc, err := NormalizeLocale(locale, r.defaultLocale)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, 3)
	names = append(names, identifier+"."+loc+r.ext)
	if loc != r.defaultLocale {
		names = append(names, identifier+"."+r.defaultLocale+r.ext)
	}
	names = append(names, identifier+r.ext)

	var candidates []string
	for _, base := range r.searchPaths {
		for _, name := range names {
			p := filepath.Join(base, filepath.FromSlash(name))
			candidates = append(candidates, p)
			if _, err := os.Stat(p); err == nil {
				return &Resolution{
					Identifier: identifier,
					Locale:     loc,
					Candidates: candidates,
					Chosen:     p,
				}, nil
			}
		}
	}
	return &Resolution{Identifier: identifier, Locale: loc, Candidates: candidates}, nil
}

// ListIdentifiers returns the sorted set of logical identifiers available
// across all search paths. The template extension and a trailing locale
// suffix are stripped from filenames, so welcome.en.tmpl, welcome.es.tmpl,
// and welcome.tmpl all collapse to "welcome". Identifiers use forward slashes
// on every platform. Search paths that no longer exist are skipped.
func (r *Resolver) ListIdentifiers(recursive bool) ([]string, error) {
	seen := make(map[string]struct{})
	for _, base := range r.searchPaths {
		if _, err := os.Stat(base); err != nil {
			continue
		}
		if !recursive {
			entries, err := os.ReadDir(base)
			if err != nil {
				return nil, fmt.Errorf("orbyte: scan %s: %w", base, err)
			}
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), r.ext) {
					continue
				}
				seen[r.identifierFor(e.Name())] = struct{}{}
			}
			continue
		}
		err := filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != base && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(d.Name(), r.ext) {
				return nil
			}
			rel, err := filepath.Rel(base, p)
			if err != nil {
				return err
			}
			seen[r.identifierFor(rel)] = struct{}{}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("orbyte: scan %s: %w", base, err)
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// skipDir reports whether a directory is excluded from listing: hidden names
// and the fixed excludedDirs set.
func skipDir(name string) bool {
	return excludedDirs[name] || strings.HasPrefix(name, ".")
}

// identifierFor converts a path relative to a search path into a logical
// identifier: extension stripped, locale suffix stripped from the filename
// stem only (a directory segment like "v1.2" is left alone), forward slashes.
func (r *Resolver) identifierFor(rel string) string {
	rel = filepath.ToSlash(rel)
	dir, file := path.Split(rel)
	stem := strings.TrimSuffix(file, r.ext)
	if i := strings.LastIndex(stem, "."); i > 0 && isLocaleSuffix(stem[i+1:]) {
		stem = stem[:i]
	}
	return dir + stem
}
