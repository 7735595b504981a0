// Package orbyte resolves logical prompt identifiers plus an optional locale
// to concrete template files on disk and renders them with supplied variables.
// Resolution walks an ordered list of search directories with a deterministic
// locale fallback chain: an earlier directory always wins outright, and within
// one directory the exact locale beats the default locale beats the
// locale-less file.
package orbyte
