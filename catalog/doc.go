// Package catalog loads message catalogs for internationalized template text,
// backing the engine's "t" function with go-i18n lookups.
package catalog
