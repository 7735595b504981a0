// Package filters loads template filter sets from Go source files evaluated
// in an isolated interpreter, so deployments can extend the rendering
// function map without recompiling.
package filters
