// Package catalog is the static registry of skeleton components. Each
// component is a named feature toggle with a default selection, a list of
// related components and the template files it contributes. The table is
// declared in components.yaml, embedded into the binary and never mutated
// after loading.
package catalog
