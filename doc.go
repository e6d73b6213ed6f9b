// Package logaut provides supporting utilities for logic-to-automata
// translation tools.
//
// See the restring package for regular-expression-constrained string types
// and the tmpdir package for scoped temporary directories.
package logaut
