// Package xerrors classifies the sentinel errors exposed by decgraph,
// compset, quad, scheme and multilevel into the three taxonomies spec.md §7
// names: PreconditionViolation, InvariantViolation and
// InvalidSchemeComposition. Each owning package registers its own sentinels
// at init() (via Register), so the classification predicates work across
// package boundaries without a central god-file of error constants —
// mirroring how builder/errors.go keeps its sentinels local while
// documenting a shared wrapping contract.
package xerrors

import "errors"

// Kind names one of spec.md §7's three error taxonomies.
type Kind int

const (
	// Precondition covers input-precondition violations: duplicate keys,
	// removing a non-existent element, removing a node with incident edges.
	Precondition Kind = iota

	// Invariant covers internal invariant breaks: a violation is a bug in
	// this module's own bookkeeping, not caller misuse.
	Invariant

	// SchemeComposition covers scheme-composition misuse: appending an
	// already-bound scheme instance.
	SchemeComposition
)

var registry = map[Kind][]error{}

// Register associates every err in errs with kind. Called from each owning
// package's init(); idempotent across repeated calls with the same errors.
func Register(kind Kind, errs ...error) {
	registry[kind] = append(registry[kind], errs...)
}

// Is reports whether err matches any sentinel registered under kind, via
// errors.Is (so wrapped errors classify the same as their sentinel).
func Is(err error, kind Kind) bool {
	for _, sentinel := range registry[kind] {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// IsPrecondition reports whether err is a registered PreconditionViolation.
func IsPrecondition(err error) bool { return Is(err, Precondition) }

// IsInvariant reports whether err is a registered InvariantViolation.
func IsInvariant(err error) bool { return Is(err, Invariant) }

// IsSchemeComposition reports whether err is a registered
// InvalidSchemeComposition.
func IsSchemeComposition(err error) bool { return Is(err, SchemeComposition) }
