package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index. It must be
// pure and deterministic: given the same idx, it always returns the same
// string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0->"0", 42->"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixedIDFn returns an IDFn producing prefix+decimal(idx), e.g.
// PrefixedIDFn("v") -> "v0", "v1", ...
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
