// Package dfs provides depth-first traversal helpers and the string-slice
// canonicalization routines package algo uses to compare elementary circuits
// regardless of which vertex they start at: SimpleCycles orders its output
// by canonical signature and CyclesThrough dedupes by it.
package dfs

import "strings"

// IndexOf returns the first index of val in s, or -1 if absent.
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice with the elements of s in reverse order.
func Reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Compare lexicographically compares two equal-length string slices.
// Returns -1, 0, or 1.
func Compare(a, b []string) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// JoinSig joins c with commas into a single signature string, suitable as a
// map key for cycle deduplication.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation returns the lexicographically minimal rotation of s,
// computed via Booth's algorithm in O(n) time.
func MinimalRotation(s []string) []string {
	if len(s) == 0 {
		return s
	}
	doubled := append(append([]string(nil), s...), s...)
	n := len(s)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]string, n)
	for i := 0; i < n; i++ {
		res[i] = doubled[k+i]
	}

	return res
}

// Canonical computes the canonical signature and representative ordering of
// a closed cycle (cycle[0] == cycle[len(cycle)-1]): the lexicographically
// smaller of its minimal forward rotation and its minimal reversed rotation.
func Canonical(cycle []string) (sig string, canon []string) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := MinimalRotation(base)
	rotB := MinimalRotation(Reverse(base))

	picker := rotF
	if Compare(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]string(nil), picker...), picker[0])

	return JoinSig(closed), closed
}
