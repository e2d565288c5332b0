// SPDX-License-Identifier: MIT

// Package monomial: domain types.
// This file contains ONLY the Term type and its intrinsic accessors. Ordering
// lives in grevlex.go and enumeration in enumerate.go per the package-layout
// conventions (errors in errors.go, one concern per file).
package monomial

import (
	"fmt"
	"strings"
)

// Term is an exponent tuple of fixed length: Term{2, 0, 1} represents x²z in
// three variables. Entries are non-negative by contract. Terms produced by
// this package own their backing array and are treated as immutable values;
// callers that mutate a Term in place take responsibility for any aliasing.
type Term []int

// Degree returns the total degree of the term, i.e. the sum of its entries.
// Complexity: O(len(t)).
func (t Term) Degree() int {
	var sum int
	for _, e := range t {
		sum += e // exponents are non-negative by contract
	}

	return sum
}

// Clone returns an independent copy of the term.
// Complexity: O(len(t)).
func (t Term) Clone() Term {
	out := make(Term, len(t))
	copy(out, t)

	return out
}

// String renders the term as "(e1,e2,...,en)" for diagnostics.
// Complexity: O(len(t)).
func (t Term) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", e)
	}
	b.WriteByte(')')

	return b.String()
}
