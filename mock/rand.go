// Package mock provides test doubles for lear interfaces.
package mock

import "github.com/kyle-silver/lear"

// Compile-time interface verification.
var _ lear.Rand = (*Rand)(nil)

// Rand is a mock implementation of lear.Rand.
type Rand struct {
	IntNFn func(n int) int
}

func (r *Rand) IntN(n int) int {
	return r.IntNFn(n)
}
