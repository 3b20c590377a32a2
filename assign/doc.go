// Package assign finds the globally minimal-cost one-to-one pairing between a
// truth bucket and a reco bucket by exhaustive permutation search.
//
// Algorithm:
//
//  1. The larger-or-equal side is the search side (reco wins a size tie).
//     It is sorted once by descending transverse momentum; equal pt is
//     ordered by bucket position, so the order is total and deterministic.
//  2. Every permutation of the search side is enumerated in lexicographic
//     order from that start (next-permutation, stopping on wrap-around).
//     The first k = min(n, m) elements are paired positionally with the
//     other side in its given order and the pair costs are summed.
//  3. A strictly smaller sum replaces the incumbent, so among equal-cost
//     permutations the first one enumerated wins.
//  4. Search-side elements beyond position k in the winning permutation are
//     the unmatched leftovers.
//
// The n·m pair costs are computed once into a CostTable before the search,
// so the cost function is called exactly n·m times regardless of the number
// of permutations.
//
// Complexity:
//
//   - Time:   O(n·m) cost calls + O(s!·k) table lookups, s = max(n, m).
//   - Memory: O(n·m).
//
// This is a small-N exact routine. The factorial term is intended: the
// package targets single-digit multiplicities and never falls back to a
// heuristic. WithMaxSearchSize lets an operator refuse oversize inputs up
// front; there is no internal deadline.
//
// Errors:
//
//	ErrNilCandidate   – a bucket holds a nil candidate.
//	ErrSearchTooLarge – the search side exceeds the configured limit.
//	any error of the cost function, wrapped with the failing pair.
package assign
