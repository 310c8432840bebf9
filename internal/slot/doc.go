// Package slot implements the storage-layout optimizer core.
//
// A contract's state variables are packed sequentially into 256-bit
// storage words. A variable that does not fit into the word currently
// being filled closes it and starts a fresh one; a word is never
// revisited once closed. Because the pack is a streaming greedy fold,
// the number of words consumed depends on declaration order.
//
// The optimizer scores every ordering of the input variables and
// reports one that consumes the minimum number of words. The search is
// deliberately exhaustive (n! orderings): real contract layouts are
// small, and only full enumeration guarantees true optimality. Do not
// swap in a heuristic here.
//
// DETERMINISM:
//
// The whole computation is a pure function of the input sequence.
// Orderings are visited in a fixed order (Heap's algorithm over the
// input arrangement), ties between minimal orderings are broken by a
// lexicographic comparison of variable names, and name-equal candidates
// resolve to the first one encountered. Running the search twice on the
// same input yields byte-identical results.
package slot
