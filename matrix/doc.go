// Package matrix provides the dense numeric storage shared by the colony
// packages.
//
// Dense is a row-major float64 matrix backed by one flat slice. It holds the
// cached point-to-point distances (read-only after construction) and the
// pheromone table (incremented in place once per iteration).
//
// Numeric policy:
//   - indices are bounds-checked; out-of-range access returns ErrOutOfRange;
//   - writes reject NaN and ±Inf with ErrNaNInf, so a stored value is always finite;
//   - Clone is a deep copy and never shares storage.
//
// The package never logs and never panics on user input.
package matrix
