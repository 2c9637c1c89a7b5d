// Package matrix provides the dense numeric storage used by the assignment
// solvers of this module.
//
// The matrix package provides:
//
//   - Matrix: a minimal interface (Rows, Cols, At, Set, Clone) that callers
//     can implement over their own storage.
//   - Dense: a row-major, bounds-checked implementation with a single flat
//     buffer. Hot loops take RowView slices to skip per-cell checks.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSquareNonNil and
//     ValidateFinite, each returning a wrapped sentinel from errors.go.
//
// Dense rejects NaN and ±Inf on ingestion (Set, NewDenseFrom); algorithms that
// need to reduce a matrix in place operate on RowView slices they own.
//
// See example_test.go for usage patterns.
package matrix
