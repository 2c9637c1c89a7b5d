// Package kuhnmunkres is a small, pure-Go toolkit for the linear assignment
// problem: pairing n sources with n targets at minimum total cost.
//
// What is inside?
//
//	hungarian/ - Kuhn–Munkres solver (O(n³)) with adapters for matrices,
//	             [][]float64, worker/job slices, point sets and gonum matrices
//	matrix/    - dense row-major float64 storage, sentinel errors, validators
//
// Why choose kuhnmunkres?
//
//   - Deterministic – fixed scan orders, documented tie-breaking
//   - Strict input checks – shape and finiteness validated before any work
//   - Observable – phase/augment hooks and an optional logr.Logger
//   - Pure Go – no cgo
//
// Quick example:
//
//	     T0  T1
//	S0 [ 1   2 ]
//	S1 [ 2   1 ]
//
// assigns S0→T0 and S1→T1 for a total cost of 2.
//
//	go get github.com/katalvlaran/kuhnmunkres
package kuhnmunkres
