// Package lapjv solves the Linear Assignment Problem (LAP) over sparse,
// integer cost matrices using the Jonker–Volgenant shortest augmenting
// path algorithm.
//
// 🚀 What is lapjv?
//
//	A small, deterministic library that brings together:
//		• Sparse cost matrices: CSR-style storage, builder with validation
//		• Full solve: column reduction, reduction transfer, augmenting
//		  row reduction, then shortest augmenting paths
//		• Delta re-optimization: extend an existing solution when new
//		  unassigned rows appear, without restarting from scratch
//		• Certified results: dual variables (u, v) proving optimality
//		  via complementary slackness
//
// ✨ Why choose lapjv?
//
//   - Exact – optimal assignments, never heuristics
//   - Deterministic – identical input yields identical Solution
//   - Sparse-first – absent cells are implicit infinite cost; work is
//     proportional to stored entries, not to n²
//   - Warm starts – DeltaSolve reuses prior duals and assignments
//
// Everything is organized under two subpackages:
//
//	sparse/ — the cost matrix: Entry, Matrix, Builder, gonum adapter
//	lap/    — the solver: Solve, DeltaSolve, Solution
//
// Quick sketch of the problem:
//
//	      col0 col1 col2
//	row0 [  2    2    ∞ ]
//	row1 [  0    ∞    2 ]      minimize  Σ cost(i, rowsol[i])
//	row2 [  ∞    0    2 ]      over bijections rows → columns
//
// Dive into lap/doc.go for the algorithm walkthrough and sparse/doc.go
// for matrix construction.
//
//	go get github.com/katalvlaran/lapjv
package lapjv
