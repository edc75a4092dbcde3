// Package fatigue is an in-memory engine for reducing a raw numeric load
// history to closed fatigue cycles — turning points, four-point stack
// counting, residual policies, and a 2-D frequency matrix.
//
// 🚀 What is fatigue?
//
//	A small, deterministic library that brings together:
//		• Turning points: run compression + reversal detection (series/)
//		• Cycle counting: the four-point stack method with a full
//		  per-step audit trail (fourpoint/)
//		• Residual policies: Discard, Half, CloseLoop (fourpoint/)
//		• Frequency matrix: joint range×mean binning (histogram/)
//		• One-call pipeline: raw samples → result bundle (analyze/)
//
// ✨ Why choose fatigue?
//
//   - Deterministic – identical inputs give bit-identical outputs
//   - Replayable – every step logs stack snapshots and closed cycles,
//     so batch results equal incremental replay exactly
//   - Pure Go – no cgo, no runtime deps, no shared mutable state
//   - Explicit edge policy – empty, constant and monotonic histories all
//     produce documented fallbacks instead of errors
//
// Data flows strictly forward:
//
//	raw samples → turning points → (events, closed cycles)
//	            → (+ residual cycles) → full cycle list → matrix
//
// no stage reads back from a later one, so each package is usable on its
// own. Dive into the per-package docs for the algorithms, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/fatigue
package fatigue
