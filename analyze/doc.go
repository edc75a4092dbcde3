// Package analyze runs the whole cycle-counting pipeline in one call:
// turning-point extraction → four-point counting → residual policy, with an
// optional frequency matrix over the combined cycle list.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fatigue/analyze"
//
//	opts := analyze.DefaultOptions()
//	opts.Residue = fourpoint.CloseLoop
//
//	bundle, err := analyze.Run(raw, opts)
//	if err != nil { /* invalid residual mode */ }
//
//	m, _ := bundle.Histogram(opts.BinsRange, opts.BinsMean)
//
// Bundle.Cycles is the concatenation of every step's closed cycles, in step
// order, followed by the residual cycles — so replaying Bundle.Events and
// then applying the residual policy reproduces it exactly.
//
// The pipeline is pure: a fresh analysis always starts from an empty stack,
// nothing is shared between calls, and recomputation replaces results
// wholesale.
package analyze
