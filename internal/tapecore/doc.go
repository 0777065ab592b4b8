// Package tapecore implements the tape-based reverse-mode differentiation
// engine: Value, NodeID, Tape, GradientStore, the Eval and Check algebras,
// Graph (the recording adapter), and the backward driver.
//
// Nothing in this package is exported to users directly; the tape package
// re-exports the pieces meant for public consumption as generic type
// aliases, the same way born/autodiff re-exports born/internal/autodiff.
package tapecore
