// Package resolve turns reflected program elements into argument and input
// field descriptors.
//
// Resolution is a chain of strategies run once per element. Each strategy
// fills the parts of a Draft that are still empty and hands it on; the
// last strategy completes the draft from the element's structural
// signature. Because earlier strategies fill first, the order of the chain
// is the precedence of the sources:
//
//	attribute -> documentation -> structural
//
// A strategy never swallows an error raised further down the chain, and the
// pipeline never recovers from one. No descriptor is returned alongside an
// error.
package resolve
