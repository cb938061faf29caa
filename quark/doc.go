// Package quark is the software rendering core of quarkcube.
//
// It rotates static geometry, projects it onto a 2D plane and rasterizes
// point markers into a caller-owned ARGB color buffer.
//
// Pipeline (fixed):
//
//	Mesh → RotateX → RotateY → RotateZ → camera offset → Projection → ColorBuffer.
//
// There is no depth test and no blending: the last write to a pixel wins.
// The package performs no I/O; presenting a buffer is left to the caller.
package quark
