// SPDX-License-Identifier: MIT
// Package: srgw/viz
//
// errors.go — sentinel errors for the viz package.

package viz

import "errors"

// ErrNonSquare indicates a structure matrix whose row and column counts differ.
var ErrNonSquare = errors.New("viz: structure matrix is not square")

// ErrShapeMismatch indicates coordinates that do not align with the
// structure matrix: a coordinate row per node and at least two columns
// are required.
var ErrShapeMismatch = errors.New("viz: coordinates do not match the structure")

// ErrEmptySeries indicates an empty loss sequence.
var ErrEmptySeries = errors.New("viz: empty series")

// ErrBadGrid indicates a SaveGrid layout with fewer cells than plots or a
// non-positive dimension.
var ErrBadGrid = errors.New("viz: invalid grid layout")
