// SPDX-License-Identifier: MIT
// Package store: sentinel error set. Matched via errors.Is; wrapped with
// operation context at call sites.

package store

import "errors"

var (
	// ErrNoArchive signals that no archive file matches the given pattern.
	// Absence is not a failure: callers render partial reports around it.
	ErrNoArchive = errors.New("store: no archive matches pattern")

	// ErrUnknownArray indicates that a structured archive has no array
	// under the requested name.
	ErrUnknownArray = errors.New("store: unknown array name")

	// ErrCorruptArchive indicates a structurally damaged archive on disk:
	// a BLOB whose length is not a multiple of the element size, mismatched
	// real/imaginary lengths, or a shape that disagrees with the payload.
	ErrCorruptArchive = errors.New("store: corrupt archive")

	// ErrShape is returned when an array is accessed under the wrong rank,
	// e.g. asking for a matrix view of a vector entry.
	ErrShape = errors.New("store: array shape mismatch")
)
