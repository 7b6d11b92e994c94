// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize is returned when a destination buffer is not a
	// whole number of frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat is returned when no decoder is registered for a
	// requested format key.
	ErrUnknownFormat = errors.New("unknown audio format")
)
