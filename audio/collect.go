// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src and returns its samples deinterleaved, one plane per
// channel. Every plane has the same length. A bufSize of zero or less
// falls back to the source's preferred read size. A torn final frame is
// dropped rather than padded.
func ReadAll(src Source, bufSize int) ([][]float32, error) {
	channels := max(src.Channels(), 1)

	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	bufSize = max(bufSize, channels)
	bufSize -= bufSize % channels

	var interleaved []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		interleaved = append(interleaved, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}

	frames := len(interleaved) / channels

	planes := make([][]float32, channels)
	for c := range planes {
		plane := make([]float32, frames)
		for f := range frames {
			plane[f] = interleaved[f*channels+c]
		}
		planes[c] = plane
	}

	return planes, nil
}
