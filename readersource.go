// SPDX-License-Identifier: EPL-2.0

package audiobridge

import (
	"fmt"
	"io"
	"math"

	"github.com/thecargocultnz/audiobridge/reader"
)

// ReaderSource adapts a document reader into the streaming audio.Source
// shape, so rendered document audio can re-enter the resample and encode
// pipelines. Planes come out interleaved, at most blockSize frames per
// read. Failed reads surface as silence, matching the reader contract.
type ReaderSource struct {
	r         reader.SampleReader
	channels  int
	blockSize int
	length    int64
	pos       int64

	planes [][]float32
}

// NewReaderSource wraps r, pulling up to blockSize frames per read. A
// blockSize of zero or less picks a default.
func NewReaderSource(r reader.SampleReader, blockSize int) *ReaderSource {
	if blockSize <= 0 {
		blockSize = 4096
	}

	channels := max(r.ChannelCount(), 1)

	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = make([]float32, blockSize)
	}

	return &ReaderSource{
		r:         r,
		channels:  channels,
		blockSize: blockSize,
		length:    r.LengthInSamples(),
		planes:    planes,
	}
}

func (s *ReaderSource) SampleRate() int { return int(math.Round(s.r.SampleRate())) }
func (s *ReaderSource) Channels() int   { return s.channels }
func (s *ReaderSource) BufSize() int    { return s.blockSize * s.channels }

func (s *ReaderSource) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing reader: %w", err)
	}

	return nil
}

func (s *ReaderSource) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, nil
	}

	remaining := s.length - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	n := min(frames, s.blockSize)
	if int64(n) > remaining {
		n = int(remaining)
	}

	for c := range s.planes {
		s.planes[c] = s.planes[c][:n]
	}

	s.r.ReadSamples(s.planes, 0, s.pos, n)

	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.planes[c][f]
		}
	}

	s.pos += int64(n)

	return n * s.channels, nil
}
