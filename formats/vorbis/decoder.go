package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/thecargocultnz/audiobridge/audio"
)

// oggReader is the slice of oggvorbis.Reader the source needs, kept narrow
// so tests can substitute their own.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source adapts an oggvorbis reader to audio.Source. Vorbis decodes to
// float32 natively and Read already reports interleaved sample counts in
// whole frames, so decoding goes straight into the caller's buffer.
type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// Clamp to whole frames; oggvorbis only ever returns complete ones.
	n := (len(dst) / s.channels) * s.channels
	if n == 0 {
		return 0, nil
	}

	return s.dec.Read(dst[:n])
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
