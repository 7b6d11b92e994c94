// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"slices"
	"sync"
)

// Source is a pull-based stream of interleaved float32 PCM in [-1, 1].
// Every decoder and processing stage in this module implements it, so
// stages compose into pipelines.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int

	// Channels count (1 = mono, 2 = stereo).
	Channels() int

	// ReadSamples fills dst with interleaved float32 samples and returns
	// the number of values written (not frames). A return of n == 0 with
	// err == io.EOF means the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the read size, in values, the source performs best with.
	BufSize() int

	// Close releases any resources held by the source.
	Close() error
}

// Decoder constructs a Source from an encoded input stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys ("wav", "mp3", "ogg", "aiff") to decoders.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register installs d under the given format key, replacing any decoder
// already registered for it.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[format] = d
}

// Get returns the decoder registered for format, if any.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.codecs[format]

	return d, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Sorted(maps.Keys(r.codecs))
}
