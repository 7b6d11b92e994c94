// SPDX-License-Identifier: EPL-2.0

package reader

import (
	"sync"

	"github.com/thecargocultnz/audiobridge/model"
)

// SourceReader reads one AudioSource through a host reader it creates
// lazily whenever sample access is enabled and tears down on disable,
// content change and destruction. Rate, channel count and length are
// captured at construction and stay fixed for the reader's lifetime.
//
// The zero value is not usable; construct with NewSourceReader.
type SourceReader struct {
	mu sync.RWMutex

	src  *model.AudioSource
	host *model.HostReader

	sampleRate   float64
	channelCount int
	length       int64
}

// NewSourceReader creates a reader for src and registers it for lifecycle
// notifications. If sample access is already enabled the host reader is
// created right away.
func NewSourceReader(src *model.AudioSource) *SourceReader {
	r := &SourceReader{
		src:          src,
		sampleRate:   src.SampleRate(),
		channelCount: src.ChannelCount(),
		length:       src.SampleCount(),
	}

	src.AddListener(r)

	r.mu.Lock()
	r.recreate()
	r.mu.Unlock()

	return r
}

// SampleRate captured at construction.
func (r *SourceReader) SampleRate() float64 {
	return r.sampleRate
}

// ChannelCount captured at construction.
func (r *SourceReader) ChannelCount() int {
	return r.channelCount
}

// LengthInSamples captured at construction.
func (r *SourceReader) LengthInSamples() int64 {
	return r.length
}

// Valid reports whether a host reader currently backs this reader, i.e.
// whether the next uncontended read can succeed.
func (r *SourceReader) Valid() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.host != nil
}

// recreate rebuilds the host reader from the source. Write lock held.
func (r *SourceReader) recreate() {
	if r.src == nil {
		return
	}

	if host, err := r.src.NewHostReader(); err == nil {
		r.host = host
	}
}

// invalidate drops the host reader. Write lock held.
func (r *SourceReader) invalidate() {
	r.host = nil
}

// ReadSamples implements SampleReader. It try-acquires the read lock and
// degrades to silence and false when the lock is contended or no host
// reader is present.
func (r *SourceReader) ReadSamples(dst [][]float32, destOffset int, startInSource int64, numSamples int) bool {
	if numSamples < 0 {
		return false
	}

	if !r.mu.TryRLock() {
		zeroRequested(dst, destOffset, numSamples)
		return false
	}

	if r.host == nil {
		r.mu.RUnlock()
		zeroRequested(dst, destOffset, numSamples)
		return false
	}

	// One plane per source channel: requested channels point into dst,
	// the rest land in pooled scratch.
	sc := getScratch(r.channelCount, numSamples)
	for ch := range sc.planes {
		if ch < len(dst) && dst[ch] != nil {
			sc.planes[ch] = dst[ch][destOffset : destOffset+numSamples]
		} else {
			sc.planes[ch] = sc.dummy[:numSamples]
		}
	}

	ok := r.host.ReadSamples(startInSource, numSamples, sc.planes)
	r.mu.RUnlock()
	putScratch(sc)

	if !ok {
		zeroRequested(dst, destOffset, numSamples)
	}

	return ok
}

// WillEnableSourceSampleAccess acquires the write lock; it stays held until
// the matching DidEnableSourceSampleAccess so no samples flow while the
// host flips the access switch. Disabling tears the host reader down here.
func (r *SourceReader) WillEnableSourceSampleAccess(_ *model.AudioSource, enable bool) {
	r.mu.Lock()
	if !enable {
		r.invalidate()
	}
}

// DidEnableSourceSampleAccess lazily recreates the host reader on enable
// and releases the write lock taken by WillEnableSourceSampleAccess.
func (r *SourceReader) DidEnableSourceSampleAccess(_ *model.AudioSource, enable bool) {
	if enable {
		r.recreate()
	}
	r.mu.Unlock()
}

// SourceContentChanged tears the host reader down unless the update left
// the signal untouched. Recreation waits for the next access toggle.
func (r *SourceReader) SourceContentChanged(_ *model.AudioSource, flags model.ContentUpdateFlags) {
	if flags.SignalUnchanged() {
		return
	}

	r.mu.Lock()
	r.invalidate()
	r.mu.Unlock()
}

// WillDestroySource unregisters, tears down and drops the back-reference.
// The reader stays safe to read from; it just answers silence and false.
func (r *SourceReader) WillDestroySource(src *model.AudioSource) {
	src.RemoveListener(r)

	r.mu.Lock()
	r.invalidate()
	r.src = nil
	r.mu.Unlock()
}

// Close implements SampleReader. Idempotent.
func (r *SourceReader) Close() error {
	r.mu.Lock()
	src := r.src
	r.src = nil
	r.invalidate()
	r.mu.Unlock()

	if src != nil {
		src.RemoveListener(r)
	}

	return nil
}
