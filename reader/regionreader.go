// SPDX-License-Identifier: EPL-2.0

package reader

import (
	"slices"
	"sync"

	"github.com/thecargocultnz/audiobridge/model"
)

// RegionReader renders a set of playback regions through an Engine it owns
// exclusively. Sample rate, channel count and length aggregate over the
// regions once, at construction: the rate is the first non-zero source rate
// (44100 when none reports one), the channel count and length are maxima
// over the sources and region ends. The aggregates are not recomputed when
// the tracked set changes later.
type RegionReader struct {
	mu     sync.RWMutex
	engine Engine

	sampleRate   float64
	channelCount int
	length       int64
}

// NewRegionReader hands ownership of engine to the reader, registers every
// region with it and prepares it for rendering. The engine must be fresh:
// no other owner may call it afterwards.
func NewRegionReader(engine Engine, regions []*model.PlaybackRegion) *RegionReader {
	r := &RegionReader{
		engine:       engine,
		channelCount: 1,
	}

	for _, region := range regions {
		src := region.Source()
		if r.sampleRate == 0 {
			r.sampleRate = src.SampleRate()
		}
		r.channelCount = max(r.channelCount, src.ChannelCount())
		r.length = max(r.length, region.EndInTimeline())

		engine.AddRegion(region)
		region.AddListener(r)
	}

	if r.sampleRate == 0 {
		r.sampleRate = 44100
	}

	engine.PrepareToPlay(r.sampleRate, renderBlockSize)

	return r
}

// SampleRate aggregated at construction.
func (r *RegionReader) SampleRate() float64 {
	return r.sampleRate
}

// ChannelCount aggregated at construction, at least 1.
func (r *RegionReader) ChannelCount() int {
	return r.channelCount
}

// LengthInSamples aggregated at construction: the farthest region end on
// the timeline.
func (r *RegionReader) LengthInSamples() int64 {
	return r.length
}

// Valid reports whether the reader still owns an engine, i.e. has not been
// closed.
func (r *RegionReader) Valid() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.engine != nil
}

// ReadSamples implements SampleReader. The requested range is rendered in
// slices no longer than the engine's block bound; positions outside any
// region come back as silence from the engine, so the call succeeds for
// arbitrary ranges as long as the reader is intact and uncontended.
func (r *RegionReader) ReadSamples(dst [][]float32, destOffset int, startInSource int64, numSamples int) bool {
	if numSamples < 0 {
		return false
	}

	if !r.mu.TryRLock() {
		zeroRequested(dst, destOffset, numSamples)
		return false
	}

	if r.engine == nil {
		r.mu.RUnlock()
		zeroRequested(dst, destOffset, numSamples)
		return false
	}

	sc := getScratch(len(dst), 0)

	offset := destOffset
	position := startInSource
	remaining := numSamples

	for remaining > 0 {
		n := min(remaining, r.engine.MaxBlockSize())

		for ch := range dst {
			if dst[ch] != nil {
				sc.planes[ch] = dst[ch][offset : offset+n]
			} else {
				sc.planes[ch] = nil
			}
		}
		r.engine.ProcessBlock(sc.planes, position, true)

		offset += n
		position += int64(n)
		remaining -= n
	}

	r.mu.RUnlock()
	putScratch(sc)

	return true
}

// WillDestroyRegion drops a region the engine still tracks: unregister,
// release the engine's resources and remove the region, all under the
// write lock so in-flight reads never observe a half-removed region.
func (r *RegionReader) WillDestroyRegion(region *model.PlaybackRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.engine == nil || !slices.Contains(r.engine.Regions(), region) {
		return
	}

	region.RemoveListener(r)
	r.engine.ReleaseResources()
	r.engine.RemoveRegion(region)
}

// Close implements SampleReader: unregister from every tracked region,
// release the engine and drop it. Idempotent.
func (r *RegionReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.engine == nil {
		return nil
	}

	for _, region := range r.engine.Regions() {
		region.RemoveListener(r)
	}
	r.engine.ReleaseResources()
	r.engine = nil

	return nil
}
