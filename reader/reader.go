// SPDX-License-Identifier: EPL-2.0

package reader

import (
	"sync"

	"github.com/thecargocultnz/audiobridge/model"
)

// SampleReader is the pull interface handed to the audio thread.
type SampleReader interface {
	// ReadSamples copies numSamples samples starting at startInSource into
	// dst at destOffset, one plane per channel. nil planes mean "don't
	// need this channel"; non-nil planes must hold destOffset+numSamples
	// samples. On success all requested channels are fully populated; on
	// failure they are zero-filled over the requested range and the call
	// returns false. The call never blocks.
	ReadSamples(dst [][]float32, destOffset int, startInSource int64, numSamples int) bool

	// SampleRate the reader produces, in Hz.
	SampleRate() float64
	// ChannelCount the reader produces.
	ChannelCount() int
	// LengthInSamples available from the reader.
	LengthInSamples() int64

	// Close tears the reader down and unregisters its model listeners.
	// Reads after Close return silence and false.
	Close() error
}

// Engine renders an active region set block by block. RegionReader owns its
// engine exclusively and serializes every call below under its own lock;
// an Engine used standalone must be safe for concurrent ProcessBlock calls
// itself.
type Engine interface {
	// PrepareToPlay fixes the output sample rate and the upper bound on
	// block length before any rendering. MaxBlockSize must report a
	// positive bound afterwards.
	PrepareToPlay(sampleRate float64, maxBlockSize int)
	// ReleaseResources drops whatever PrepareToPlay and rendering built
	// up. Rendering may resume afterwards; the engine rebuilds on demand.
	ReleaseResources()
	// ProcessBlock mixes all regions overlapping the block starting at
	// startSample into dst, one plane per channel; nil planes are
	// skipped. dst is overwritten, not accumulated into. nonRealtime
	// permits allocation and other unbounded work.
	ProcessBlock(dst [][]float32, startSample int64, nonRealtime bool)

	AddRegion(region *model.PlaybackRegion)
	RemoveRegion(region *model.PlaybackRegion)
	Regions() []*model.PlaybackRegion
	MaxBlockSize() int
}

// renderBlockSize is the block bound RegionReader prepares its engine with.
const renderBlockSize = 16 * 1024

// zeroRequested silences the requested range of every requested channel.
func zeroRequested(dst [][]float32, destOffset, numSamples int) {
	if numSamples <= 0 {
		return
	}

	for _, p := range dst {
		if p == nil {
			continue
		}
		clear(p[destOffset : destOffset+numSamples])
	}
}

// readScratch carries the per-call plane table and a shared landing zone
// for channels the caller did not request. Pooled so concurrent readers
// never share scratch yet steady-state reads stay allocation-free.
type readScratch struct {
	planes [][]float32
	dummy  []float32
}

var scratchPool = sync.Pool{
	New: func() any { return new(readScratch) },
}

func getScratch(channels, numSamples int) *readScratch {
	sc := scratchPool.Get().(*readScratch)
	if cap(sc.planes) < channels {
		sc.planes = make([][]float32, channels)
	}
	sc.planes = sc.planes[:channels]
	if cap(sc.dummy) < numSamples {
		sc.dummy = make([]float32, numSamples)
	}

	return sc
}

func putScratch(sc *readScratch) {
	// Drop caller plane references so the pool never pins their memory.
	clear(sc.planes)
	scratchPool.Put(sc)
}
