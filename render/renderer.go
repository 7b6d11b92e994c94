// SPDX-License-Identifier: EPL-2.0

package render

import (
	"math"
	"slices"
	"sync"

	"github.com/thecargocultnz/audiobridge/model"
	"github.com/thecargocultnz/audiobridge/reader"
	"github.com/thecargocultnz/audiobridge/utils"
)

// PlaybackRenderer is the default reader.Engine. Regions mix in insertion
// order; each renders through a lazily created SourceReader so enable/
// disable and content invalidation on the underlying sources degrade to
// silence instead of failing the block.
//
// All methods serialize on one internal mutex, so a renderer is safe for
// concurrent use; rendering is positional and carries no state between
// blocks.
type PlaybackRenderer struct {
	mu sync.Mutex

	sampleRate float64
	maxBlock   int

	regions []*regionState

	// src holds per-source-channel read scratch, grown on demand.
	src [][]float32
}

type regionState struct {
	region *model.PlaybackRegion
	rdr    *reader.SourceReader
}

// NewPlaybackRenderer creates an empty renderer. PrepareToPlay must run
// before the first ProcessBlock.
func NewPlaybackRenderer() *PlaybackRenderer {
	return &PlaybackRenderer{}
}

// PrepareToPlay implements reader.Engine.
func (p *PlaybackRenderer) PrepareToPlay(sampleRate float64, maxBlockSize int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sampleRate = sampleRate
	p.maxBlock = maxBlockSize
}

// ReleaseResources implements reader.Engine: every per-region reader is
// closed (unregistering its model listeners) and the scratch is dropped.
// Readers come back on the next non-realtime block.
func (p *PlaybackRenderer) ReleaseResources() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, st := range p.regions {
		if st.rdr != nil {
			st.rdr.Close()
			st.rdr = nil
		}
	}
	p.src = nil
}

// AddRegion implements reader.Engine.
func (p *PlaybackRenderer) AddRegion(region *model.PlaybackRegion) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.regions = append(p.regions, &regionState{region: region})
}

// RemoveRegion implements reader.Engine. The region's reader is closed so
// no model callbacks linger.
func (p *PlaybackRenderer) RemoveRegion(region *model.PlaybackRegion) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, st := range p.regions {
		if st.region == region {
			if st.rdr != nil {
				st.rdr.Close()
				st.rdr = nil
			}
			p.regions = slices.Delete(p.regions, i, i+1)
			return
		}
	}
}

// Regions implements reader.Engine.
func (p *PlaybackRenderer) Regions() []*model.PlaybackRegion {
	p.mu.Lock()
	defer p.mu.Unlock()

	regions := make([]*model.PlaybackRegion, len(p.regions))
	for i, st := range p.regions {
		regions[i] = st.region
	}

	return regions
}

// MaxBlockSize implements reader.Engine.
func (p *PlaybackRenderer) MaxBlockSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.maxBlock
}

// ProcessBlock implements reader.Engine.
func (p *PlaybackRenderer) ProcessBlock(dst [][]float32, startSample int64, nonRealtime bool) {
	n := blockLength(dst)
	if n == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, out := range dst {
		if out != nil {
			clear(out)
		}
	}

	if p.sampleRate <= 0 {
		return
	}

	for _, st := range p.regions {
		p.renderRegion(st, dst, startSample, n, nonRealtime)
	}
}

func blockLength(dst [][]float32) int {
	for _, out := range dst {
		if out != nil {
			return len(out)
		}
	}

	return 0
}

func (p *PlaybackRenderer) renderRegion(st *regionState, dst [][]float32, start int64, n int, nonRealtime bool) {
	region := st.region

	lo := max(start, region.StartInTimeline())
	hi := min(start+int64(n), region.EndInTimeline())
	if lo >= hi {
		return
	}

	if st.rdr == nil {
		if !nonRealtime {
			// Never build readers on the audio thread; the region sits
			// this block out.
			return
		}
		st.rdr = reader.NewSourceReader(region.Source())
	}

	srcChannels := st.rdr.ChannelCount()
	want := min(srcChannels, len(dst))
	if want == 0 {
		return
	}

	placement := region.Placement()

	// Source samples consumed per timeline sample: an explicit source
	// span stretches, otherwise the rate ratio maps 1:1 in time.
	var step float64
	if placement.DurationInSource != 0 && placement.DurationInTimeline > 0 {
		step = float64(placement.DurationInSource) / float64(placement.DurationInTimeline)
	} else {
		rate := st.rdr.SampleRate()
		if rate <= 0 {
			rate = p.sampleRate
		}
		step = rate / p.sampleRate
	}

	count := int(hi - lo)
	off := int(lo - start)
	srcStart := float64(placement.StartInSource) + float64(lo-region.StartInTimeline())*step

	if step == 1 && srcStart == math.Trunc(srcStart) {
		p.renderDirect(st, dst, off, count, want, srcChannels, int64(srcStart))
	} else {
		p.renderVarispeed(st, dst, off, count, want, srcChannels, srcStart, step)
	}
}

// renderDirect copies sample-aligned, unstretched content.
func (p *PlaybackRenderer) renderDirect(st *regionState, dst [][]float32, off, count, want, srcChannels int, srcStart int64) {
	p.growScratch(want, count)

	if !st.rdr.ReadSamples(p.src[:want], 0, srcStart, count) {
		return
	}

	for ch, out := range dst {
		if out == nil {
			continue
		}
		in := p.mapChannel(ch, want, srcChannels)
		if in == nil {
			continue
		}
		addInto(out[off:off+count], in[:count])
	}
}

// renderVarispeed resamples by 4-point Catmull-Rom interpolation at
// fractional source positions. The source span is read once with one
// neighbor of margin either side; positions are computed per output sample
// so chunk boundaries stay seamless.
func (p *PlaybackRenderer) renderVarispeed(st *regionState, dst [][]float32, off, count, want, srcChannels int, srcStart, step float64) {
	first := int64(math.Floor(srcStart)) - 1
	last := int64(math.Floor(srcStart+step*float64(count-1))) + 3
	span := int(last - first + 1)

	p.growScratch(want, span)

	if !st.rdr.ReadSamples(p.src[:want], 0, first, span) {
		return
	}

	base := srcStart - float64(first)
	for ch, out := range dst {
		if out == nil {
			continue
		}
		in := p.mapChannel(ch, want, srcChannels)
		if in == nil {
			continue
		}
		for i := range count {
			pos := base + float64(i)*step
			idx := int(pos)
			frac := float32(pos - float64(idx))
			out[off+i] += utils.CubicInterpolate(in[idx-1], in[idx], in[idx+1], in[idx+2], frac)
		}
	}
}

// mapChannel resolves which source plane feeds output channel ch: matching
// channels map by index, a mono source spreads to every output, extra
// output channels beyond a multi-channel source stay silent.
func (p *PlaybackRenderer) mapChannel(ch, want, srcChannels int) []float32 {
	switch {
	case ch < want:
		return p.src[ch]
	case srcChannels == 1:
		return p.src[0]
	default:
		return nil
	}
}

func (p *PlaybackRenderer) growScratch(channels, samples int) {
	for len(p.src) < channels {
		p.src = append(p.src, nil)
	}
	for ch := range channels {
		if cap(p.src[ch]) < samples {
			p.src[ch] = make([]float32, samples)
		}
		p.src[ch] = p.src[ch][:samples]
	}
}

func addInto(dst, src []float32) {
	for i, v := range src {
		dst[i] += v
	}
}
