package model

import (
	"slices"
	"sync"
)

// RegionPlacement maps a span of source samples onto the shared timeline.
// All values are sample counts; timeline fields use the timeline's rate,
// source fields the source's own rate.
type RegionPlacement struct {
	StartInTimeline    int64
	DurationInTimeline int64

	// StartInSource is the offset of the first rendered source sample.
	StartInSource int64
	// DurationInSource is the source span stretched across the timeline
	// span. Zero means unstretched playback: the span implied by the
	// timeline duration and the source/timeline rate ratio.
	DurationInSource int64
}

// PlaybackRegion places content of one AudioSource on the shared timeline.
// Its placement is fixed at creation; hosts express edits by replacing the
// region. Sequence membership and destruction are the mutable parts.
type PlaybackRegion struct {
	source    *AudioSource
	placement RegionPlacement

	mu        sync.Mutex
	sequence  *RegionSequence
	destroyed bool
	listeners []RegionListener
}

// NewPlaybackRegion creates a region rendering src according to p.
func NewPlaybackRegion(src *AudioSource, p RegionPlacement) *PlaybackRegion {
	return &PlaybackRegion{source: src, placement: p}
}

// Source the region renders from.
func (r *PlaybackRegion) Source() *AudioSource {
	return r.source
}

// Placement of the region on the timeline.
func (r *PlaybackRegion) Placement() RegionPlacement {
	return r.placement
}

// StartInTimeline is the first timeline sample covered by the region.
func (r *PlaybackRegion) StartInTimeline() int64 {
	return r.placement.StartInTimeline
}

// EndInTimeline is the timeline sample one past the region's last.
func (r *PlaybackRegion) EndInTimeline() int64 {
	return r.placement.StartInTimeline + r.placement.DurationInTimeline
}

// Sequence returns the owning sequence, or nil while unassigned.
func (r *PlaybackRegion) Sequence() *RegionSequence {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sequence
}

func (r *PlaybackRegion) setSequence(seq *RegionSequence) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence = seq
}

// AddListener registers l for lifecycle notifications.
func (r *PlaybackRegion) AddListener(l RegionListener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return
	}

	r.listeners = append(r.listeners, l)
}

// RemoveListener unregisters l by identity.
func (r *PlaybackRegion) RemoveListener(l RegionListener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, el := range r.listeners {
		if el == l {
			r.listeners = slices.Delete(r.listeners, i, i+1)
			return
		}
	}
}

// Destroy detaches the region from its sequence (announcing the removal
// there first) and then fires WillDestroyRegion. Repeated calls are no-ops.
func (r *PlaybackRegion) Destroy() {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return
	}
	r.destroyed = true
	seq := r.sequence
	r.mu.Unlock()

	if seq != nil {
		seq.RemoveRegion(r)
	}

	r.mu.Lock()
	ls := slices.Clone(r.listeners)
	r.mu.Unlock()

	for _, l := range ls {
		l.WillDestroyRegion(r)
	}

	r.mu.Lock()
	r.listeners = nil
	r.mu.Unlock()
}
