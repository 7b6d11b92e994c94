// SPDX-License-Identifier: EPL-2.0

package model

import (
	"slices"
	"sync"
)

// RegionSequence is an ordered, host-mutable collection of playback regions
// sharing one timeline, the model-side analog of a track.
type RegionSequence struct {
	mu        sync.Mutex
	name      string
	regions   []*PlaybackRegion
	destroyed bool
	listeners []SequenceListener
}

// NewRegionSequence creates an empty sequence.
func NewRegionSequence(name string) *RegionSequence {
	return &RegionSequence{name: name}
}

// Name of the sequence as assigned by the host.
func (s *RegionSequence) Name() string {
	return s.name
}

// Regions returns a snapshot of the current membership in timeline order of
// insertion.
func (s *RegionSequence) Regions() []*PlaybackRegion {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.regions)
}

// ContainsRegion reports whether r is currently a member.
func (s *RegionSequence) ContainsRegion(r *PlaybackRegion) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Contains(s.regions, r)
}

// TimeRange returns the minimum start and maximum end over all member
// regions, in timeline samples. An empty sequence reports (0, 0).
func (s *RegionSequence) TimeRange() (start, end int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.regions) == 0 {
		return 0, 0
	}

	start = s.regions[0].StartInTimeline()
	end = s.regions[0].EndInTimeline()
	for _, r := range s.regions[1:] {
		start = min(start, r.StartInTimeline())
		end = max(end, r.EndInTimeline())
	}

	return start, end
}

// AddListener registers l for membership and lifecycle notifications.
func (s *RegionSequence) AddListener(l SequenceListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}

	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters l by identity.
func (s *RegionSequence) RemoveListener(l SequenceListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, el := range s.listeners {
		if el == l {
			s.listeners = slices.Delete(s.listeners, i, i+1)
			return
		}
	}
}

// AddRegion appends r to the sequence and announces it. A region already in
// another sequence moves: it is removed there (with that sequence's removal
// notification) first. Adding a region twice is a no-op.
func (s *RegionSequence) AddRegion(r *PlaybackRegion) {
	prev := r.Sequence()
	if prev == s {
		return
	}
	if prev != nil {
		prev.RemoveRegion(r)
	}

	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.regions = append(s.regions, r)
	ls := slices.Clone(s.listeners)
	s.mu.Unlock()

	r.setSequence(s)

	for _, l := range ls {
		l.DidAddRegionToSequence(s, r)
	}
}

// RemoveRegion announces the removal while r is still a member, then
// unlinks it. Removing a non-member is a no-op.
func (s *RegionSequence) RemoveRegion(r *PlaybackRegion) {
	s.mu.Lock()
	if !slices.Contains(s.regions, r) {
		s.mu.Unlock()
		return
	}
	ls := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range ls {
		l.WillRemoveRegionFromSequence(s, r)
	}

	s.mu.Lock()
	if i := slices.Index(s.regions, r); i >= 0 {
		s.regions = slices.Delete(s.regions, i, i+1)
	}
	s.mu.Unlock()

	r.setSequence(nil)
}

// Destroy fires WillDestroySequence, then detaches all member regions and
// makes the sequence unusable. The regions themselves stay alive; destroying
// them is a separate host decision. Repeated calls are no-ops.
func (s *RegionSequence) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	ls := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range ls {
		l.WillDestroySequence(s)
	}

	s.mu.Lock()
	regions := s.regions
	s.regions = nil
	s.listeners = nil
	s.mu.Unlock()

	for _, r := range regions {
		r.setSequence(nil)
	}
}
