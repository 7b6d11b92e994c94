// SPDX-License-Identifier: EPL-2.0

package model

import (
	"slices"
	"sync"
)

// AudioSource is a host-owned piece of audio material: a name, a sample
// rate and per-channel sample planes. Sample access is gated by an explicit
// switch so the host can take content offline while editing it.
type AudioSource struct {
	mu sync.Mutex

	name         string
	sampleRate   float64
	channelCount int
	sampleCount  int64
	planes       [][]float32

	accessEnabled bool
	destroyed     bool

	listeners []SourceListener
}

// NewAudioSource creates a source owning the given sample planes, one per
// channel, all of equal length. planes may be nil for a source whose content
// arrives later via SetSamples.
//
// Panics if the planes have differing lengths.
func NewAudioSource(name string, sampleRate float64, planes [][]float32) *AudioSource {
	if err := checkPlanes(planes); err != nil {
		panic("model: " + err.Error())
	}

	return &AudioSource{
		name:         name,
		sampleRate:   sampleRate,
		channelCount: len(planes),
		sampleCount:  planeLength(planes),
		planes:       planes,
	}
}

func checkPlanes(planes [][]float32) error {
	for _, p := range planes {
		if len(p) != len(planes[0]) {
			return ErrPlaneLengthMismatch
		}
	}

	return nil
}

func planeLength(planes [][]float32) int64 {
	if len(planes) == 0 {
		return 0
	}

	return int64(len(planes[0]))
}

// Name of the source as assigned by the host.
func (s *AudioSource) Name() string {
	return s.name
}

// SampleRate of the source material in Hz.
func (s *AudioSource) SampleRate() float64 {
	return s.sampleRate
}

// ChannelCount of the current content.
func (s *AudioSource) ChannelCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.channelCount
}

// SampleCount per channel of the current content.
func (s *AudioSource) SampleCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sampleCount
}

// SampleAccessEnabled reports whether hosts readers may currently be created.
func (s *AudioSource) SampleAccessEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accessEnabled
}

// AddListener registers l for lifecycle notifications.
func (s *AudioSource) AddListener(l SourceListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}

	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters l. Removal is by identity; unknown listeners
// are ignored.
func (s *AudioSource) RemoveListener(l SourceListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, el := range s.listeners {
		if el == l {
			s.listeners = slices.Delete(s.listeners, i, i+1)
			return
		}
	}
}

func (s *AudioSource) snapshotListeners() []SourceListener {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.listeners)
}

// SetSampleAccessEnabled flips the sample-access switch. Listeners see
// WillEnableSourceSampleAccess before the flag changes and
// DidEnableSourceSampleAccess after it changed; both calls go to the same
// listener set, so a listener holding a lock across the pair gets its
// matching release even if it unregisters in between. Unchanged state is a
// no-op without notifications.
func (s *AudioSource) SetSampleAccessEnabled(enabled bool) {
	s.mu.Lock()
	if s.destroyed || s.accessEnabled == enabled {
		s.mu.Unlock()
		return
	}
	ls := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range ls {
		l.WillEnableSourceSampleAccess(s, enabled)
	}

	s.mu.Lock()
	s.accessEnabled = enabled
	s.mu.Unlock()

	for _, l := range ls {
		l.DidEnableSourceSampleAccess(s, enabled)
	}
}

// SetSamples replaces the source content. The channel count must match the
// existing content unless the source was created empty; the per-channel
// length may change freely. Listeners are notified with zero flags, i.e. the
// signal changed. Readers created before the swap keep seeing the old
// planes until they are invalidated.
func (s *AudioSource) SetSamples(planes [][]float32) error {
	if err := checkPlanes(planes); err != nil {
		return err
	}

	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return ErrSourceDestroyed
	}
	if s.channelCount != 0 && len(planes) != s.channelCount {
		s.mu.Unlock()
		return ErrChannelCountMismatch
	}
	s.planes = planes
	s.channelCount = len(planes)
	s.sampleCount = planeLength(planes)
	ls := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range ls {
		l.SourceContentChanged(s, 0)
	}

	return nil
}

// NotifyContentChanged announces a host-driven content update without a data
// swap, e.g. after in-place edits or analysis changes.
func (s *AudioSource) NotifyContentChanged(flags ContentUpdateFlags) {
	for _, l := range s.snapshotListeners() {
		l.SourceContentChanged(s, flags)
	}
}

// Destroy makes the source unusable. Listeners receive WillDestroySource
// before the content is dropped. Repeated calls are no-ops.
func (s *AudioSource) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	ls := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range ls {
		l.WillDestroySource(s)
	}

	s.mu.Lock()
	s.accessEnabled = false
	s.planes = nil
	s.listeners = nil
	s.mu.Unlock()
}

// NewHostReader hands out a snapshot reader over the current content. It
// fails with ErrSampleAccessDisabled while the access switch is off and with
// ErrSourceDestroyed after Destroy.
func (s *AudioSource) NewHostReader() (*HostReader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil, ErrSourceDestroyed
	}
	if !s.accessEnabled {
		return nil, ErrSampleAccessDisabled
	}

	return &HostReader{planes: s.planes, length: s.sampleCount}, nil
}
