// SPDX-License-Identifier: EPL-2.0

// Package model holds the host-owned audio document model: audio sources,
// playback regions and region sequences, plus the notification plumbing that
// lets sample readers track them while the host keeps editing.
//
// # Ownership
//
// Every object in this package is owned and mutated by the host. Readers
// (package reader) never own model objects; they register listeners and react
// to change notifications. The host is expected to serialize mutations of a
// given object; the model still guards its own fields so that property reads
// are safe from any goroutine.
//
// # Audio Sources
//
// An AudioSource carries immutable-ish properties (name, sample rate) and
// mutable content: per-channel sample planes. Sample access is gated by an
// explicit host-controlled switch:
//
//	src := model.NewAudioSource("gtr", 44100, planes)
//	src.SetSampleAccessEnabled(true)
//	hr, err := src.NewHostReader()
//
// A HostReader is a snapshot handle over the planes current at creation time.
// Replacing content with SetSamples swaps the planes wholesale, so an old
// HostReader keeps reading the old data until its owner drops it. Content
// and access-state changes are announced through SourceListener callbacks;
// the Will/Did pair around access toggles is what lets readers hold a lock
// across the transition.
//
// # Regions and Sequences
//
// A PlaybackRegion places a span of source samples onto the shared timeline,
// optionally time-stretched (DurationInSource differs from the span implied
// by DurationInTimeline). A RegionSequence is an ordered, host-mutable
// collection of regions; adds and removals are announced to
// SequenceListener implementations before the structural change becomes
// observable in the removal case, and after it in the add case, so listeners
// can always verify membership.
//
// # Destruction
//
// Destroy on any object fires its Will-destroy notification before the
// object becomes unusable. Listeners must drop their references during the
// callback; afterwards the object answers property queries but serves no
// samples.
package model
