// SPDX-License-Identifier: EPL-2.0

// Package reader bridges the mutable document model into pull-based sample
// readers that an audio thread can drive safely.
//
// # Readers
//
// Three readers cover the model's granularities:
//
//   - SourceReader serves one AudioSource through a lazily managed
//     HostReader that follows the source's access switch and content
//     updates.
//   - RegionReader renders a fixed set of playback regions through a render
//     Engine it owns exclusively.
//   - SequenceReader extends RegionReader to follow a live RegionSequence
//     as the host adds and removes regions.
//
// All three implement SampleReader.
//
// # The read path never blocks
//
// Every reader guards itself with one RWMutex. The sample path only ever
// try-acquires the read side: when the lock is contended, or the reader has
// been invalidated, ReadSamples zero-fills the requested range and returns
// false instead of waiting. Dropouts degrade to silence; they never stall
// the caller. Failure is transient; the same call can succeed again once
// the control-path work has finished.
//
// Control-path work (access toggles, content updates, region membership
// changes, destruction) arrives as model listener callbacks and takes the
// write side for as long as the transition is in flight. The access-toggle
// pair is the notable case: the write lock is acquired in the Will callback
// and only released in the Did callback, so samples never flow mid-toggle.
//
// # Reading samples
//
//	dst := [][]float32{left, right}
//	ok := r.ReadSamples(dst, 0, pos, 512)
//
// A nil entry in dst means the caller does not need that channel; the
// reader supplies its own scratch for channels the source has but the
// caller skipped. On success every requested channel holds exactly the
// requested samples; on failure every requested channel is zeroed.
//
// # Engines
//
// RegionReader and SequenceReader delegate the actual mixing to an Engine.
// Package render provides the stock implementation; tests substitute their
// own.
package reader
