// SPDX-License-Identifier: EPL-2.0

package model

// HostReader reads samples from the content an AudioSource held at the
// moment the reader was created. It is a pure snapshot: later SetSamples
// calls on the source do not change what an existing HostReader returns,
// and a HostReader never blocks or fails transiently.
//
// HostReaders are safe for concurrent use.
type HostReader struct {
	planes [][]float32
	length int64
}

// ChannelCount of the snapshot.
func (h *HostReader) ChannelCount() int {
	return len(h.planes)
}

// Length in samples per channel of the snapshot.
func (h *HostReader) Length() int64 {
	return h.length
}

// ReadSamples copies num samples starting at start into dst, one plane per
// channel. The range may extend beyond the snapshot on either side; samples
// outside it read as zero. nil planes in dst are skipped, dst planes beyond
// the snapshot's channel count are zero-filled. Non-nil planes must hold at
// least num samples.
//
// Returns false only for a negative range, which fills nothing.
func (h *HostReader) ReadSamples(start int64, num int, dst [][]float32) bool {
	if num < 0 {
		return false
	}

	lo := max(start, 0)
	hi := min(start+int64(num), h.length)

	for ch, out := range dst {
		if out == nil {
			continue
		}
		out = out[:num]
		clear(out)
		if ch >= len(h.planes) || lo >= hi {
			continue
		}
		copy(out[lo-start:], h.planes[ch][lo:hi])
	}

	return true
}
