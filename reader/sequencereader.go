package reader

import (
	"slices"

	"github.com/thecargocultnz/audiobridge/model"
)

// SequenceReader is a RegionReader that follows one live RegionSequence:
// regions the host adds to or removes from the sequence enter and leave
// the engine while the reader stays usable throughout. The aggregate
// rate/channels/length still reflect the membership at construction.
type SequenceReader struct {
	*RegionReader

	seq *model.RegionSequence
}

// NewSequenceReader builds a RegionReader over the sequence's current
// regions and registers for membership changes. Ownership of engine
// transfers to the reader.
func NewSequenceReader(engine Engine, seq *model.RegionSequence) *SequenceReader {
	s := &SequenceReader{
		RegionReader: NewRegionReader(engine, seq.Regions()),
		seq:          seq,
	}

	seq.AddListener(s)

	return s
}

// Sequence returns the tracked sequence, or nil once it was destroyed or
// the reader closed.
func (s *SequenceReader) Sequence() *model.RegionSequence {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.seq
}

// DidAddRegionToSequence starts rendering a region the host just added.
// The engine's resources are cycled under the write lock so the new region
// joins cleanly.
func (s *SequenceReader) DidAddRegionToSequence(seq *model.RegionSequence, region *model.PlaybackRegion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq || s.engine == nil || !seq.ContainsRegion(region) {
		return
	}

	region.AddListener(s.RegionReader)
	s.engine.ReleaseResources()
	s.engine.AddRegion(region)
}

// WillRemoveRegionFromSequence stops rendering a region the host is about
// to take out of the sequence.
func (s *SequenceReader) WillRemoveRegionFromSequence(seq *model.RegionSequence, region *model.PlaybackRegion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq || s.engine == nil || !slices.Contains(s.engine.Regions(), region) {
		return
	}

	region.RemoveListener(s.RegionReader)
	s.engine.ReleaseResources()
	s.engine.RemoveRegion(region)
}

// WillDestroySequence detaches from the sequence. Tracked regions keep
// rendering; they are torn down individually or by Close.
func (s *SequenceReader) WillDestroySequence(seq *model.RegionSequence) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.seq = nil
	s.mu.Unlock()

	seq.RemoveListener(s)
}

// Close detaches from the sequence and then tears the region reader down.
func (s *SequenceReader) Close() error {
	s.mu.Lock()
	seq := s.seq
	s.seq = nil
	s.mu.Unlock()

	if seq != nil {
		seq.RemoveListener(s)
	}

	return s.RegionReader.Close()
}
