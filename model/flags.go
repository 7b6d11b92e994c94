package model

// ContentUpdateFlags narrows the scope of a content-update notification.
// The zero value means everything about the source may have changed.
type ContentUpdateFlags uint32

const (
	// ContentUpdateSignalUnchanged promises the rendered audio signal is
	// bit-identical to before; only analysis-level content changed.
	ContentUpdateSignalUnchanged ContentUpdateFlags = 1 << iota
	// ContentUpdateTimingUnchanged promises the musical timing grid did
	// not move.
	ContentUpdateTimingUnchanged
)

// SignalUnchanged reports whether the audio signal itself is untouched by
// the update. Readers only need to rebuild when this returns false.
func (f ContentUpdateFlags) SignalUnchanged() bool {
	return f&ContentUpdateSignalUnchanged != 0
}

// TimingUnchanged reports whether the timing grid is untouched.
func (f ContentUpdateFlags) TimingUnchanged() bool {
	return f&ContentUpdateTimingUnchanged != 0
}
