package model

// SourceListener receives AudioSource lifecycle notifications. All callbacks
// run on the goroutine driving the host mutation, with no model lock held,
// so implementations may take their own locks and call back into the source.
type SourceListener interface {
	// WillEnableSourceSampleAccess fires before the access flag flips.
	// enable is the state being transitioned to.
	WillEnableSourceSampleAccess(src *AudioSource, enable bool)
	// DidEnableSourceSampleAccess fires after the access flag flipped.
	DidEnableSourceSampleAccess(src *AudioSource, enable bool)
	// SourceContentChanged fires after source content was replaced or the
	// host announced an update. Check flags.SignalUnchanged before tearing
	// anything down.
	SourceContentChanged(src *AudioSource, flags ContentUpdateFlags)
	// WillDestroySource fires before the source becomes unusable. The
	// listener must drop its reference during this call.
	WillDestroySource(src *AudioSource)
}

// RegionListener receives PlaybackRegion lifecycle notifications.
type RegionListener interface {
	// WillDestroyRegion fires before the region becomes unusable.
	WillDestroyRegion(region *PlaybackRegion)
}

// SequenceListener receives RegionSequence membership and lifecycle
// notifications.
type SequenceListener interface {
	// DidAddRegionToSequence fires after region joined seq, so the region
	// is already visible through seq.Regions.
	DidAddRegionToSequence(seq *RegionSequence, region *PlaybackRegion)
	// WillRemoveRegionFromSequence fires before region leaves seq, so the
	// region is still visible through seq.Regions.
	WillRemoveRegionFromSequence(seq *RegionSequence, region *PlaybackRegion)
	// WillDestroySequence fires before the sequence becomes unusable.
	WillDestroySequence(seq *RegionSequence)
}
