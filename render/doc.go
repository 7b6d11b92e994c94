// Package render provides the stock rendering engine behind RegionReader
// and SequenceReader: a block mixer that pulls each overlapping region's
// source through its own SourceReader, maps channels, resolves sample-rate
// and stretch mismatches by cubic interpolation and sums the results into
// the destination planes.
//
// The renderer inherits the bridge's degradation rules: a region whose
// source has sample access disabled (or whose content was invalidated)
// contributes silence for as long as its reader cannot serve samples, and
// a realtime block never constructs readers: missing ones are skipped
// until a non-realtime block (or an access toggle) restores them.
package render
