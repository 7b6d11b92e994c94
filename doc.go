// SPDX-License-Identifier: EPL-2.0

// Package audiobridge bridges a host-owned audio document model into
// pull-based sample readers suitable for an audio thread.
//
// The module is organized in layers:
//
//   - model: the mutable document. AudioSource holds sample planes behind
//     an access switch; PlaybackRegion places source spans on a shared
//     timeline; RegionSequence groups regions into a track.
//   - reader: pull-based readers over the model. SourceReader reads one
//     source, RegionReader mixes a fixed region set through a render
//     engine, SequenceReader tracks a sequence's live membership.
//   - render: PlaybackRenderer, the block-based engine behind the region
//     readers, with gain-free mixing, channel mapping and varispeed.
//   - audio and formats: the streaming ingest side. Decoders for WAV,
//     MP3, Ogg Vorbis and AIFF produce audio.Source streams; Resampler
//     and MonoMixer conform them.
//
// This package ties the layers together with file loading and bouncing.
//
// # Loading
//
// LoadSourceFile decodes an audio file into a model source, picking a
// decoder by extension:
//
//	src, err := audiobridge.LoadSourceFile("clip.wav")
//	if err != nil {
//	    // Handle error
//	}
//	src.SetSampleAccessEnabled(true)
//
// LoadSourceFileAtRate additionally conforms the audio to a session rate
// on the way in. Formats lists the recognized extensions.
//
// # Reading
//
// Once sources carry regions on a timeline, readers pull rendered audio
// without blocking:
//
//	seq := model.NewRegionSequence("track 1")
//	seq.AddRegion(model.NewPlaybackRegion(src, placement))
//
//	sr := reader.NewSequenceReader(render.NewPlaybackRenderer(), seq)
//	defer sr.Close()
//
//	ok := sr.ReadSamples(planes, 0, 0, numSamples)
//
// A read that cannot proceed (access disabled, content edited, model
// contended) fills silence and returns false rather than waiting.
//
// # Bouncing
//
// BounceToWAV renders a reader's full length to a 16-bit PCM WAV stream.
// BounceToMono16 renders to mono 16-bit PCM at a chosen rate. Both accept
// any SampleReader, so a single region, a fixed set or a whole sequence
// can be bounced the same way. NewReaderSource exposes the same adapter
// the bounces use, for feeding rendered audio into custom pipelines.
package audiobridge
