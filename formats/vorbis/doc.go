// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// Decoding is backed by github.com/jfreymuth/oggvorbis. Vorbis decodes to
// float32 natively, so samples flow straight into the caller's buffer with
// no intermediate conversion; the decoder exposes the stream as an
// audio.Source yielding values in [-1.0, 1.0].
//
// # Decoding
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Channel Layout
//
// Multi-channel files arrive interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// Reads always return whole frames; a destination buffer smaller than one
// frame reads zero samples. To fold to mono:
//
//	mono := audio.NewMonoMixer(source)
//
// # Limitations
//
// Vorbis encoding is not supported. Decode errors come straight from
// oggvorbis wrapped with context; there are no package sentinels.
package vorbis
