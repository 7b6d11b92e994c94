// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// Decoding is backed by github.com/go-audio/aiff. AIFF stores big-endian
// signed PCM; the decoder accepts 8, 16, 24 and 32 bit depths and any
// channel count, exposing the stream as an audio.Source yielding float32
// samples in [-1.0, 1.0].
//
// # Decoding
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Decode prefers an io.ReadSeeker; any other reader is buffered into memory
// first because the chunk walker needs random access.
//
// # Error Handling
//
// Decode failures map to sentinels:
//   - ErrNotAiffFile: no FORM/AIFF signature
//   - ErrUnsupportedBitDepth: PCM depth outside 8/16/24/32
//   - ErrUnsupportedAiffLayout: chunk metadata the decoder cannot use
//
// AIFF-C compressed variants (.aifc) are not supported.
//
// # Limitations
//
// AIFF writing is not supported; use the wav package when a file needs to
// be produced.
package aiff
