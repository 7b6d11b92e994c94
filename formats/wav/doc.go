// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and encoding.
//
// Decoding is backed by github.com/go-audio/wav, which handles RIFF chunk
// walking, so non-canonical files (extra chunks, padding) decode fine. The
// decoder accepts PCM at 8, 16, 24 and 32 bits and any channel count, and
// exposes the stream as an audio.Source yielding float32 samples in
// [-1.0, 1.0].
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
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
// # Encoding
//
// WriteWAV16 writes interleaved 16-bit PCM with a canonical 44-byte header:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 2, samples)
//
// The sample count must be a whole number of frames for the given channel
// count.
//
// # Error Handling
//
// Decode failures map to sentinels:
//   - ErrNotWavFile: no RIFF/WAVE signature
//   - ErrOnlyPCMSupported: compressed or float encodings
//   - ErrUnsupportedBitDepth: PCM depth outside 8/16/24/32
//   - ErrUnsupportedWavLayout: chunk metadata the decoder cannot use
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
