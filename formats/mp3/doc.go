// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// Decoding is backed by github.com/hajimehoshi/go-mp3. The decoder exposes
// the stream as an audio.Source yielding float32 samples in [-1.0, 1.0].
//
// # Output Format
//
// go-mp3 always produces 16-bit stereo PCM, upmixing mono input, so the
// source reports two channels regardless of how the file was encoded. The
// sample rate comes from the stream (typically 44.1kHz or 48kHz).
//
// # Decoding
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// To conform the stream to another rate or to mono, chain the audio
// package:
//
//	resampled := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampled)
//
// # Limitations
//
// MP3 writing is not supported. Decode errors come straight from go-mp3
// wrapped with context; there are no package sentinels.
package mp3
