// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the rest of the module
// builds on: the Source interface, rate and channel conversion stages,
// and a decoder registry.
//
// # Source
//
// Source is a pull-based stream of interleaved float32 PCM:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are normalized to [-1.0, 1.0], with 0.0 as silence. ReadSamples
// counts float32 values, not frames, and a read of (0, io.EOF) marks the
// end of the stream. All decoders in formats/ and all processing stages
// here implement Source, so stages chain freely:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
// # Conversion Stages
//
// Resampler changes the sample rate with cubic interpolation over a
// four-frame window, preserving the channel count. MonoMixer folds
// multi-channel audio to mono by averaging each frame.
//
// # Collecting
//
// ReadAll drains a source into one sample plane per channel, which is the
// layout the rendering side of the module works in. ResampleToMono16
// drains a source as 16-bit mono PCM at a chosen rate, ready for a WAV
// encoder.
//
// # Registry
//
// Registry maps format keys to decoders so callers can pick a decoder by
// file extension at run time:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	d, ok := registry.Get("wav")
//
// Lookups for unregistered keys report ok == false; higher layers
// translate that to ErrUnknownFormat.
//
// # Streaming Loop
//
// The canonical consumption loop:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// Sources may return data together with io.EOF on the final read.
package audio
