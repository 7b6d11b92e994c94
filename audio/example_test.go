// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"
	"log"

	"github.com/thecargocultnz/audiobridge/audio"
	"github.com/thecargocultnz/audiobridge/internal/audiotest"
)

// Example_resampler demonstrates sample rate conversion.
func Example_resampler() {
	// One second of a 440Hz tone at 44.1kHz.
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0)

	resampler := audio.NewResampler(source, 16000)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())

	buf := make([]float32, 4096)
	for {
		_, err := resampler.ReadSamples(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Stream drained")
	// Output:
	// Output sample rate: 16000 Hz
	// Channels: 1
	// Stream drained
}

// Example_monoMixer demonstrates folding stereo down to mono.
func Example_monoMixer() {
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0)

	mono := audio.NewMonoMixer(source)

	fmt.Printf("Input channels: %d\n", source.Channels())
	fmt.Printf("Output channels: %d\n", mono.Channels())
	fmt.Printf("Sample rate: %d Hz\n", mono.SampleRate())

	buf := make([]float32, 100)
	n, _ := mono.ReadSamples(buf)

	fmt.Printf("Read %d mono samples\n", n)
	// Output:
	// Input channels: 2
	// Output channels: 1
	// Sample rate: 16000 Hz
	// Read 100 mono samples
}

// Example_processingChain chains a resampler and a mono mixer.
func Example_processingChain() {
	// Stereo at 44.1kHz in, 8kHz mono out.
	source := audiotest.NewSineSource(44100, 2, 44100, 440.0)

	mono := audio.NewMonoMixer(audio.NewResampler(source, 8000))

	fmt.Printf("Sample rate: %d Hz\n", mono.SampleRate())
	fmt.Printf("Channels: %d\n", mono.Channels())
	// Output:
	// Sample rate: 8000 Hz
	// Channels: 1
}

// Example_readAll demonstrates collecting a source as channel planes.
func Example_readAll() {
	source := audiotest.NewSineSource(8000, 2, 2000, 440.0)

	planes, err := audio.ReadAll(source, 0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Channels: %d\n", len(planes))
	fmt.Printf("Frames per channel: %d\n", len(planes[0]))
	// Output:
	// Channels: 2
	// Frames per channel: 2000
}

// mockDecoder is a stand-in decoder for the registry example.
type mockDecoder struct{}

func (m mockDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 1, 1000, 440.0), nil
}

// Example_registry demonstrates decoder registration and lookup.
func Example_registry() {
	registry := audio.NewRegistry()

	registry.Register("wav", mockDecoder{})
	registry.Register("mp3", mockDecoder{})
	registry.Register("ogg", mockDecoder{})

	fmt.Printf("Registered formats: %v\n", registry.Formats())

	decoder, ok := registry.Get("wav")
	if !ok {
		log.Fatal("decoder not found")
	}

	src, err := decoder.Decode(nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded stream: %d Hz, %d channel(s)\n", src.SampleRate(), src.Channels())

	if _, ok := registry.Get("flac"); !ok {
		fmt.Println("flac is not registered")
	}
	// Output:
	// Registered formats: [mp3 ogg wav]
	// Decoded stream: 16000 Hz, 1 channel(s)
	// flac is not registered
}
