// SPDX-License-Identifier: EPL-2.0

package audiobridge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thecargocultnz/audiobridge/audio"
	"github.com/thecargocultnz/audiobridge/formats/aiff"
	"github.com/thecargocultnz/audiobridge/formats/mp3"
	"github.com/thecargocultnz/audiobridge/formats/vorbis"
	"github.com/thecargocultnz/audiobridge/formats/wav"
	"github.com/thecargocultnz/audiobridge/model"
)

// registry holds the built-in decoders, keyed by file extension.
var registry = builtinRegistry()

func builtinRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

// Formats returns the file extensions LoadSourceFile understands.
func Formats() []string {
	return registry.Formats()
}

// LoadSourceFile decodes an audio file into a model source named after the
// file. The decoder is chosen by the file extension; unknown extensions
// report audio.ErrUnknownFormat.
func LoadSourceFile(path string) (*model.AudioSource, error) {
	return loadSource(path, 0)
}

// LoadSourceFileAtRate decodes like LoadSourceFile and conforms the audio
// to sampleRate on the way in, so every source in a document can share the
// document's rate regardless of what is on disk.
func LoadSourceFileAtRate(path string, sampleRate int) (*model.AudioSource, error) {
	return loadSource(path, sampleRate)
}

func loadSource(path string, targetRate int) (*model.AudioSource, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	decoder, ok := registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("loading %q: %w", path, audio.ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	defer f.Close()

	decoded, err := decoder.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	defer decoded.Close()

	var src audio.Source = decoded
	if targetRate > 0 && targetRate != decoded.SampleRate() {
		src = audio.NewResampler(decoded, targetRate)
	}

	planes, err := audio.ReadAll(src, 0)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return model.NewAudioSource(name, float64(src.SampleRate()), planes), nil
}
