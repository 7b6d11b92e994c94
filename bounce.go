// SPDX-License-Identifier: EPL-2.0

package audiobridge

import (
	"fmt"
	"io"

	"github.com/thecargocultnz/audiobridge/audio"
	"github.com/thecargocultnz/audiobridge/formats/wav"
	"github.com/thecargocultnz/audiobridge/reader"
	"github.com/thecargocultnz/audiobridge/utils"
)

// BounceToWAV renders the full length of r and writes it to w as 16-bit
// PCM WAV at the reader's rate and channel count.
func BounceToWAV(w io.Writer, r reader.SampleReader, blockSize int) error {
	src := NewReaderSource(r, blockSize)

	pcm := make([]int16, 0, r.LengthInSamples()*int64(src.Channels()))
	buf := make([]float32, src.BufSize())

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	}

	if err := wav.WriteWAV16(w, src.SampleRate(), src.Channels(), pcm); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	return nil
}

// BounceToMono16 renders the full length of r conformed to targetRate and
// folded to mono, as 16-bit PCM.
func BounceToMono16(r reader.SampleReader, targetRate, blockSize int) ([]int16, int, error) {
	return audio.ResampleToMono16(NewReaderSource(r, blockSize), targetRate, 0)
}
