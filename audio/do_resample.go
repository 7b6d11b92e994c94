package audio

import (
	"io"

	"github.com/thecargocultnz/audiobridge/utils"
)

// ResampleToMono16 runs src through a resample-then-mono pipeline and
// collects the whole stream as 16-bit PCM at targetRate. A bufSize of
// zero or less falls back to the source's preferred read size.
//
// The returned rate always equals targetRate; it is passed back so the
// result can feed an encoder directly.
func ResampleToMono16(src Source, targetRate, bufSize int) ([]int16, int, error) {
	mono := NewMonoMixer(NewResampler(src, targetRate))

	if bufSize <= 0 {
		bufSize = mono.BufSize()
	}

	pcm := make([]int16, 0, targetRate)
	buf := make([]float32, bufSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			return pcm, targetRate, nil
		}
		if err != nil {
			return nil, targetRate, err
		}
	}
}
