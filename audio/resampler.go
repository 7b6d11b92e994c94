// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/thecargocultnz/audiobridge/utils"
)

// Resampler converts src to a target sample rate using cubic interpolation
// over a four-frame window. It works on interleaved samples and preserves
// the channel count. When downsampling, a one-pole lowpass smooths the
// input before interpolation.
type Resampler struct {
	src      Source
	dstRate  int
	channels int

	// step is how many source frames each output frame advances.
	step float64
	pos  float64

	// window[0] holds frame t-1 through window[3] holding t+2; output
	// interpolates between window[1] and window[2].
	window [4][]float32
	valid  [4]bool
	primed bool
	done   bool

	srcBuf []float32
	bufLen int
	bufPos int
	eof    bool

	// lowpass is nil unless downsampling.
	lowpass []float32
	alpha   float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		srcBuf:   make([]float32, max(4096/channels, 1)*channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	if r.step > 1 {
		r.alpha = 0.5
		r.lowpass = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing source: %w", err)
	}

	return nil
}

// nextFrame returns the next source frame, refilling the read buffer as
// needed. A torn trailing frame at end of stream is discarded.
func (r *Resampler) nextFrame() ([]float32, error) {
	for r.bufLen-r.bufPos < r.channels {
		if r.eof {
			return nil, io.EOF
		}

		rem := copy(r.srcBuf, r.srcBuf[r.bufPos:r.bufLen])
		r.bufPos = 0
		r.bufLen = rem

		n, err := r.src.ReadSamples(r.srcBuf[rem:])
		r.bufLen += n

		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}

	frame := r.srcBuf[r.bufPos : r.bufPos+r.channels]
	r.bufPos += r.channels

	return frame, nil
}

// push shifts the window back one frame and installs next as the new
// lookahead, running it through the lowpass when one is active.
func (r *Resampler) push(next []float32) {
	r.window[0], r.window[1], r.window[2], r.window[3] =
		r.window[1], r.window[2], r.window[3], r.window[0]
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	slot := r.window[3]
	copy(slot, next)
	r.valid[3] = true

	if r.lowpass != nil {
		for c, x := range slot {
			y := r.alpha*x + (1-r.alpha)*r.lowpass[c]
			slot[c] = y
			r.lowpass[c] = y
		}
	}
}

// prime fills the window with the first four source frames. Streams
// shorter than the window reuse their last frame as lookahead.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		frame, err := r.nextFrame()
		if err == io.EOF {
			if i == 0 {
				return io.EOF
			}
			for ; i < 4; i++ {
				r.push(r.window[3])
			}

			break
		}
		if err != nil {
			return err
		}

		if i == 0 && r.lowpass != nil {
			copy(r.lowpass, frame)
		}

		r.push(frame)
	}

	r.primed = true

	return nil
}

// interpolateInto writes one output frame for the current window position.
func (r *Resampler) interpolateInto(dst []float32, alpha float32) {
	for c := range r.channels {
		y1 := r.window[1][c]
		y2 := r.window[2][c]

		y0 := y1
		if r.valid[0] {
			y0 = r.window[0][c]
		}

		y3 := y2
		if r.valid[3] {
			y3 = r.window[3][c]
		}

		dst[c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
	}
}

// ReadSamples produces samples at the target rate. dst length must be a
// multiple of the channel count. Once the source is exhausted every call
// returns (0, io.EOF).
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				r.done = true
			}

			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--

			frame, err := r.nextFrame()
			if err == io.EOF {
				r.done = true

				return written * r.channels, io.EOF
			}
			if err != nil {
				return written * r.channels, err
			}

			r.push(frame)
		}

		r.interpolateInto(dst[written*r.channels:], float32(r.pos))
		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
