package audio

import "fmt"

// MonoMixer folds a multi-channel source down to mono by averaging the
// channels of each frame. Mono input passes through untouched.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with mono samples, one per source frame. The
// returned count is in mono samples.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	// The scratch buffer grows to the largest request and stays there.
	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, max(need, 8192))
	}

	n, err := m.src.ReadSamples(m.tmp[:need])
	if n == 0 {
		return 0, err
	}

	frames := n / channels

	switch channels {
	case 2:
		for f := range frames {
			dst[f] = (m.tmp[2*f] + m.tmp[2*f+1]) * 0.5
		}
	case 4:
		for f := range frames {
			base := 4 * f
			dst[f] = (m.tmp[base] + m.tmp[base+1] + m.tmp[base+2] + m.tmp[base+3]) * 0.25
		}
	default:
		scale := 1 / float32(channels)
		for f := range frames {
			base := f * channels
			sum := float32(0)
			for _, v := range m.tmp[base : base+channels] {
				sum += v
			}
			dst[f] = sum * scale
		}
	}

	return frames, err
}
