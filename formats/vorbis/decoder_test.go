// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggReader simulates oggvorbis.Reader: interleaved float32 values,
// whole frames per call, (0, io.EOF) once the stream runs dry.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	readErr    error

	reads   int
	lastLen int
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	m.reads++
	m.lastLen = len(p)

	if m.readErr != nil {
		return 0, m.readErr
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := (len(p) / m.channels) * m.channels
	n = min(n, len(m.samples)-m.offset)
	copy(p, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func newMockSource(mock *mockOggReader) *source {
	return &source{
		dec:        mock,
		sampleRate: mock.sampleRate,
		channels:   mock.channels,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("This is not an Ogg stream")))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(nil))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newMockSource(&mockOggReader{sampleRate: 48000, channels: 2})

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []float32{0.0, 0.25, -0.25, 0.5, -0.5, 1.0, -1.0, 0.75}
	src := newMockSource(&mockOggReader{sampleRate: 44100, channels: 2, samples: samples})

	buf := make([]float32, len(samples))
	n, err := src.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v, want nil", err)
	}

	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	// Vorbis is float32 native, so values arrive untouched.
	for i, want := range samples {
		if buf[i] != want {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want)
		}
	}
}

func TestSource_ReadSamples_WholeFrameClamp(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 44100,
		channels:   2,
		samples:    make([]float32, 10),
	}
	src := newMockSource(mock)

	// A 7-value buffer holds three whole stereo frames.
	buf := make([]float32, 7)
	n, err := src.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v, want nil", err)
	}

	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}

	if mock.lastLen != 6 {
		t.Errorf("underlying Read() len = %d, want 6", mock.lastLen)
	}
}

func TestSource_ReadSamples_SubFrameBuffer(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 44100,
		channels:   2,
		samples:    make([]float32, 4),
	}
	src := newMockSource(mock)

	// One value cannot hold a stereo frame; the underlying reader must
	// never see a buffer it could spin on.
	n, err := src.ReadSamples(make([]float32, 1))

	if n != 0 || err != nil {
		t.Errorf("ReadSamples() = (%d, %v), want (0, nil)", n, err)
	}

	if mock.reads != 0 {
		t.Errorf("underlying Read() called %d times, want 0", mock.reads)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{sampleRate: 44100, channels: 2, samples: make([]float32, 4)}
	src := newMockSource(mock)

	n, err := src.ReadSamples(nil)

	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Mono(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3, 0.4, 0.5}
	src := newMockSource(&mockOggReader{sampleRate: 22050, channels: 1, samples: samples})

	buf := make([]float32, 5)
	n, err := src.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v, want nil", err)
	}

	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newMockSource(&mockOggReader{
		sampleRate: 44100,
		channels:   2,
		samples:    []float32{0.1, 0.2, 0.3, 0.4},
	})

	buf := make([]float32, 8)

	n, err := src.ReadSamples(buf)
	if n != 4 || err != nil {
		t.Fatalf("first ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("second ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("third ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_MultipleReads(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 6)
	for i := range samples {
		samples[i] = float32(i)
	}
	src := newMockSource(&mockOggReader{sampleRate: 44100, channels: 2, samples: samples})

	buf := make([]float32, 4)

	n, err := src.ReadSamples(buf)
	if n != 4 || err != nil {
		t.Fatalf("first ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != nil {
		t.Fatalf("second ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}

	if buf[0] != 4 || buf[1] != 5 {
		t.Errorf("second read values = [%v %v], want [4 5]", buf[0], buf[1])
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	streamErr := errors.New("corrupt page")
	src := newMockSource(&mockOggReader{sampleRate: 44100, channels: 2, readErr: streamErr})

	n, err := src.ReadSamples(make([]float32, 8))

	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}

	if !errors.Is(err, streamErr) {
		t.Errorf("ReadSamples() error = %v, want %v", err, streamErr)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := newMockSource(&mockOggReader{sampleRate: 44100, channels: 2})

	if got := src.BufSize(); got != 4096 {
		t.Errorf("BufSize() = %d, want 4096", got)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	mock := &mockOggReader{
		sampleRate: 44100,
		channels:   2,
		samples:    make([]float32, 44100*2),
	}
	src := newMockSource(mock)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		mock.offset = 0
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
