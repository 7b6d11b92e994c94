// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes interleaved 16-bit PCM as a canonical WAV file: a
// 44-byte header followed by the sample data. samples holds whole frames in
// channel-interleaved order, so len(samples) must divide evenly by
// numChannels.
//
// The header carries the total data size up front, which is what lets this
// writer target a plain io.Writer instead of requiring a seekable sink.
func WriteWAV16(w io.Writer, sampleRate, numChannels int, samples []int16) error {
	if numChannels < 1 {
		return ErrInvalidChannelCount
	}
	if len(samples)%numChannels != 0 {
		return ErrPartialFrame
	}

	const bytesPerSample = 2
	dataSize := uint32(len(samples) * bytesPerSample)

	var header [44]byte

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format tag
	binary.LittleEndian.PutUint16(header[22:24], uint16(numChannels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*numChannels*bytesPerSample))
	binary.LittleEndian.PutUint16(header[32:34], uint16(numChannels*bytesPerSample))
	binary.LittleEndian.PutUint16(header[34:36], 16) // bits per sample

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	// Convert and flush in chunks so large bounces never hold a second
	// full copy of the data.
	const chunkSamples = 4096
	buf := make([]byte, 0, min(len(samples), chunkSamples)*bytesPerSample)

	for off := 0; off < len(samples); off += chunkSamples {
		chunk := samples[off:min(off+chunkSamples, len(samples))]

		buf = buf[:len(chunk)*bytesPerSample]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}
