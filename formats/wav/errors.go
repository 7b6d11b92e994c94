package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no RIFF/WAVE signature.
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrOnlyPCMSupported indicates a compressed or float encoding.
	ErrOnlyPCMSupported = errors.New("only PCM WAV is supported")
	// ErrUnsupportedBitDepth indicates a PCM depth outside 8/16/24/32.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	// ErrUnsupportedWavLayout indicates chunk metadata the decoder cannot use.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	// ErrInvalidChannelCount indicates a writer call with channels < 1.
	ErrInvalidChannelCount = errors.New("invalid channel count")
	// ErrPartialFrame indicates interleaved samples that do not divide
	// evenly into frames.
	ErrPartialFrame = errors.New("sample count is not a whole number of frames")
)
