package main

// Default command-line flag values
const (
	defaultSampleRate = 48000 // DAT/DVD sample rate
	defaultBitDepth   = 16    // CD bit depth
	defaultDuration   = 2.0   // Seconds of output
	defaultFrequency  = 50.0  // Curve traversals per second
	defaultAmplitude  = 0.9   // Peak level after normalization
	minRequiredArgs   = 2
)

// Output format
const (
	stereoChannels = 2 // Left = x, right = y
	wavFormatPCM   = 1 // WAVE_FORMAT_PCM

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// Curve constraints
const (
	minControlPoints = 2
	centripetalAlpha = 0.5 // Exponent applied to control point distances
	halfDivisor      = 2.0
)
