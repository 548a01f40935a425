package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	interpolate "github.com/tphakala/go-interpolate"
	"github.com/tphakala/go-interpolate/internal/simdops"
	"github.com/tphakala/go-interpolate/spline"
)

// curveMode selects how the closed curve is drawn through the control points.
type curveMode int

const (
	modeCatmullRom curveMode = iota
	modeCentripetal
	modeLinear
	modeCosine
)

func (m curveMode) String() string {
	switch m {
	case modeCatmullRom:
		return "catmullrom"
	case modeCentripetal:
		return "centripetal"
	case modeLinear:
		return "linear"
	case modeCosine:
		return "cosine"
	default:
		return "unknown"
	}
}

func parseMode(s string) (curveMode, error) {
	switch strings.ToLower(s) {
	case "catmullrom", "catmull-rom":
		return modeCatmullRom, nil
	case "centripetal":
		return modeCentripetal, nil
	case "linear":
		return modeLinear, nil
	case "cosine":
		return modeCosine, nil
	default:
		return 0, fmt.Errorf("unknown curve mode %q", s)
	}
}

// renderOptions holds validated rendering parameters.
type renderOptions struct {
	sampleRate int
	bitDepth   int
	duration   float64
	frequency  float64
	amplitude  float64
	mode       curveMode
	parallel   bool
}

func (o renderOptions) validate() error {
	if o.sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", o.sampleRate)
	}
	switch o.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("unsupported bit depth %d", o.bitDepth)
	}
	if o.duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", o.duration)
	}
	if o.frequency <= 0 {
		return fmt.Errorf("frequency must be positive, got %v", o.frequency)
	}
	if o.amplitude <= 0 || o.amplitude > 1 {
		return fmt.Errorf("amplitude must be in (0, 1], got %v", o.amplitude)
	}
	return nil
}

// pointCodec converts between raw coordinates and a point type.
type pointCodec[V any, F simdops.Float] struct {
	point func(x, y float64) V
	xy    func(p V) (F, F)
}

// readPoints reads control points from a file.
func readPoints(path string) ([][2]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open points file: %w", err)
	}
	defer func() { _ = f.Close() }()

	points, err := parsePoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}

// parsePoints parses "x y" or "x,y" lines.
func parsePoints(r io.Reader) ([][2]float64, error) {
	var points [][2]float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 coordinates, got %d", line, len(fields))
		}

		var p [2]float64
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d: coordinate must be finite", line)
			}
			p[i] = v
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read points: %w", err)
	}

	if len(points) < minControlPoints {
		return nil, fmt.Errorf("need at least %d control points, got %d", minControlPoints, len(points))
	}
	return points, nil
}

// normalizePoints centers the bounding box on the origin and scales its
// larger half-extent to amplitude. The aspect ratio is preserved.
func normalizePoints(points [][2]float64, amplitude float64) [][2]float64 {
	lo := points[0]
	hi := points[0]
	for _, p := range points[1:] {
		for i := range p {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}

	var center [2]float64
	halfExtent := 0.0
	for i := range center {
		center[i] = (lo[i] + hi[i]) / halfDivisor
		halfExtent = max(halfExtent, (hi[i]-lo[i])/halfDivisor)
	}

	scale := 0.0
	if halfExtent > 0 {
		scale = amplitude / halfExtent
	}

	out := make([][2]float64, len(points))
	for j, p := range points {
		for i := range p {
			out[j][i] = (p[i] - center[i]) * scale
		}
	}
	return out
}

// buildSpline builds a closed spline through points. Keys are unrolled from
// index -1 to n+2 so that every segment of the loop has Catmull-Rom
// neighbours. The returned knots hold the key parameters; knots[m] belongs
// to control point m-1 (mod n).
func buildSpline[V interpolate.Metric[V, F], F simdops.Float](points []V, mode curveMode) (*spline.Spline[F, V], []F, error) {
	n := len(points)
	at := func(k int) V { return points[((k%n)+n)%n] }

	kind := spline.CatmullRom
	switch mode {
	case modeLinear:
		kind = spline.Linear
	case modeCosine:
		kind = spline.Cosine
	}

	keys := make([]spline.Key[F, V], n+4)
	knots := make([]F, n+4)
	for m := range keys {
		k := m - 1
		if m > 0 {
			step := F(1)
			if mode == modeCentripetal {
				d := at(k - 1).Distance(at(k))
				if d == 0 {
					return nil, nil, fmt.Errorf("control points %d and %d coincide", ((k-1)%n+n)%n, k%n)
				}
				step = F(math.Pow(float64(d), centripetalAlpha))
			}
			knots[m] = knots[m-1] + step
		}
		keys[m] = spline.NewKey(knots[m], at(k), kind)
	}

	return spline.New(keys...), knots, nil
}

// sampleParams maps output frames to spline parameters. The loop is traced
// frequency times per second with equal time per segment.
func sampleParams[F simdops.Float](knots []F, segments, frames, sampleRate int, frequency float64) []F {
	ts := make([]F, frames)
	for i := range ts {
		cycles := float64(i) * frequency / float64(sampleRate)
		u := (cycles - math.Floor(cycles)) * float64(segments)
		seg := min(int(u), segments-1)
		local := F(u - float64(seg))

		a := knots[seg+1]
		b := knots[seg+2]
		ts[i] = a + local*(b-a)
	}
	return ts
}

// renderPCM renders the curve as interleaved stereo PCM samples.
func renderPCM[V interpolate.Metric[V, F], F simdops.Float](
	ctx context.Context,
	raw [][2]float64,
	opts renderOptions,
	codec pointCodec[V, F],
) ([]int, error) {
	points := make([]V, len(raw))
	for i, p := range raw {
		points[i] = codec.point(p[0], p[1])
	}

	s, knots, err := buildSpline[V, F](points, opts.mode)
	if err != nil {
		return nil, err
	}

	frames := int(opts.duration * float64(opts.sampleRate))
	ts := sampleParams(knots, len(points), frames, opts.sampleRate, opts.frequency)

	samples, err := s.SampleMany(ctx, ts, spline.Config{Parallel: opts.parallel})
	if err != nil {
		if errors.Is(err, spline.ErrOutOfRange) {
			return nil, fmt.Errorf("curve evaluation failed: %w", err)
		}
		return nil, err
	}

	left := make([]F, frames)
	right := make([]F, frames)
	for i, p := range samples {
		left[i], right[i] = codec.xy(p)
	}

	interleaved := make([]F, frames*stereoChannels)
	simdops.For[F]().Interleave2(interleaved, left, right)

	return toPCM(interleaved, opts.bitDepth), nil
}

// toPCM scales samples in [-1, 1] to signed integers of the given bit depth.
// Samples outside the range are clipped.
func toPCM[F simdops.Float](samples []F, bitDepth int) []int {
	maxVal := getMaxValue(bitDepth)
	out := make([]int, len(samples))
	for i, s := range samples {
		v := min(max(float64(s), -1), 1)
		out[i] = int(math.Round(v * maxVal))
	}
	return out
}

// getMaxValue returns the maximum sample value for a bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// writeWAV writes interleaved stereo PCM to a WAV file.
func writeWAV(path string, pcm []int, sampleRate, bitDepth int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(out, sampleRate, bitDepth, stereoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data: pcm,
		Format: &audio.Format{
			NumChannels: stereoChannels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return out.Close()
}
