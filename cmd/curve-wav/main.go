// Command curve-wav renders a closed curve through 2-D control points as a
// stereo WAV file for display on an oscilloscope in XY mode: the left channel
// carries x and the right channel carries y.
//
// Usage:
//
//	curve-wav points.txt out.wav
//	curve-wav -mode centripetal -freq 80 -duration 5 points.txt out.wav
//	curve-wav -fast -bits 24 points.txt out.wav     # float32 points
//
// The points file holds one "x y" (or "x,y") pair per line; blank lines and
// lines starting with '#' are ignored. Points are normalized to the
// [-amplitude, amplitude] square before rendering.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tphakala/go-interpolate/vecmath"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultSampleRate, "Output sample rate in Hz")
	bits := flag.Int("bits", defaultBitDepth, "Output bit depth: 16, 24 or 32")
	duration := flag.Float64("duration", defaultDuration, "Output length in seconds")
	freq := flag.Float64("freq", defaultFrequency, "Curve traversals per second")
	amplitude := flag.Float64("amplitude", defaultAmplitude, "Peak level in (0, 1]")
	mode := flag.String("mode", "catmullrom", "Curve mode: catmullrom, centripetal, linear, cosine")
	fast := flag.Bool("fast", false, "Use float32 points")
	parallel := flag.Bool("parallel", true, "Evaluate samples on multiple goroutines")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] points.txt output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	curveMode, err := parseMode(*mode)
	if err != nil {
		return err
	}

	opts := renderOptions{
		sampleRate: *rate,
		bitDepth:   *bits,
		duration:   *duration,
		frequency:  *freq,
		amplitude:  *amplitude,
		mode:       curveMode,
		parallel:   *parallel,
	}
	if err := opts.validate(); err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	points, err := readPoints(inputPath)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Input: %s (%d control points)", inputPath, len(points))
		log.Printf("Output: %s", outputPath)
		log.Printf("Format: %d Hz, %d-bit stereo, %.2fs", opts.sampleRate, opts.bitDepth, opts.duration)
		log.Printf("Mode: %s at %.1f Hz", curveMode, opts.frequency)
		if *fast {
			log.Printf("Precision: float32 (fast mode)")
		} else {
			log.Printf("Precision: float64")
		}
	}

	start := time.Now()
	points = normalizePoints(points, opts.amplitude)

	var pcm []int
	if *fast {
		pcm, err = renderPCM(context.Background(), points, opts, vec2Codec)
	} else {
		pcm, err = renderPCM(context.Background(), points, opts, r2Codec)
	}
	if err != nil {
		return err
	}

	if err := writeWAV(outputPath, pcm, opts.sampleRate, opts.bitDepth); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Rendered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d control points, %s, %.1f Hz\n", len(points), curveMode, opts.frequency)
	fmt.Printf("  %d frames at %d Hz (%d-bit)\n", len(pcm)/stereoChannels, opts.sampleRate, opts.bitDepth)
	fmt.Printf("  Took %.3fs\n", elapsed.Seconds())

	return nil
}

// r2Codec renders with gonum float64 points.
var r2Codec = pointCodec[vecmath.R2, float64]{
	point: vecmath.NewR2,
	xy:    func(p vecmath.R2) (float64, float64) { return p.X, p.Y },
}

// vec2Codec renders with float32 points.
var vec2Codec = pointCodec[vecmath.Vec2, float32]{
	point: func(x, y float64) vecmath.Vec2 { return vecmath.Vec2{float32(x), float32(y)} },
	xy:    func(p vecmath.Vec2) (float32, float32) { return p[0], p[1] },
}
