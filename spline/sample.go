package spline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// SampleMany evaluates the spline at every parameter in ts.
//
// With cfg.Parallel set, ts is split into chunks of cfg.ChunkSize samples
// that are evaluated by cfg.Workers goroutines; the output order always
// matches ts. The first sample the spline cannot evaluate aborts the batch
// with an error wrapping ErrOutOfRange. Cancelling ctx aborts the batch
// between chunks.
func (s *Spline[T, V]) SampleMany(ctx context.Context, ts []T, cfg Config) ([]V, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(s.keys) == 0 {
		return nil, ErrNoKeys
	}

	out := make([]V, len(ts))
	if len(ts) == 0 {
		return out, nil
	}

	chunkSize := cfg.ChunkSize
	if chunkSize == 0 {
		chunkSize = defaultChunkSize
	}

	if !cfg.Parallel || len(ts) <= chunkSize {
		return s.sampleSequential(ctx, ts, out, chunkSize, cfg.Clamped)
	}
	return s.sampleParallel(ctx, ts, out, chunkSize, cfg)
}

// sampleSequential evaluates chunks one by one.
func (s *Spline[T, V]) sampleSequential(ctx context.Context, ts []T, out []V, chunkSize int, clamped bool) ([]V, error) {
	for start := 0; start < len(ts); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+chunkSize, len(ts))
		if err := s.sampleChunk(ts, out, start, end, clamped); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// sampleParallel evaluates chunks concurrently.
func (s *Spline[T, V]) sampleParallel(ctx context.Context, ts []T, out []V, chunkSize int, cfg Config) ([]V, error) {
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunks := make(chan int)
	var wg sync.WaitGroup
	var sampleErr error
	var errMu sync.Mutex

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for start := range chunks {
				end := min(start+chunkSize, len(ts))
				if err := s.sampleChunk(ts, out, start, end, cfg.Clamped); err != nil {
					errMu.Lock()
					if sampleErr == nil {
						sampleErr = err
					}
					errMu.Unlock()
					cancel()
				}
			}
		}()
	}

dispatch:
	for start := 0; start < len(ts); start += chunkSize {
		select {
		case chunks <- start:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(chunks)
	wg.Wait()

	if sampleErr != nil {
		return nil, sampleErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// sampleChunk writes the samples for ts[start:end] into out.
func (s *Spline[T, V]) sampleChunk(ts []T, out []V, start, end int, clamped bool) error {
	for i := start; i < end; i++ {
		var v V
		var ok bool
		if clamped {
			v, ok = s.ClampedSample(ts[i])
		} else {
			v, ok = s.Sample(ts[i])
		}
		if !ok {
			return fmt.Errorf("%w: sample %d at t=%v", ErrOutOfRange, i, ts[i])
		}
		out[i] = v
	}
	return nil
}
