package jlandxml

import (
	"fmt"
	"io"
	"runtime"
	"sync"
)

// ConvertJob describes one surface-to-GeoTIFF conversion task.
type ConvertJob struct {
	Surface          *Surface
	CoordinateSystem *CoordinateSystem
	Resolution       float64
	OutputPath       string
}

// BatchOptions controls parallel batch conversion, mirroring the teacher's
// load-options convention for its worker pool.
type BatchOptions struct {
	// Parallel enables concurrent conversion. Default true.
	Parallel bool

	// Workers caps concurrent conversions. 0 means runtime.NumCPU().
	Workers int

	// SkipErrors continues the batch past individual job failures,
	// collecting their errors, instead of stopping at the first one.
	SkipErrors bool

	// Progress is called after each job completes (success or error).
	Progress func(done, total int)

	// ErrorLog, if non-nil, receives one line per failed job.
	ErrorLog io.Writer
}

// DefaultBatchOptions returns BatchOptions with parallel conversion enabled
// and errors skipped.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}

// ConvertBatch rasterizes and writes every job's surface to a GeoTIFF,
// using a jobs-channel/worker-pool pattern adapted from the teacher's
// parallel chart loader (spec section 5: "batch conversion SHOULD use
// bounded worker parallelism, not one goroutine per job").
func ConvertBatch(jobs []ConvertJob, opts BatchOptions) []error {
	if len(jobs) == 0 {
		return nil
	}
	if !opts.Parallel {
		return convertBatchSerial(jobs, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	type result struct {
		index int
		err   error
	}

	queue := make(chan int, len(jobs))
	results := make(chan result, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				results <- result{index: i, err: convertOne(jobs[i])}
			}
		}()
	}
	for i := range jobs {
		queue <- i
	}
	close(queue)

	go func() {
		wg.Wait()
		close(results)
	}()

	errs := make([]error, len(jobs))
	done := 0
	for r := range results {
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(jobs))
		}
		if r.err != nil {
			wrapped := fmt.Errorf("%s: %w", jobs[r.index].OutputPath, r.err)
			errs[r.index] = wrapped
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "conversion failed: %v\n", wrapped)
			}
			if !opts.SkipErrors {
				return collectNonNil(errs)
			}
		}
	}
	return collectNonNil(errs)
}

func convertBatchSerial(jobs []ConvertJob, opts BatchOptions) []error {
	errs := make([]error, len(jobs))
	for i, job := range jobs {
		if err := convertOne(job); err != nil {
			wrapped := fmt.Errorf("%s: %w", job.OutputPath, err)
			errs[i] = wrapped
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "conversion failed: %v\n", wrapped)
			}
			if !opts.SkipErrors {
				if opts.Progress != nil {
					opts.Progress(i+1, len(jobs))
				}
				return collectNonNil(errs)
			}
		}
		if opts.Progress != nil {
			opts.Progress(i+1, len(jobs))
		}
	}
	return collectNonNil(errs)
}

func convertOne(job ConvertJob) error {
	idx, err := job.Surface.NewIndex()
	if err != nil {
		return err
	}
	grid, err := Rasterize(idx, DefaultRasterizeOptions(job.Resolution), job.CoordinateSystem)
	if err != nil {
		return err
	}
	return WriteGeoTIFF(job.OutputPath, grid, DefaultWriteOptions())
}

func collectNonNil(errs []error) []error {
	var out []error
	for _, e := range errs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
