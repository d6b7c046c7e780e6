package parser

import (
	"sync"
	"sync/atomic"
)

// rasterizeParallel fills every row of grid using a fixed-size worker
// pool, adapted from the chart-loading worker pool in the teacher's
// v1 API (jobs channel -> workers -> WaitGroup) but applied to grid rows
// instead of file paths. Each worker writes only to the row slice it
// claimed, so no locking is required (spec section 5), and because the
// per-pixel computation in rasterizeRow is independent of row-completion
// order, the output is bit-identical regardless of how many workers ran
// or in what order they finished (spec section 4.5 determinism contract).
func rasterizeParallel(ts *TriangulationSource, grid *DemGrid, differTP float64, workers int, cancel <-chan struct{}) error {
	if workers > grid.Rows {
		workers = grid.Rows
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, grid.Rows)
	for row := 0; row < grid.Rows; row++ {
		jobs <- row
	}
	close(jobs)

	var wg sync.WaitGroup
	var canceledFlag atomic.Bool
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range jobs {
				if canceled(cancel) {
					canceledFlag.Store(true)
					return
				}
				rasterizeRow(ts, grid, row, differTP)
			}
		}()
	}
	wg.Wait()

	if canceledFlag.Load() {
		return ErrCanceled{}
	}
	return nil
}
