package convolve

import (
	"runtime"
	"sync"

	"github.com/nvr-ai/go-convolve/grid"
)

// ParallelConvolver computes the same numbers as DirectConvolver but
// partitions the output rows across workers. Each worker reads the
// shared immutable input grid and kernel and writes only its own
// disjoint row range, so no locks or atomics are needed; a join
// barrier makes the new grid visible only once every chunk is done.
// Per-pixel accumulation order is unchanged, so results match the
// direct strategy channel for channel.
type ParallelConvolver struct{}

// Convolve produces a new grid by fanning the row range out over the
// available CPUs and joining before returning.
func (ParallelConvolver) Convolve(g *grid.Grid[grid.RGBA], kernel *grid.Kernel) (*grid.Grid[grid.RGBA], error) {
	width := g.Width()
	height := g.Height()
	cells := make([]grid.RGBA, width*height)
	partitionRows(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				cells[g.Index(x, y)] = convolveAt(g, kernel, x, y)
			}
		}
	})
	return grid.FromCells(width, height, cells)
}

// partitionRows splits [0, rows) into one contiguous chunk per
// available CPU and runs fn on each chunk concurrently. Chunks are
// disjoint and cover the range exactly once. For small row counts the
// goroutine overhead is not worth it and the range is processed
// serially.
func partitionRows(rows int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if rows < workers*2 {
		fn(0, rows)
		return
	}

	chunk := rows / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		// Last chunk absorbs the remainder rows.
		if i == workers-1 {
			end = rows
		}
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
