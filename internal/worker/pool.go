// Package worker provides a worker pool that scores root moves in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// WorkItem is one root move to be scored.
type WorkItem struct {
	Board *engine.Board // Position the move is played from
	Move  engine.Move
	Index int // Position of the move in the enumeration order
}

// ProcessResult is the outcome of scoring one root move.
type ProcessResult struct {
	Index     int
	Move      engine.Move
	Score     int
	Completed bool  // False when the move could not be played
	Evaluated int64 // Positions scored below this move
	Error     error
}

// ProcessFunc scores a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a fixed set of goroutines scoring work items.
type Pool struct {
	numWorkers  int
	bufferSize  int
	ctx         context.Context
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Set once a result carries an error
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithContext stops the pool when ctx is done. Items still queued are
// answered with ctx.Err() instead of being processed.
func WithContext(ctx context.Context) PoolOption {
	return func(p *Pool) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// NewPool creates a pool. processFunc is required; by default the pool has
// one worker and a buffer of 10 items.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		ctx:         context.Background(),
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if err := p.ctx.Err(); err != nil {
			p.resultChan <- ProcessResult{Index: item.Index, Move: item.Move, Error: err}
			continue
		}
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to drop the items still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, processes every item and returns the results indexed
// by WorkItem.Index. Items must carry distinct indices in [0, len(items)).
// The first error reported by a worker stops the pool: items not yet
// processed are dropped and keep their zero result. That error is returned
// alongside the results.
func (p *Pool) Run(items []WorkItem) ([]ProcessResult, error) {
	p.Start()
	go func() {
		for _, item := range items {
			if p.IsStopped() {
				break
			}
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, len(items))
	var firstErr error
	for r := range p.Results() {
		if r.Error != nil && firstErr == nil {
			firstErr = r.Error
			p.Stop()
		}
		results[r.Index] = r
	}
	return results, firstErr
}
