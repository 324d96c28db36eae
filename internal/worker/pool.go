// Package worker replays stored games in parallel. Every item is replayed
// on its own game.Game, so workers share no game state.
package worker

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-arbiter/internal/game"
	"github.com/lgbarn/chess-arbiter/internal/storage"
)

// WorkItem is one stored game to replay.
type WorkItem struct {
	Record *storage.Record
	Index  int // position in the submitted sequence
}

// ProcessResult is the outcome of replaying one record.
type ProcessResult struct {
	Record   *storage.Record
	Index    int
	Snapshot game.Snapshot // final state; zero when Error is set
	Error    error
}

// ProcessFunc handles a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of goroutines over a shared work channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 mean one
// worker per CPU.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		p.numWorkers = n
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Without options it has one worker and a buffer
// of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip any items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel processed items arrive on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
