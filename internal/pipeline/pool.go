package pipeline

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolShutdown is returned when work is submitted to a shut-down pool.
var ErrPoolShutdown = errors.New("worker pool is shut down")

// workerPool is a bounded goroutine pool for concurrent file processing. The
// batch is parallel-safe because no component retains cross-file state; the
// pool only bounds how many files are in flight at once.
type workerPool struct {
	sem    chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
	done   chan struct{}
	closed bool
}

func newWorkerPool(size int) *workerPool {
	if size <= 0 {
		size = 1
	}
	return &workerPool{
		sem:  make(chan struct{}, size),
		done: make(chan struct{}),
	}
}

// submit enqueues work into the pool. It blocks when the pool is at capacity
// and respects context cancellation while waiting.
func (p *workerPool) submit(ctx context.Context, fn func(ctx context.Context)) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolShutdown
	}
	p.mu.Unlock()

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		return ErrPoolShutdown
	}

	p.wg.Add(1)
	go func() {
		defer func() {
			<-p.sem
			p.wg.Done()
		}()
		fn(ctx)
	}()
	return nil
}

// wait blocks until all submitted work has finished.
func (p *workerPool) wait() {
	p.wg.Wait()
}

// shutdown rejects further submissions and waits for in-flight work.
func (p *workerPool) shutdown() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.done)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
