package news

import (
	"context"
	"sync"
	"time"

	"career-navigator/internal/domain/catalog"
)

// Task fetches headlines from one source.
type Task func(ctx context.Context) ([]catalog.NewsItem, error)

type Result struct {
	Source string
	Items  []catalog.NewsItem
	Err    error
}

type job struct {
	source string
	task   Task
}

type WorkerPool struct {
	workers int
	jobs    chan job
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		jobs:    make(chan job, buffer),
	}
}

// SetRateLimit spaces task starts across all workers to at most rps per second.
// Zero or less removes the limit.
func (p *WorkerPool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.stopTicker()
	if rps <= 0 {
		return
	}
	t := time.NewTicker(time.Second / time.Duration(rps))
	p.mu.Lock()
	p.ticker = t
	p.rate = t.C
	p.mu.Unlock()
}

func (p *WorkerPool) stopTicker() {
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
}

func (p *WorkerPool) Submit(source string, t Task) {
	if p == nil || t == nil {
		return
	}
	p.jobs <- job{source: source, task: t}
}

// Close stops accepting tasks. Workers drain what is queued and then exit.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	p.stopTicker()
	close(p.jobs)
}

func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers*16)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-p.jobs:
					if !ok {
						return
					}
					p.mu.RLock()
					rate := p.rate
					p.mu.RUnlock()
					if rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-rate:
						}
					}
					items, err := j.task(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Source: j.source, Items: items, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
