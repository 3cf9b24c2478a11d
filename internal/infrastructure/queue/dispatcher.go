// Package queue applies collection writes in the background.
package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/realto/plots-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

var ErrStopped = errors.New("write-behind dispatcher stopped")

type writeJob struct {
	key     string
	payload []byte
	seq     uint64
}

// pendingWrite is the newest payload queued for a key and the number of
// jobs for that key not yet applied.
type pendingWrite struct {
	payload []byte
	seq     uint64
	queued  int
}

// Dispatcher is a write-behind front for a CollectionStore. Writes are
// routed to a fixed set of workers by hashing the key, so writes to the
// same key are applied in order. Reads see the newest queued payload
// before it reaches the store.
type Dispatcher struct {
	store   ports.CollectionStore
	workers []chan writeJob
	log     zerolog.Logger

	mu      sync.Mutex
	pending map[string]pendingWrite
	seq     uint64

	// stopMu is held shared by senders so Stop never closes a queue
	// under an in-flight Put.
	stopMu  sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, store ports.CollectionStore, log zerolog.Logger) *Dispatcher {
	return newDispatcher(numWorkers, channelBuffer, store, log)
}

func newDispatcher(numWorkers, buffer int, store ports.CollectionStore, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		store:   store,
		workers: make([]chan writeJob, numWorkers),
		log:     log.With().Str("component", "write_behind").Logger(),
		pending: make(map[string]pendingWrite),
	}
	for i := range d.workers {
		d.workers[i] = make(chan writeJob, buffer)
	}
	return d
}

// Start launches the worker goroutines. Workers exit once Stop has closed
// their queues and they have drained them. ctx bounds each store write.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Stop refuses new writes and waits for queued writes to be applied.
func (d *Dispatcher) Stop() {
	d.stopMu.Lock()
	if d.stopped {
		d.stopMu.Unlock()
		return
	}
	d.stopped = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.stopMu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) Get(ctx context.Context, key string) ([]byte, error) {
	d.mu.Lock()
	p, ok := d.pending[key]
	d.mu.Unlock()
	if ok {
		return append([]byte(nil), p.payload...), nil
	}
	return d.store.Get(ctx, key)
}

// Put queues payload for key and returns without waiting for the store.
// It blocks only while the key's worker queue is full.
func (d *Dispatcher) Put(ctx context.Context, key string, payload []byte) error {
	d.stopMu.RLock()
	defer d.stopMu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	d.mu.Lock()
	d.seq++
	job := writeJob{key: key, payload: append([]byte(nil), payload...), seq: d.seq}
	prev := d.pending[key]
	d.pending[key] = pendingWrite{payload: job.payload, seq: job.seq, queued: prev.queued + 1}
	ch := d.workers[d.shardIndex(key)]
	d.mu.Unlock()

	select {
	case ch <- job:
		return nil
	case <-ctx.Done():
		d.abandon(job, prev)
		return ctx.Err()
	}
}

// abandon undoes the bookkeeping of a job that never reached its queue.
// While older writes for the key are still queued, reads go back to the
// newest of them, which is what the store will hold once they land.
func (d *Dispatcher) abandon(job writeJob, prev pendingWrite) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.pending[job.key]
	if !ok {
		return
	}
	p.queued--
	switch {
	case p.queued <= 0:
		delete(d.pending, job.key)
		return
	case p.seq == job.seq:
		p.payload, p.seq = prev.payload, prev.seq
	}
	d.pending[job.key] = p
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan writeJob) {
	defer d.wg.Done()
	for job := range ch {
		if err := d.store.Put(context.WithoutCancel(ctx), job.key, job.payload); err != nil {
			d.log.Error().Err(err).
				Str("key", job.key).
				Int("worker_id", id).
				Msg("collection write failed")
		}
		d.settle(job)
	}
}

// settle marks one job for the key as applied. The pending entry goes away
// with the last queued job.
func (d *Dispatcher) settle(job writeJob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.pending[job.key]
	if !ok {
		return
	}
	p.queued--
	if p.queued <= 0 {
		delete(d.pending, job.key)
		return
	}
	d.pending[job.key] = p
}
