package tempbox

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type (
	// IndexWorker indexes temporal values in the background with a fixed
	// pool of goroutines. A value must not be modified once enqueued
	IndexWorker struct {
		indexer *Indexer
		ctx     context.Context
		queue   chan indexRequest
		cancel  context.CancelFunc
		config  WorkerConfig
		wg      sync.WaitGroup
	}

	indexRequest struct {
		temp Temporal
		id   ID
	}
)

// NewIndexWorker starts the worker goroutines
func NewIndexWorker(ix *Indexer, config WorkerConfig) *IndexWorker {
	ctx, cancel := context.WithCancel(context.Background())

	w := &IndexWorker{
		indexer: ix,
		config:  config,
		queue:   make(chan indexRequest, config.MaxQueueSize),
		ctx:     ctx,
		cancel:  cancel,
	}

	for i := 0; i < config.WorkerCount; i++ {
		w.wg.Add(1)
		go w.worker(i)
	}

	return w
}

func (w *IndexWorker) worker(id int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case req := <-w.queue:
			w.put(id, req)
		}
	}
}

func (w *IndexWorker) put(workerID int, req indexRequest) {
	ctx, cancel := context.WithTimeout(w.ctx, w.config.PutTimeout)
	defer cancel()

	start := time.Now()
	_, err := w.indexer.Put(ctx, req.id, req.temp)
	duration := time.Since(start)

	if err != nil {
		w.indexer.logger.Error("background index failed",
			zap.Int("worker_id", workerID),
			zap.String("id", string(req.id)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}

	w.indexer.logger.Debug("background index done",
		zap.Int("worker_id", workerID),
		zap.String("id", string(req.id)),
		zap.Duration("duration", duration),
	)
}

// Enqueue schedules a temporal value for indexing. It returns false without
// blocking when the queue is full or the worker is stopped
func (w *IndexWorker) Enqueue(id ID, temp Temporal) bool {
	if w.ctx.Err() != nil {
		return false
	}

	select {
	case w.queue <- indexRequest{id: id, temp: temp}:
		return true
	default:
		w.indexer.logger.Warn("index queue full, dropping request",
			zap.String("id", string(id)),
			zap.Int("queue_size", len(w.queue)),
		)
		return false
	}
}

// Stop halts the workers and waits for them to exit. Requests still queued
// are dropped
func (w *IndexWorker) Stop() {
	w.cancel()
	w.wg.Wait()
}
