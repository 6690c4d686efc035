package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// AuditManager batches audit entries and writes them through zap from a
// small worker pool, so request handlers never wait on log output.
type AuditManager struct {
	workers   int
	batchSize int
	flushWait time.Duration
	logger    *zap.Logger

	entries chan AuditLogEntry
	batches chan []AuditLogEntry
	stop    chan struct{}
	stopped sync.Once
	wg      sync.WaitGroup

	pending atomic.Int64
}

func NewAuditManager(workers, batchSize int, flushWait time.Duration, logger *zap.Logger) *AuditManager {
	return &AuditManager{
		workers:   workers,
		batchSize: batchSize,
		flushWait: flushWait,
		logger:    logger.Named("audit"),
		entries:   make(chan AuditLogEntry, workers*batchSize*2),
		batches:   make(chan []AuditLogEntry, workers*2),
		stop:      make(chan struct{}),
	}
}

// Start launches the aggregator and the writers. Cancelling ctx has the same
// effect as Shutdown.
func (m *AuditManager) Start(ctx context.Context) {
	m.wg.Add(1 + m.workers)
	go m.aggregate()
	for i := 0; i < m.workers; i++ {
		go m.write(i)
	}

	go func() {
		select {
		case <-ctx.Done():
			m.Shutdown(context.Background())
		case <-m.stop:
		}
	}()
}

// LogEntry queues entry. When the queue is full or the manager is stopping
// the entry is written synchronously instead of being dropped.
func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	m.pending.Add(1)
	select {
	case <-m.stop:
		m.writeNow(entry)
		return
	default:
	}

	select {
	case m.entries <- entry:
	case <-ctx.Done():
		m.writeNow(entry)
	default:
		m.writeNow(entry)
	}
}

// Shutdown flushes whatever is queued and waits for the writers, at most
// until ctx is done.
func (m *AuditManager) Shutdown(ctx context.Context) {
	m.stopped.Do(func() {
		close(m.stop)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Debug("audit manager stopped")
		case <-ctx.Done():
			m.logger.Warn("audit manager shutdown interrupted", zap.Int64("pending", m.Pending()))
		}
	})
}

// Pending reports entries accepted but not yet written.
func (m *AuditManager) Pending() int64 {
	return m.pending.Load()
}

func (m *AuditManager) aggregate() {
	defer m.wg.Done()
	defer close(m.batches)

	batch := make([]AuditLogEntry, 0, m.batchSize)
	timer := time.NewTimer(m.flushWait)
	timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		m.hand(batch)
		batch = make([]AuditLogEntry, 0, m.batchSize)
		timer.Stop()
	}

	for {
		select {
		case entry := <-m.entries:
			batch = append(batch, entry)
			switch {
			case len(batch) >= m.batchSize:
				flush()
			case len(batch) == 1:
				timer.Reset(m.flushWait)
			}
		case <-timer.C:
			flush()
		case <-m.stop:
			for {
				select {
				case entry := <-m.entries:
					batch = append(batch, entry)
				default:
					flush()
					return
				}
			}
		}
	}
}

// hand passes a full batch to the writers, or writes it inline when they are
// all busy.
func (m *AuditManager) hand(batch []AuditLogEntry) {
	select {
	case m.batches <- batch:
	default:
		m.print(-1, batch)
	}
}

func (m *AuditManager) write(worker int) {
	defer m.wg.Done()
	for batch := range m.batches {
		m.print(worker, batch)
	}
}

func (m *AuditManager) writeNow(entry AuditLogEntry) {
	m.logger.Info("audit entry", zap.Object("entry", entry))
	m.pending.Add(-1)
}

func (m *AuditManager) print(worker int, batch []AuditLogEntry) {
	m.logger.Info("audit batch",
		zap.Int("worker", worker),
		zap.Int("size", len(batch)),
		zap.Array("entries", auditBatch(batch)),
	)
	m.pending.Add(-int64(len(batch)))
}
