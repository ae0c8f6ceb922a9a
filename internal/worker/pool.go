// Package worker implements the buffered worker pool for async prediction
// auditing. This decouples HTTP request handling from database writes:
// served predictions are enqueued, batched, and bulk-inserted to Postgres,
// with load shedding under pressure and a flush on graceful shutdown.
package worker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

var (
	auditEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_audit_records_enqueued_total",
		Help: "Prediction audit records accepted into the queue",
	})

	auditWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_audit_records_written_total",
		Help: "Prediction audit records persisted to Postgres",
	})

	auditFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_audit_records_failed_total",
		Help: "Prediction audit records that failed to persist",
	})

	auditLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_audit_records_load_shed_total",
		Help: "Prediction audit records dropped because the queue was full",
	})

	auditQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nba_audit_queue_depth",
		Help: "Current depth of the audit queue",
	})

	auditBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nba_audit_batch_insert_duration_seconds",
		Help:    "Duration of audit batch inserts to Postgres",
		Buckets: prometheus.DefBuckets,
	})
)

// PgExecutor is the slice of a pgx pool the audit writer needs.
type PgExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PoolConfig configures the audit worker pool.
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Postgres      PgExecutor
	Logger        *zap.Logger
}

// Pool manages the audit worker goroutines. It satisfies the services'
// audit sink; Record never blocks the request path.
type Pool struct {
	config   PoolConfig
	jobQueue chan models.PredictionRecord
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates the audit worker pool.
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 4096
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 200
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan models.PredictionRecord, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	go p.reportQueueDepth()

	p.logger.Infow("Audit worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop shuts the pool down, flushing everything still queued.
func (p *Pool) Stop() {
	p.logger.Info("Stopping audit worker pool...")
	close(p.jobQueue)
	p.wg.Wait()
	p.cancel()
	p.logger.Info("Audit worker pool stopped")
}

// Record enqueues a served prediction for persistence. Sheds the record
// instead of blocking when the queue is full or the pool has stopped.
func (p *Pool) Record(rec models.PredictionRecord) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue audit record (pool stopped)", "error", r)
		}
	}()

	select {
	case p.jobQueue <- rec:
		auditEnqueued.Inc()
	default:
		auditLoadShed.Inc()
		p.logger.Warnw("Audit queue full, dropping record", "id", rec.ID)
	}
}

// QueueDepth returns the current queue size.
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker drains the queue in batches, flushing on size or interval.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]models.PredictionRecord, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		if err := p.insertBatch(batch); err != nil {
			p.logger.Errorw("Audit batch insert failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			auditFailed.Add(float64(len(batch)))
		} else {
			auditWritten.Add(float64(len(batch)))
		}
		auditBatchDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case rec, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, rec)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-p.ctx.Done():
			flush()
			return
		}
	}
}

// insertBatch bulk-inserts a batch as one multi-row statement.
func (p *Pool) insertBatch(batch []models.PredictionRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var sb strings.Builder
	sb.WriteString(`INSERT INTO prediction_audit
		(id, team1, team2, team1_win_prob, team2_win_prob, winner, fallback, endpoint, created_at) VALUES `)

	args := make([]interface{}, 0, len(batch)*9)
	for i, rec := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 9
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			n+1, n+2, n+3, n+4, n+5, n+6, n+7, n+8, n+9)
		args = append(args, rec.ID, rec.Team1, rec.Team2,
			rec.Team1WinProb, rec.Team2WinProb, rec.Winner,
			rec.Fallback, rec.Endpoint, rec.CreatedAt)
	}
	sb.WriteString(" ON CONFLICT (id) DO NOTHING")

	_, err := p.config.Postgres.Exec(ctx, sb.String(), args...)
	return err
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			auditQueueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
