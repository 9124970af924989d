package metrics

import (
	"database/sql"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Collector samples process and settings-database gauges on an interval.
type Collector struct {
	metrics   *Metrics
	logger    *zap.Logger
	db        *sql.DB
	startTime time.Time
	stopCh    chan struct{}
}

// NewCollector accepts a nil db when the settings store is not in use.
func NewCollector(m *Metrics, db *sql.DB, logger *zap.Logger) *Collector {
	return &Collector{
		metrics:   m,
		logger:    logger,
		db:        db,
		startTime: time.Now(),
		stopCh:    make(chan struct{}),
	}
}

func (c *Collector) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		c.Collect()
		for {
			select {
			case <-ticker.C:
				c.Collect()
			case <-c.stopCh:
				return
			}
		}
	}()

	c.logger.Info("Metrics collector started", zap.Duration("interval", interval))
}

func (c *Collector) Stop() {
	close(c.stopCh)
	c.logger.Info("Metrics collector stopped")
}

func (c *Collector) Collect() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	c.metrics.UpdateSystemMetrics(time.Since(c.startTime), &memStats)

	if c.db != nil {
		c.metrics.SettingsConnsInUse.Set(float64(c.db.Stats().InUse))
	}
}
