package services

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
)

// DefaultSweepInterval is how often the background sweeper evicts expired
// rate cache entries. Lazy eviction on read keeps results correct either
// way; sweeping only bounds memory between reads.
const DefaultSweepInterval = 30 * time.Second

// CacheSweeper periodically sweeps expired entries out of the rate cache.
type CacheSweeper struct {
	rates    interfaces.RateService
	interval time.Duration
	logger   *zap.Logger
	stopCh   chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  bool
	mu       sync.RWMutex
}

// NewCacheSweeper creates a sweeper over the given rate service. A
// non-positive interval falls back to DefaultSweepInterval.
func NewCacheSweeper(rates interfaces.RateService, interval time.Duration) *CacheSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CacheSweeper{
		rates:    rates,
		interval: interval,
		logger:   logger.Log,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep loop
func (s *CacheSweeper) Start() {
	s.logger.Info("Starting rate cache sweeper", zap.Duration("interval", s.interval))

	s.wg.Add(1)
	go s.run()
}

// Stop gracefully shuts down the sweeper
func (s *CacheSweeper) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return
		}
		s.stopped = true
		s.mu.Unlock()

		s.logger.Info("Stopping rate cache sweeper")
		close(s.stopCh)
		s.wg.Wait()
	})
}

func (s *CacheSweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := s.rates.RefreshCache(time.Now())
			if removed > 0 {
				s.logger.Info("swept expired rate cache entries", zap.Int("removed", removed))
			}
		case <-s.stopCh:
			return
		}
	}
}
