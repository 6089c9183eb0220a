package worker

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
)

// PriceSource - the single gateway call the poller needs.
type PriceSource interface {
	BitcoinPrice(ctx context.Context) (decimal.Decimal, error)
}

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "price-feed",
		Timeout: 2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// PriceWorker - polls the BTC price once a minute and caches the last good
// value for the landing, wallet and ticker views. Replaces the old client's
// per-component polling loops with one coordinated poller whose in-flight
// request is bounded and cancelled on shutdown.
type PriceWorker struct {
	Source       PriceSource
	Breaker      *gobreaker.CircuitBreaker
	Limiter      *rate.Limiter
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
	PollTimeout  time.Duration

	mu        sync.RWMutex
	lastPrice decimal.Decimal
	lastAt    time.Time
}

// NewPriceWorker - constructor for the price poller.
func NewPriceWorker(source PriceSource) *PriceWorker {
	return &PriceWorker{
		Source:       source,
		Breaker:      InitCircuitBreaker(),
		Limiter:      rate.NewLimiter(rate.Every(30*time.Second), 1),
		QuitChan:     make(chan struct{}),
		PollInterval: time.Minute,
		PollTimeout:  10 * time.Second,
	}
}

// Start - runs the worker in the background.
func (w *PriceWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - stops the worker and waits for the in-flight poll.
func (w *PriceWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - the polling loop. One immediate poll, then once per interval.
func (w *PriceWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	w.Poll(ctx)

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("PriceWorker signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

// Poll - one guarded price fetch.
func (w *PriceWorker) Poll(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}
	if !w.Limiter.Allow() {
		return
	}

	pollCtx, cancel := context.WithTimeout(ctx, w.PollTimeout)
	defer cancel()

	price, err := w.Breaker.Execute(func() (interface{}, error) {
		return w.Source.BitcoinPrice(pollCtx)
	})
	if err != nil {
		logger.Error("Error fetching BTC price", err)
		return
	}

	w.mu.Lock()
	w.lastPrice = price.(decimal.Decimal)
	w.lastAt = time.Now()
	w.mu.Unlock()
}

// LastPrice - the cached price; ok is false before the first good poll.
func (w *PriceWorker) LastPrice() (decimal.Decimal, time.Time, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastPrice, w.lastAt, !w.lastAt.IsZero()
}
