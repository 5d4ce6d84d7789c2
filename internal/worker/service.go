package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vladislavprovich/telegram-integration/pkg/cache"
	"github.com/vladislavprovich/telegram-integration/pkg/client/telegram"
)

// Job types understood by the pool.
const (
	JobSendMessage    = "send_message"
	JobGetMessages    = "get_messages"
	JobSearchMessages = "search_messages"
)

// Config contains worker pool settings.
type Config struct {
	MaxConcurrency    int           `json:"max_concurrency"`
	RequestTimeout    time.Duration `json:"request_timeout"`
	CacheTimeout      time.Duration `json:"cache_timeout"`
	CircuitBreakerMax int           `json:"circuit_breaker_max"`
	MetricsEnabled    bool          `json:"metrics_enabled"`
}

// JobRequest represents one unit of Telegram work submitted to the pool.
type JobRequest struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	ChatID   telegram.ChatID `json:"chat_id"`
	Message  string          `json:"message,omitempty"`
	Query    string          `json:"query,omitempty"`
	Page     int             `json:"page,omitempty"`
	PageSize int             `json:"page_size,omitempty"`
	Limit    int             `json:"limit,omitempty"`

	resultChan chan *JobResponse
}

// JobResponse is the outcome of a processed job.
type JobResponse struct {
	ID          string        `json:"id"`
	Success     bool          `json:"success"`
	Result      interface{}   `json:"result,omitempty"`
	Error       string        `json:"error,omitempty"`
	ProcessedAt time.Time     `json:"processed_at"`
	Duration    time.Duration `json:"duration"`
}

// Metrics contains pool performance counters.
type Metrics struct {
	RequestsProcessed  int64     `json:"requests_processed"`
	RequestsSucceeded  int64     `json:"requests_succeeded"`
	RequestsFailed     int64     `json:"requests_failed"`
	ActiveJobs         int64     `json:"active_jobs"`
	QueueSize          int64     `json:"queue_size"`
	CircuitBreakerOpen bool      `json:"circuit_breaker_open"`
	LastUpdated        time.Time `json:"last_updated"`
}

// Pool is the interface exposed by the worker service.
type Pool interface {
	// Start spins up the worker goroutines.
	Start(ctx context.Context) error

	// Stop drains the pool and waits for in-flight jobs.
	Stop(ctx context.Context) error

	// SubmitJob queues a job and blocks until its result is available.
	SubmitJob(ctx context.Context, req *JobRequest) (*JobResponse, error)

	// GetMetrics returns current pool counters.
	GetMetrics() *Metrics

	// IsHealthy reports whether the pool is accepting work.
	IsHealthy() bool
}

// Service processes Telegram API jobs with bounded concurrency, a
// cache-aside read path and a circuit breaker that sheds load after
// consecutive failures. It does not retry: a failed request surfaces to the
// submitter, who owns the retry decision.
type Service struct {
	logger *slog.Logger
	client telegram.Client
	cache  cache.Service
	config Config

	jobQueue chan *JobRequest
	workers  []*worker
	wg       sync.WaitGroup
	mu       sync.RWMutex

	started bool

	failureCount    int64
	circuitOpen     bool
	circuitOpenTime time.Time

	metrics atomic.Value // holds *Metrics

	ctx    context.Context
	cancel context.CancelFunc
}

type worker struct {
	id int
}

func NewService(
	logger *slog.Logger,
	client telegram.Client,
	cacheService cache.Service,
	config Config,
) *Service {
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 10
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = 30 * time.Second
	}
	if config.CacheTimeout == 0 {
		config.CacheTimeout = 5 * time.Minute
	}
	if config.CircuitBreakerMax <= 0 {
		config.CircuitBreakerMax = 10
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Service{
		logger:   logger,
		client:   client,
		cache:    cacheService,
		config:   config,
		jobQueue: make(chan *JobRequest, config.MaxConcurrency*2),
		workers:  make([]*worker, config.MaxConcurrency),
		ctx:      ctx,
		cancel:   cancel,
	}

	s.metrics.Store(&Metrics{
		LastUpdated: time.Now(),
	})

	return s
}

// Start implements Pool.
func (s *Service) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("starting worker pool", "max_concurrency", s.config.MaxConcurrency)

	for i := 0; i < s.config.MaxConcurrency; i++ {
		w := &worker{id: i}
		s.workers[i] = w

		s.wg.Add(1)
		go s.workerLoop(w)
	}

	if s.config.MetricsEnabled {
		s.wg.Add(1)
		go s.metricsLoop()
	}

	s.started = true
	return nil
}

// Stop implements Pool.
func (s *Service) Stop(_ context.Context) error {
	s.logger.Info("stopping worker pool")

	s.mu.Lock()
	s.started = false
	s.mu.Unlock()

	s.cancel()
	close(s.jobQueue)
	s.wg.Wait()

	s.logger.Info("worker pool stopped")
	return nil
}

// SubmitJob implements Pool.
func (s *Service) SubmitJob(ctx context.Context, req *JobRequest) (*JobResponse, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("job ID is required")
	}

	if s.isCircuitOpen() {
		return &JobResponse{
			ID:          req.ID,
			Success:     false,
			Error:       "circuit breaker is open",
			ProcessedAt: time.Now(),
		}, nil
	}

	req.resultChan = make(chan *JobResponse, 1)

	select {
	case s.jobQueue <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.config.RequestTimeout):
		return nil, fmt.Errorf("timeout queuing job")
	}

	select {
	case result := <-req.resultChan:
		return result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.config.RequestTimeout):
		return nil, fmt.Errorf("timeout waiting for result")
	}
}

// GetMetrics implements Pool.
func (s *Service) GetMetrics() *Metrics {
	if metrics, ok := s.metrics.Load().(*Metrics); ok {
		return metrics
	}
	return &Metrics{}
}

// IsHealthy implements Pool.
func (s *Service) IsHealthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.isCircuitOpenLocked() {
		return false
	}

	return s.started
}

func (s *Service) workerLoop(w *worker) {
	defer s.wg.Done()

	s.logger.Debug("worker started", "worker_id", w.id)

	for {
		select {
		case job, ok := <-s.jobQueue:
			if !ok {
				s.logger.Debug("worker stopping, queue closed", "worker_id", w.id)
				return
			}

			s.processJob(w, job)

		case <-s.ctx.Done():
			s.logger.Debug("worker stopping, context cancelled", "worker_id", w.id)
			return
		}
	}
}

func (s *Service) processJob(w *worker, job *JobRequest) {
	startTime := time.Now()

	s.logger.Debug("processing job", "worker_id", w.id, "job_id", job.ID, "type", job.Type)

	result := &JobResponse{
		ID:          job.ID,
		ProcessedAt: time.Now(),
	}

	s.updateMetrics(func(m *Metrics) {
		m.ActiveJobs++
		m.RequestsProcessed++
	})

	defer func() {
		result.Duration = time.Since(startTime)

		s.updateMetrics(func(m *Metrics) {
			m.ActiveJobs--
			if result.Success {
				m.RequestsSucceeded++
			} else {
				m.RequestsFailed++
			}
		})

		select {
		case job.resultChan <- result:
		case <-s.ctx.Done():
		case <-time.After(time.Second):
			s.logger.Error("failed to send result, channel timeout", "job_id", job.ID)
		}
	}()

	// Read-type jobs go through the cache first.
	cacheKey := ""
	if job.Type != JobSendMessage {
		cacheKey = fmt.Sprintf("telegram_job_%s_%s_%s_%d", job.Type, job.ChatID, job.Query, job.Page)
		if cached, err := s.cache.Get(s.ctx, cacheKey); err == nil {
			s.logger.Debug("cache hit", "job_id", job.ID, "cache_key", cacheKey)
			result.Success = true
			result.Result = cached
			return
		}
	}

	var (
		out any
		err error
	)
	switch job.Type {
	case JobSendMessage:
		out, err = s.processSendMessage(job)
	case JobGetMessages:
		out, err = s.processGetMessages(job)
	case JobSearchMessages:
		out, err = s.processSearchMessages(job)
	default:
		err = fmt.Errorf("unknown job type: %s", job.Type)
	}

	if err != nil {
		result.Success = false
		result.Error = err.Error()
		s.logger.Error("job processing failed", "job_id", job.ID, "error", err)

		if atomic.AddInt64(&s.failureCount, 1) >= int64(s.config.CircuitBreakerMax) {
			s.openCircuitBreaker()
		}
		return
	}

	result.Success = true
	result.Result = out

	if cacheKey != "" {
		_ = s.cache.Set(s.ctx, cacheKey, out, s.config.CacheTimeout)
	}

	atomic.StoreInt64(&s.failureCount, 0)
	s.closeCircuitBreaker()
}

func (s *Service) processSendMessage(job *JobRequest) (any, error) {
	ctx, cancel := context.WithTimeout(s.ctx, s.config.RequestTimeout)
	defer cancel()

	return s.client.SendMessage(ctx, &telegram.SendMessageRequest{
		ChatID:  job.ChatID,
		Message: job.Message,
	})
}

func (s *Service) processGetMessages(job *JobRequest) (any, error) {
	ctx, cancel := context.WithTimeout(s.ctx, s.config.RequestTimeout)
	defer cancel()

	return s.client.GetMessages(ctx, &telegram.GetMessagesRequest{
		ChatID:   job.ChatID,
		Page:     job.Page,
		PageSize: job.PageSize,
	})
}

func (s *Service) processSearchMessages(job *JobRequest) (any, error) {
	ctx, cancel := context.WithTimeout(s.ctx, s.config.RequestTimeout)
	defer cancel()

	return s.client.SearchMessages(ctx, &telegram.SearchMessagesRequest{
		ChatID: job.ChatID,
		Query:  job.Query,
		Limit:  job.Limit,
	})
}

func (s *Service) metricsLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			open := s.isCircuitOpen()
			s.updateMetrics(func(m *Metrics) {
				m.LastUpdated = time.Now()
				m.QueueSize = int64(len(s.jobQueue))
				m.CircuitBreakerOpen = open
			})
		case <-s.ctx.Done():
			return
		}
	}
}

// updateMetrics swaps in a modified copy of the current metrics snapshot.
func (s *Service) updateMetrics(updateFn func(*Metrics)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.GetMetrics()
	updated := *current
	updateFn(&updated)
	s.metrics.Store(&updated)
}

func (s *Service) isCircuitOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isCircuitOpenLocked()
}

func (s *Service) isCircuitOpenLocked() bool {
	if !s.circuitOpen {
		return false
	}

	// The circuit resets after a cool-down period.
	if time.Since(s.circuitOpenTime) > time.Minute {
		return false
	}

	return true
}

func (s *Service) openCircuitBreaker() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.circuitOpen {
		s.circuitOpen = true
		s.circuitOpenTime = time.Now()
		s.logger.Warn("circuit breaker opened due to failures")
	}
}

func (s *Service) closeCircuitBreaker() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.circuitOpen {
		s.circuitOpen = false
		s.logger.Info("circuit breaker closed")
	}
}
