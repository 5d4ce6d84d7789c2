package worker_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/telegram-integration/internal/worker"
	"github.com/vladislavprovich/telegram-integration/pkg/cache"
	"github.com/vladislavprovich/telegram-integration/pkg/client/telegram"
)

// mockTelegramClient mocks the three operations the pool dispatches. The
// embedded interface satisfies the rest; calling an unmocked method panics,
// which is exactly what a test should do.
type mockTelegramClient struct {
	mock.Mock
	telegram.Client
}

func (m *mockTelegramClient) SendMessage(ctx context.Context, req *telegram.SendMessageRequest) (any, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}

func (m *mockTelegramClient) GetMessages(ctx context.Context, req *telegram.GetMessagesRequest) (any, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}

func (m *mockTelegramClient) SearchMessages(ctx context.Context, req *telegram.SearchMessagesRequest) (any, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}

func createTestService(client telegram.Client, config worker.Config) *worker.Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return worker.NewService(logger, client, cache.NewMemory(), config)
}

func createDefaultConfig() worker.Config {
	return worker.Config{
		MaxConcurrency:    10,
		RequestTimeout:    2 * time.Second,
		CacheTimeout:      time.Minute,
		CircuitBreakerMax: 5,
		MetricsEnabled:    true,
	}
}

func TestService_HighConcurrencySendMessage(t *testing.T) {
	config := createDefaultConfig()
	config.MaxConcurrency = 20

	client := &mockTelegramClient{}
	client.On("SendMessage", mock.Anything, mock.Anything).Return(
		map[string]any{"id": float64(1)}, nil)

	service := createTestService(client, config)

	ctx := context.Background()
	require.NoError(t, service.Start(ctx))
	defer service.Stop(ctx)

	numRequests := 50
	responses := make(chan *worker.JobResponse, numRequests)
	submitErrs := make(chan error, numRequests)

	var wg sync.WaitGroup
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			resp, err := service.SubmitJob(ctx, &worker.JobRequest{
				ID:      fmt.Sprintf("job_%d", id),
				Type:    worker.JobSendMessage,
				ChatID:  telegram.ChatID(fmt.Sprintf("%d", id%10)),
				Message: fmt.Sprintf("message %d", id),
			})
			if err != nil {
				submitErrs <- err
				return
			}
			responses <- resp
		}(i)
	}
	wg.Wait()
	close(responses)
	close(submitErrs)

	successCount := 0
	for resp := range responses {
		if resp.Success {
			successCount++
		}
	}
	assert.Equal(t, numRequests, successCount, "all jobs should succeed")
	assert.Empty(t, submitErrs)

	metrics := service.GetMetrics()
	assert.Equal(t, int64(numRequests), metrics.RequestsProcessed)
	assert.Equal(t, int64(numRequests), metrics.RequestsSucceeded)
	assert.Equal(t, int64(0), metrics.RequestsFailed)
}

func TestService_CacheAsideReadPath(t *testing.T) {
	client := &mockTelegramClient{}
	client.On("GetMessages", mock.Anything, mock.Anything).Return(
		[]any{map[string]any{"id": float64(1), "text": "cached soon"}}, nil).Once()

	service := createTestService(client, createDefaultConfig())

	ctx := context.Background()
	require.NoError(t, service.Start(ctx))
	defer service.Stop(ctx)

	req := func(id string) *worker.JobRequest {
		return &worker.JobRequest{
			ID:     id,
			Type:   worker.JobGetMessages,
			ChatID: telegram.ChatID("200"),
			Page:   1,
		}
	}

	first, err := service.SubmitJob(ctx, req("read_1"))
	require.NoError(t, err)
	require.True(t, first.Success, "first read should reach the API: %s", first.Error)

	second, err := service.SubmitJob(ctx, req("read_2"))
	require.NoError(t, err)
	require.True(t, second.Success)
	assert.Equal(t, first.Result, second.Result)

	// The Once() expectation proves the second read never hit the client.
	client.AssertNumberOfCalls(t, "GetMessages", 1)
}

func TestService_SendMessagesAreNeverCached(t *testing.T) {
	client := &mockTelegramClient{}
	client.On("SendMessage", mock.Anything, mock.Anything).Return("sent", nil)

	service := createTestService(client, createDefaultConfig())

	ctx := context.Background()
	require.NoError(t, service.Start(ctx))
	defer service.Stop(ctx)

	for i := 0; i < 2; i++ {
		resp, err := service.SubmitJob(ctx, &worker.JobRequest{
			ID:      fmt.Sprintf("send_%d", i),
			Type:    worker.JobSendMessage,
			ChatID:  telegram.ChatID("200"),
			Message: "same message",
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
	}

	client.AssertNumberOfCalls(t, "SendMessage", 2)
}

func TestService_CircuitBreakerOpensAfterFailures(t *testing.T) {
	config := createDefaultConfig()
	config.CircuitBreakerMax = 3

	client := &mockTelegramClient{}
	client.On("SendMessage", mock.Anything, mock.Anything).Return(
		nil, errors.New("upstream down"))

	service := createTestService(client, config)

	ctx := context.Background()
	require.NoError(t, service.Start(ctx))
	defer service.Stop(ctx)

	for i := 0; i < config.CircuitBreakerMax; i++ {
		resp, err := service.SubmitJob(ctx, &worker.JobRequest{
			ID:      fmt.Sprintf("fail_%d", i),
			Type:    worker.JobSendMessage,
			ChatID:  telegram.ChatID("200"),
			Message: "doomed",
		})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "upstream down")
	}

	resp, err := service.SubmitJob(ctx, &worker.JobRequest{
		ID:      "shed",
		Type:    worker.JobSendMessage,
		ChatID:  telegram.ChatID("200"),
		Message: "shed me",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "circuit breaker is open", resp.Error)
	assert.False(t, service.IsHealthy())
}

func TestService_UnknownJobType(t *testing.T) {
	client := &mockTelegramClient{}
	service := createTestService(client, createDefaultConfig())

	ctx := context.Background()
	require.NoError(t, service.Start(ctx))
	defer service.Stop(ctx)

	resp, err := service.SubmitJob(ctx, &worker.JobRequest{
		ID:   "odd",
		Type: "set_wallpaper",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "unknown job type")
}

func TestService_SubmitJobRequiresID(t *testing.T) {
	service := createTestService(&mockTelegramClient{}, createDefaultConfig())

	_, err := service.SubmitJob(context.Background(), &worker.JobRequest{
		Type: worker.JobSendMessage,
	})
	assert.Error(t, err)
}

func TestService_HealthFollowsLifecycle(t *testing.T) {
	service := createTestService(&mockTelegramClient{}, createDefaultConfig())

	assert.False(t, service.IsHealthy(), "not healthy before Start")

	ctx := context.Background()
	require.NoError(t, service.Start(ctx))
	assert.True(t, service.IsHealthy())

	require.NoError(t, service.Stop(ctx))
	assert.False(t, service.IsHealthy(), "not healthy after Stop")
}
