package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"assessment-advisor-be/internal/pkg/logger"
	"assessment-advisor-be/internal/pkg/serverutils"
	"assessment-advisor-be/pkg/rag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

type stubChain struct {
	answer string
	err    error
	calls  atomic.Int32
}

func (c *stubChain) Invoke(ctx context.Context, question string) (string, error) {
	c.calls.Add(1)
	return c.answer, c.err
}

func newTestService(chain rag.Chain, factoryErr error, factoryCalls *atomic.Int32) IRecommendService {
	factory := func(ctx context.Context) (rag.Chain, error) {
		if factoryCalls != nil {
			factoryCalls.Add(1)
		}
		if factoryErr != nil {
			return nil, factoryErr
		}
		return chain, nil
	}
	return NewRecommendService(factory, noopLogger{}, nil)
}

func TestRecommendReturnsAnswerVerbatim(t *testing.T) {
	chain := &stubChain{answer: "  1. Java Programming (Advanced Level)\n"}
	svc := newTestService(chain, nil, nil)

	answer, err := svc.Recommend(context.Background(), "java test")

	require.NoError(t, err)
	assert.Equal(t, "  1. Java Programming (Advanced Level)\n", answer)
	assert.Equal(t, int32(1), chain.calls.Load())
}

func TestRecommendBlankQuestionNeverTouchesChain(t *testing.T) {
	var factoryCalls atomic.Int32
	svc := newTestService(&stubChain{answer: "x"}, nil, &factoryCalls)

	for _, question := range []string{"", "   ", "\n\t"} {
		_, err := svc.Recommend(context.Background(), question)

		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	}

	// Validation rejects before initialization, so the factory never ran.
	assert.Equal(t, int32(0), factoryCalls.Load())
}

func TestRecommendInitFailureIsSticky(t *testing.T) {
	var factoryCalls atomic.Int32
	svc := newTestService(nil, errors.New("failed to check vector store: connection refused"), &factoryCalls)

	for i := 0; i < 3; i++ {
		_, err := svc.Recommend(context.Background(), "anything")

		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 503, appErr.Status)
		assert.Equal(t, "Service Unavailable: Initialization failed: failed to check vector store: connection refused", appErr.Message)
	}

	// The failure is permanent for the process; no retry per request.
	assert.Equal(t, int32(1), factoryCalls.Load())
}

func TestRecommendChainErrorMapsToInternal(t *testing.T) {
	chain := &stubChain{err: errors.New("generation failed: gemini api error 429")}
	svc := newTestService(chain, nil, nil)

	_, err := svc.Recommend(context.Background(), "java test")

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
	// The provider error text stays internal.
	assert.NotContains(t, appErr.Message, "429")
}

func TestHealthTransitions(t *testing.T) {
	t.Run("uninitialized", func(t *testing.T) {
		svc := newTestService(&stubChain{answer: "a"}, nil, nil)

		status := svc.Health()
		assert.False(t, status.Ready)
		assert.False(t, status.Failed)
		assert.Empty(t, status.Reason)
	})

	t.Run("ready after first request", func(t *testing.T) {
		svc := newTestService(&stubChain{answer: "a"}, nil, nil)

		_, err := svc.Recommend(context.Background(), "q")
		require.NoError(t, err)

		status := svc.Health()
		assert.True(t, status.Ready)
		assert.False(t, status.Failed)
	})

	t.Run("failed after broken init", func(t *testing.T) {
		svc := newTestService(nil, errors.New("bad dsn"), nil)

		_, _ = svc.Recommend(context.Background(), "q")

		status := svc.Health()
		assert.False(t, status.Ready)
		assert.True(t, status.Failed)
		assert.Equal(t, "Initialization failed: bad dsn", status.Reason)
	})
}

func TestWarmup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var factoryCalls atomic.Int32
		svc := newTestService(&stubChain{answer: "a"}, nil, &factoryCalls)

		require.NoError(t, svc.Warmup(context.Background()))
		assert.True(t, svc.Health().Ready)

		// A later request reuses the warmed chain.
		_, err := svc.Recommend(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, int32(1), factoryCalls.Load())
	})

	t.Run("failure surfaces and sticks", func(t *testing.T) {
		svc := newTestService(nil, errors.New("no catalog"), nil)

		assert.Error(t, svc.Warmup(context.Background()))
		assert.True(t, svc.Health().Failed)
	})
}
