package service

import (
	"context"
	"strings"
	"sync"

	"assessment-advisor-be/internal/constant"
	"assessment-advisor-be/internal/pkg/logger"
	"assessment-advisor-be/internal/pkg/mailer"
	"assessment-advisor-be/internal/pkg/serverutils"
	"assessment-advisor-be/pkg/rag"
)

// ChainFactory builds the RAG chain. It may be slow: the first construction
// builds the vector store when the embeddings table is empty.
type ChainFactory func(ctx context.Context) (rag.Chain, error)

// HealthStatus is the tri-state initialization status exposed by /health.
type HealthStatus struct {
	Ready  bool
	Failed bool
	Reason string
}

type IRecommendService interface {
	// Recommend validates the question, initializes the chain on first use
	// and returns the generated recommendation verbatim.
	Recommend(ctx context.Context, question string) (string, error)

	// Health reports the stored initialization state without probing the
	// chain itself.
	Health() HealthStatus

	// Warmup forces chain initialization now (eager-init deployments).
	Warmup(ctx context.Context) error
}

type recommendService struct {
	chainFactory ChainFactory
	sysLogger    logger.ILogger
	emailService mailer.IEmailService

	initOnce sync.Once

	mu      sync.RWMutex // guards chain and initErr against concurrent Health reads
	chain   rag.Chain
	initErr error
}

func NewRecommendService(
	chainFactory ChainFactory,
	sysLogger logger.ILogger,
	emailService mailer.IEmailService,
) IRecommendService {
	return &recommendService{
		chainFactory: chainFactory,
		sysLogger:    sysLogger,
		emailService: emailService,
	}
}

// initialize runs the chain factory exactly once per process. A failure is
// sticky: every later call sees the stored reason and nothing retries.
func (rs *recommendService) initialize(ctx context.Context) {
	rs.initOnce.Do(func() {
		rs.sysLogger.Info("recommend", "Initializing RAG chain", nil)

		chain, err := rs.chainFactory(ctx)

		rs.mu.Lock()
		rs.chain = chain
		rs.initErr = err
		rs.mu.Unlock()

		if err != nil {
			rs.sysLogger.Error("recommend", "RAG chain initialization failed", map[string]interface{}{
				"error": err.Error(),
			})
			if rs.emailService != nil {
				// Best effort; the 503 path does not depend on mail.
				_ = rs.emailService.SendInitFailureAlert(err.Error())
			}
			return
		}

		rs.sysLogger.Info("recommend", "RAG chain ready", nil)
	})
}

func (rs *recommendService) Warmup(ctx context.Context) error {
	rs.initialize(ctx)
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.initErr
}

func (rs *recommendService) Recommend(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", serverutils.NewInvalidInput(constant.MsgInvalidBody)
	}

	rs.initialize(ctx)

	rs.mu.RLock()
	chain, initErr := rs.chain, rs.initErr
	rs.mu.RUnlock()

	if initErr != nil {
		return "", serverutils.NewServiceUnavailable(initFailureReason(initErr))
	}
	if chain == nil {
		// Unreachable when initErr is nil, kept as a guard.
		return "", serverutils.NewServiceUnavailable("RAG components not ready")
	}

	answer, err := chain.Invoke(ctx, question)
	if err != nil {
		rs.sysLogger.Error("recommend", "Chain invocation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", serverutils.NewInternal(constant.MsgInternalError, err)
	}

	return answer, nil
}

func (rs *recommendService) Health() HealthStatus {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	if rs.initErr != nil {
		return HealthStatus{
			Failed: true,
			Reason: initFailureReason(rs.initErr),
		}
	}
	return HealthStatus{Ready: rs.chain != nil}
}

// initFailureReason is the stored, user-visible failure reason. It names the
// failing stage but not the raw error chain.
func initFailureReason(err error) string {
	msg := err.Error()
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		msg = msg[:idx]
	}
	return "Initialization failed: " + msg
}
