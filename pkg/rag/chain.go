package rag

import (
	"context"
	"fmt"
	"log"
	"time"

	"assessment-advisor-be/internal/repository/unitofwork"
	"assessment-advisor-be/pkg/events"
	"assessment-advisor-be/pkg/llm"
	pktNats "assessment-advisor-be/pkg/nats"
	"assessment-advisor-be/pkg/rag/cache"
	"assessment-advisor-be/pkg/rag/prompt"
	"assessment-advisor-be/pkg/store"

	gocache "github.com/patrickmn/go-cache"
)

// Chain is the retrieval-augmented generation pipeline. Invoke takes a
// question and returns a generated recommendation.
type Chain interface {
	Invoke(ctx context.Context, question string) (string, error)
}

type chain struct {
	uowFactory  unitofwork.RepositoryFactory
	retriever   *Retriever
	llmProvider llm.LLMProvider
	answers     *cache.AnswerCache
	embedMemo   *gocache.Cache
	publisher   *pktNats.Publisher
	retrieval   RetrievalConfig
	logger      *log.Logger
}

// NewChain wires the pipeline. The chain is immutable after construction and
// safe for concurrent use.
func NewChain(
	uowFactory unitofwork.RepositoryFactory,
	retriever *Retriever,
	llmProvider llm.LLMProvider,
	answers *cache.AnswerCache,
	publisher *pktNats.Publisher,
	retrieval RetrievalConfig,
	logger *log.Logger,
) Chain {
	return &chain{
		uowFactory:  uowFactory,
		retriever:   retriever,
		llmProvider: llmProvider,
		answers:     answers,
		embedMemo:   gocache.New(5*time.Minute, 10*time.Minute),
		publisher:   publisher,
		retrieval:   retrieval,
		logger:      logger,
	}
}

func (c *chain) Invoke(ctx context.Context, question string) (string, error) {
	start := time.Now()

	if answer, ok := c.answers.Get(ctx, question); ok {
		c.logger.Printf("[INFO] Answer cache hit")
		c.emitServed(question, time.Since(start), true)
		return answer, nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	candidates, err := c.retrieve(ctx, uow, question)
	if err != nil {
		return "", fmt.Errorf("retrieval failed: %w", err)
	}

	promptText := prompt.NewRecommendationBuilder(question, candidates).Build()

	answer, err := c.llmProvider.Generate(ctx, promptText, llm.WithTemperature(0.3))
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	c.answers.Set(ctx, question, answer)
	c.emitServed(question, time.Since(start), false)

	return answer, nil
}

// retrieve runs the vector search, memoizing candidates per question for a
// few minutes so bursts of the same query do not re-embed.
func (c *chain) retrieve(ctx context.Context, uow unitofwork.UnitOfWork, question string) ([]store.Document, error) {
	memoKey := cache.Key(question)
	if cached, ok := c.embedMemo.Get(memoKey); ok {
		if docs, ok := cached.([]store.Document); ok {
			return docs, nil
		}
	}

	candidates, err := c.retriever.Execute(ctx, uow, question, c.retrieval)
	if err != nil {
		return nil, err
	}

	c.embedMemo.Set(memoKey, candidates, gocache.DefaultExpiration)
	return candidates, nil
}

func (c *chain) emitServed(question string, elapsed time.Duration, cached bool) {
	c.publisher.PublishAsync(events.NewEvent(events.TypeRecommendationServed, map[string]interface{}{
		"question_key": cache.Key(question),
		"duration_ms":  elapsed.Milliseconds(),
		"cache_hit":    cached,
	}))
}
