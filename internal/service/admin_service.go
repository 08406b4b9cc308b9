package service

import (
	"context"
	"encoding/json"
	"fmt"

	"assessment-advisor-be/internal/dto"
	"assessment-advisor-be/internal/pkg/logger"
	"assessment-advisor-be/internal/repository/unitofwork"
	"assessment-advisor-be/pkg/events"
	pktNats "assessment-advisor-be/pkg/nats"
)

type IAdminService interface {
	// Reindex queues a re-embedding message for every known assessment and
	// returns how many were accepted. The embedding work happens async on the
	// consumer.
	Reindex(ctx context.Context) (int, error)

	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)

	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type adminService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	sysLogger        logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		sysLogger:        sysLogger,
	}
}

func (as *adminService) Reindex(ctx context.Context) (int, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	assessments, err := uow.AssessmentRepository().FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list assessments: %w", err)
	}

	accepted := 0
	for _, assessment := range assessments {
		payload, err := json.Marshal(dto.PublishEmbedAssessmentMessage{
			AssessmentId: assessment.Id,
		})
		if err != nil {
			return accepted, err
		}
		if err := as.publisherService.Publish(ctx, payload); err != nil {
			return accepted, fmt.Errorf("failed to queue assessment %q: %w", assessment.Slug, err)
		}
		accepted++
	}

	as.sysLogger.Info("admin", "Reindex queued", map[string]interface{}{
		"assessments": accepted,
	})
	as.eventPublisher.PublishAsync(events.NewEvent(events.TypeIndexRebuilt, map[string]interface{}{
		"assessments": accepted,
	}))

	return accepted, nil
}

func (as *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return as.sysLogger.GetLogs(level, limit, offset)
}

func (as *adminService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	assessments, err := uow.AssessmentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	embeddings, err := uow.AssessmentEmbeddingRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		Assessments: assessments,
		Embeddings:  embeddings,
	}, nil
}
