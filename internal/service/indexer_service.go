package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"assessment-advisor-be/internal/constant"
	"assessment-advisor-be/internal/entity"
	"assessment-advisor-be/internal/pkg/logger"
	"assessment-advisor-be/internal/repository/specification"
	"assessment-advisor-be/internal/repository/unitofwork"
	"assessment-advisor-be/pkg/embedding"
	"assessment-advisor-be/pkg/utils"

	"github.com/google/uuid"
)

const (
	// ~300 tokens per chunk keeps well inside embedding context limits.
	chunkSize    = 1200
	chunkOverlap = 150
)

// CatalogRecord is one entry in the catalog data file.
type CatalogRecord struct {
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes"`
	RemoteTesting   bool     `json:"remote_testing"`
	AdaptiveSupport bool     `json:"adaptive_support"`
	TestTypes       []string `json:"test_types"`
}

type IIndexerService interface {
	// EnsureIndex builds the vector store when it is empty. Called during
	// chain initialization; a populated store makes this a no-op.
	EnsureIndex(ctx context.Context) error

	// Reindex loads the catalog file, upserts every assessment and rebuilds
	// its embeddings. Returns the number of assessments indexed.
	Reindex(ctx context.Context) (int, error)

	// ReindexAssessment rebuilds the embeddings of a single assessment.
	ReindexAssessment(ctx context.Context, assessmentId uuid.UUID) error
}

type indexerService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	catalogPath       string
	sysLogger         logger.ILogger
}

func NewIndexerService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	catalogPath string,
	sysLogger logger.ILogger,
) IIndexerService {
	return &indexerService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		catalogPath:       catalogPath,
		sysLogger:         sysLogger,
	}
}

func (is *indexerService) EnsureIndex(ctx context.Context) error {
	uow := is.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.AssessmentEmbeddingRepository().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check vector store: %w", err)
	}
	if count > 0 {
		is.sysLogger.Info("indexer", "Vector store already populated", map[string]interface{}{
			"embeddings": count,
		})
		return nil
	}

	is.sysLogger.Info("indexer", "Vector store empty, building from catalog", map[string]interface{}{
		"catalog": is.catalogPath,
	})
	_, err = is.Reindex(ctx)
	return err
}

func (is *indexerService) Reindex(ctx context.Context) (int, error) {
	records, err := is.loadCatalog()
	if err != nil {
		return 0, err
	}

	uow := is.uowFactory.NewUnitOfWork(ctx)

	indexed := 0
	for _, record := range records {
		assessment := recordToEntity(record)
		if err := uow.AssessmentRepository().Upsert(ctx, assessment); err != nil {
			return indexed, fmt.Errorf("failed to upsert assessment %q: %w", record.Slug, err)
		}

		if err := is.embedAssessment(ctx, assessment); err != nil {
			return indexed, err
		}
		indexed++
	}

	is.sysLogger.Info("indexer", "Catalog indexed", map[string]interface{}{
		"assessments": indexed,
	})
	return indexed, nil
}

func (is *indexerService) ReindexAssessment(ctx context.Context, assessmentId uuid.UUID) error {
	uow := is.uowFactory.NewUnitOfWork(ctx)

	assessment, err := uow.AssessmentRepository().FindOne(ctx, specification.ByID{ID: assessmentId})
	if err != nil {
		return fmt.Errorf("failed to load assessment %s: %w", assessmentId, err)
	}
	if assessment == nil {
		return fmt.Errorf("assessment not found: %s", assessmentId)
	}

	return is.embedAssessment(ctx, assessment)
}

// embedAssessment chunks the assessment document, generates embeddings and
// swaps the old rows for the new ones in one transaction.
func (is *indexerService) embedAssessment(ctx context.Context, assessment *entity.Assessment) error {
	content := composeDocument(assessment)
	chunks := utils.SplitText(content, chunkSize, chunkOverlap)

	newEmbeddings := make([]*entity.AssessmentEmbedding, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := is.embeddingProvider.Generate(chunk, constant.EmbeddingTaskDocument)
		if err != nil {
			return fmt.Errorf("failed to embed chunk %d of %q: %w", i, assessment.Slug, err)
		}

		newEmbeddings = append(newEmbeddings, &entity.AssessmentEmbedding{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			AssessmentId:   assessment.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	uow := is.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.AssessmentEmbeddingRepository().DeleteByAssessmentId(ctx, assessment.Id); err != nil {
		return fmt.Errorf("failed to delete old embeddings for %q: %w", assessment.Slug, err)
	}
	if err := uow.AssessmentEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
		return fmt.Errorf("failed to store embeddings for %q: %w", assessment.Slug, err)
	}

	return uow.Commit()
}

func (is *indexerService) loadCatalog() ([]CatalogRecord, error) {
	data, err := os.ReadFile(is.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", is.catalogPath, err)
	}

	var records []CatalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", is.catalogPath, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no assessments", is.catalogPath)
	}
	return records, nil
}

func recordToEntity(record CatalogRecord) *entity.Assessment {
	return &entity.Assessment{
		Id:              uuid.New(),
		Slug:            record.Slug,
		Name:            record.Name,
		URL:             record.URL,
		Description:     record.Description,
		DurationMinutes: record.DurationMinutes,
		RemoteTesting:   record.RemoteTesting,
		AdaptiveSupport: record.AdaptiveSupport,
		TestTypes:       record.TestTypes,
		CreatedAt:       time.Now(),
	}
}

// composeDocument flattens an assessment into the text that gets embedded.
func composeDocument(assessment *entity.Assessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Assessment: %s\n", assessment.Name)
	if len(assessment.TestTypes) > 0 {
		fmt.Fprintf(&b, "Test types: %s\n", strings.Join(assessment.TestTypes, ", "))
	}
	if assessment.DurationMinutes > 0 {
		fmt.Fprintf(&b, "Duration: %d minutes\n", assessment.DurationMinutes)
	}
	fmt.Fprintf(&b, "Remote testing: %t\nAdaptive support: %t\n\n", assessment.RemoteTesting, assessment.AdaptiveSupport)
	b.WriteString(assessment.Description)
	return b.String()
}
