package service

import (
	"os"
	"path/filepath"
	"testing"

	"assessment-advisor-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `[
		{
			"slug": "java-programming-advanced",
			"name": "Java Programming (Advanced Level)",
			"url": "https://example.com/java",
			"description": "Advanced Java knowledge test.",
			"duration_minutes": 30,
			"remote_testing": true,
			"adaptive_support": false,
			"test_types": ["Knowledge & Skills"]
		}
	]`)

	is := &indexerService{catalogPath: path}

	records, err := is.loadCatalog()
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "java-programming-advanced", records[0].Slug)
	assert.Equal(t, 30, records[0].DurationMinutes)
	assert.True(t, records[0].RemoteTesting)
	assert.Equal(t, []string{"Knowledge & Skills"}, records[0].TestTypes)
}

func TestLoadCatalogRejectsEmptyAndBroken(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		is := &indexerService{catalogPath: "/nonexistent/catalog.json"}
		_, err := is.loadCatalog()
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		is := &indexerService{catalogPath: writeCatalog(t, `{not json`)}
		_, err := is.loadCatalog()
		assert.Error(t, err)
	})

	t.Run("empty array", func(t *testing.T) {
		is := &indexerService{catalogPath: writeCatalog(t, `[]`)}
		_, err := is.loadCatalog()
		assert.Error(t, err)
	})
}

func TestComposeDocument(t *testing.T) {
	doc := composeDocument(&entity.Assessment{
		Name:            "Verify Numerical Reasoning",
		Description:     "Adaptive cognitive ability test.",
		DurationMinutes: 18,
		RemoteTesting:   true,
		AdaptiveSupport: true,
		TestTypes:       []string{"Ability & Aptitude"},
	})

	assert.Contains(t, doc, "Assessment: Verify Numerical Reasoning")
	assert.Contains(t, doc, "Test types: Ability & Aptitude")
	assert.Contains(t, doc, "Duration: 18 minutes")
	assert.Contains(t, doc, "Remote testing: true")
	assert.Contains(t, doc, "Adaptive support: true")
	assert.Contains(t, doc, "Adaptive cognitive ability test.")
}

func TestComposeDocumentOmitsUnknownFields(t *testing.T) {
	doc := composeDocument(&entity.Assessment{
		Name:        "Bare Assessment",
		Description: "Just a description.",
	})

	assert.NotContains(t, doc, "Test types:")
	assert.NotContains(t, doc, "Duration:")
}

func TestRecordToEntity(t *testing.T) {
	record := CatalogRecord{
		Slug:            "sql-server-analyst",
		Name:            "SQL for Data Analysis",
		URL:             "https://example.com/sql",
		Description:     "SQL querying skill.",
		DurationMinutes: 30,
		AdaptiveSupport: true,
		TestTypes:       []string{"Knowledge & Skills"},
	}

	assessment := recordToEntity(record)

	assert.NotEqual(t, assessment.Id.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, record.Slug, assessment.Slug)
	assert.Equal(t, record.Name, assessment.Name)
	assert.Equal(t, record.TestTypes, assessment.TestTypes)
	assert.True(t, assessment.AdaptiveSupport)
	assert.False(t, assessment.CreatedAt.IsZero())
}
