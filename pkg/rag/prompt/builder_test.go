package prompt

import (
	"strings"
	"testing"

	"assessment-advisor-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestBuildWithCandidates(t *testing.T) {
	candidates := []store.Document{
		{
			Name:            "Java Programming (Advanced Level)",
			URL:             "https://example.com/catalog/java-advanced",
			Content:         "Measures advanced knowledge of Java programming.",
			DurationMinutes: 30,
			RemoteTesting:   true,
			AdaptiveSupport: false,
			TestTypes:       []string{"Knowledge & Skills"},
		},
		{
			Name:    "Verify Numerical Reasoning",
			Content: "Adaptive cognitive ability test.",
		},
	}

	result := NewRecommendationBuilder("Need a Java test under 40 minutes", candidates).Build()

	assert.Contains(t, result, "<catalog_context>")
	assert.Contains(t, result, "</catalog_context>")
	assert.Contains(t, result, "<task>")
	assert.Contains(t, result, "<guidelines>")
	assert.Contains(t, result, "<user_question>")

	assert.Contains(t, result, "[1] Java Programming (Advanced Level)")
	assert.Contains(t, result, "[2] Verify Numerical Reasoning")
	assert.Contains(t, result, "URL: https://example.com/catalog/java-advanced")
	assert.Contains(t, result, "Duration: 30 minutes")
	assert.Contains(t, result, "Remote testing: yes | Adaptive: no")
	assert.Contains(t, result, "Test types: Knowledge & Skills")
	assert.Contains(t, result, "Need a Java test under 40 minutes")
}

func TestBuildWithoutCandidatesOmitsCatalogContext(t *testing.T) {
	result := NewRecommendationBuilder("anything", nil).Build()

	assert.NotContains(t, result, "<catalog_context>")
	assert.Contains(t, result, "<task>")
	assert.Contains(t, result, "<user_question>")
}

func TestBuildSectionOrder(t *testing.T) {
	candidates := []store.Document{{Name: "X", Content: "y"}}
	result := NewRecommendationBuilder("q", candidates).Build()

	catalogIdx := strings.Index(result, "<catalog_context>")
	taskIdx := strings.Index(result, "<task>")
	guidelinesIdx := strings.Index(result, "<guidelines>")
	questionIdx := strings.Index(result, "<user_question>")

	assert.True(t, catalogIdx < taskIdx, "catalog context must precede task")
	assert.True(t, taskIdx < guidelinesIdx, "task must precede guidelines")
	assert.True(t, guidelinesIdx < questionIdx, "guidelines must precede question")
}
