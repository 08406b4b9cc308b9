package prompt

import (
	"fmt"
	"strings"

	"assessment-advisor-be/pkg/store"
)

// RecommendationBuilder assembles the generation prompt from retrieved
// catalog candidates.
type RecommendationBuilder struct {
	question   string
	candidates []store.Document
}

func NewRecommendationBuilder(question string, candidates []store.Document) *RecommendationBuilder {
	return &RecommendationBuilder{
		question:   question,
		candidates: candidates,
	}
}

func (b *RecommendationBuilder) Build() string {
	var prompt strings.Builder

	b.writeCatalogContext(&prompt)
	b.writeTask(&prompt)
	b.writeGuidelines(&prompt)
	b.writeUserQuestion(&prompt)

	return prompt.String()
}

func (b *RecommendationBuilder) writeCatalogContext(prompt *strings.Builder) {
	if len(b.candidates) == 0 {
		return
	}

	prompt.WriteString("<catalog_context>\n")
	for i, doc := range b.candidates {
		prompt.WriteString(fmt.Sprintf("[%d] %s\n", i+1, doc.Name))
		if doc.URL != "" {
			prompt.WriteString(fmt.Sprintf("URL: %s\n", doc.URL))
		}
		if doc.DurationMinutes > 0 {
			prompt.WriteString(fmt.Sprintf("Duration: %d minutes\n", doc.DurationMinutes))
		}
		prompt.WriteString(fmt.Sprintf("Remote testing: %s | Adaptive: %s\n",
			yesNo(doc.RemoteTesting), yesNo(doc.AdaptiveSupport)))
		if len(doc.TestTypes) > 0 {
			prompt.WriteString(fmt.Sprintf("Test types: %s\n", strings.Join(doc.TestTypes, ", ")))
		}
		prompt.WriteString(doc.Content)
		prompt.WriteString("\n\n")
	}
	prompt.WriteString("</catalog_context>\n\n")
}

func (b *RecommendationBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are an assessment advisor helping a hiring professional choose suitable assessments from the catalog above.\n")
	prompt.WriteString("Recommend the assessments that best match the role, skills and constraints described in the question.\n")
	prompt.WriteString("</task>\n\n")
}

func (b *RecommendationBuilder) writeGuidelines(prompt *strings.Builder) {
	prompt.WriteString("<guidelines>\n")
	prompt.WriteString("1. Base your recommendation strictly on the catalog context provided\n")
	prompt.WriteString("2. Name each recommended assessment and explain in one or two sentences why it fits\n")
	prompt.WriteString("3. Mention duration, remote-testing and adaptive support when they matter for the question\n")
	prompt.WriteString("4. Prefer a short ranked list over prose when several assessments fit\n")
	prompt.WriteString("5. If nothing in the catalog context fits, say so honestly instead of inventing an assessment\n")
	prompt.WriteString("</guidelines>\n\n")
}

func (b *RecommendationBuilder) writeUserQuestion(prompt *strings.Builder) {
	prompt.WriteString("<user_question>\n")
	prompt.WriteString(b.question)
	prompt.WriteString("\n</user_question>\n\n")
	prompt.WriteString("Now provide your recommendation based on the catalog context:")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
