package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Borna/Intelliplan/internal/model"
)

func TestAnalyzeUrgentSwedishRequest(t *testing.T) {
	s := NewAnalyzerService()

	result := s.Analyze(
		"Akut behov av Python-utvecklare",
		"Vi behöver 3 konsulter med Docker och Kubernetes som kan börja omedelbart.",
		nil,
	)

	assert.Equal(t, model.PriorityUrgent, result.DetectedPriority)
	assert.Contains(t, result.ExtractedSkills, "python")
	assert.Contains(t, result.ExtractedSkills, "docker")
	assert.Contains(t, result.ExtractedSkills, "kubernetes")

	// 3 konsulter and several detected skills push complexity well past base.
	assert.Greater(t, result.ComplexityScore, 0.6)
	assert.LessOrEqual(t, result.ComplexityScore, 1.0)

	assert.Contains(t, result.Insights, "Urgent request — prioritize immediate availability matching")
}

func TestAnalyzePriorityDefaultsToMedium(t *testing.T) {
	s := NewAnalyzerService()

	result := s.Analyze("Ny plattform", "Vi bygger en ny plattform i Java.", nil)

	assert.Equal(t, model.PriorityMedium, result.DetectedPriority)
}

func TestAnalyzePriorityOrderUrgentBeatsHigh(t *testing.T) {
	s := NewAnalyzerService()

	// Both an urgent and a high keyword present; the urgent tier wins.
	result := s.Analyze("Viktig uppgift", "Detta är akut och måste lösas snabbt.", nil)

	assert.Equal(t, model.PriorityUrgent, result.DetectedPriority)
}

func TestAnalyzeExperienceBecomesSyntheticSkill(t *testing.T) {
	s := NewAnalyzerService()

	result := s.Analyze("Java-konsult", "Krav: 5 års erfarenhet av Java.", nil)

	assert.Contains(t, result.ExtractedSkills, "5+ years experience")
	assert.Contains(t, result.ExtractedSkills, "java")
}

func TestAnalyzeProvidedSkillsNormalized(t *testing.T) {
	s := NewAnalyzerService()

	result := s.Analyze("Uppdrag", "Kort beskrivning.", []string{"  React ", "TYPESCRIPT", ""})

	assert.Contains(t, result.ExtractedSkills, "react")
	assert.Contains(t, result.ExtractedSkills, "typescript")
	assert.NotContains(t, result.ExtractedSkills, "")
}

func TestAnalyzeCategorizeByDominantSkills(t *testing.T) {
	s := NewAnalyzerService()

	result := s.Analyze("Driftuppdrag", "Miljön kör i molnet.", []string{"docker", "kubernetes", "terraform"})

	assert.Equal(t, "devops", result.Category)
}

func TestAnalyzeCategorizeTextFallback(t *testing.T) {
	s := NewAnalyzerService()

	// No taxonomy skill in the text, but "test" triggers the hint fallback.
	result := s.Analyze("QA-insats", "Manuell testning av systemet inom QA.", nil)

	assert.Equal(t, "testing", result.Category)
}

func TestAnalyzeComplexityCappedAtOne(t *testing.T) {
	s := NewAnalyzerService()

	// Long text, large headcount, a niche skill and many skills at once.
	long := strings.Repeat("beskrivning av uppdraget ", 110)
	result := s.Analyze(
		"Stort program",
		long+" Vi söker 5 konsulter inom rust, scala, python, docker och kubernetes.",
		[]string{"rust", "scala", "python", "docker", "kubernetes"},
	)

	assert.GreaterOrEqual(t, result.ComplexityScore, 0.85)
	assert.LessOrEqual(t, result.ComplexityScore, 1.0)
	assert.Contains(t, result.Insights, "High complexity — consider splitting into multiple assignments")
}

func TestAnalyzeNicheSkillInsight(t *testing.T) {
	s := NewAnalyzerService()

	result := s.Analyze("Specialist", "Vi behöver kompetens inom flutter.", nil)

	found := false
	for _, insight := range result.Insights {
		if strings.HasPrefix(insight, "Niche skills detected") {
			found = true
			assert.Contains(t, insight, "flutter")
		}
	}
	assert.True(t, found, "expected a niche skill insight, got %v", result.Insights)
}

func TestAnalyzeSummaryMentionsCategoryAndSkills(t *testing.T) {
	s := NewAnalyzerService()

	result := s.Analyze("Backendutveckling", "Tjänster i Python och Go.", []string{"python", "go"})

	require.NotEmpty(t, result.Summary)
	assert.Contains(t, result.Summary, "backend")
	assert.Contains(t, result.Summary, "python")
	assert.Contains(t, result.Summary, "Backendutveckling")
}

func TestRecommendationsBalanced(t *testing.T) {
	s := NewAnalyzerService()

	recs := s.Recommendations(ComponentScores{
		Availability: 80,
		Skills:       80,
		Budget:       80,
		Timeline:     80,
		Compliance:   80,
	}, model.RatingMedium)

	assert.Equal(t, []string{"Balanced assessment — proceed with standard matching process"}, recs)
}

func TestRecommendationsHighRatingLeadsList(t *testing.T) {
	s := NewAnalyzerService()

	recs := s.Recommendations(ComponentScores{
		Availability: 90,
		Skills:       90,
		Budget:       90,
		Timeline:     90,
		Compliance:   90,
	}, model.RatingHigh)

	require.NotEmpty(t, recs)
	assert.Equal(t, "Strong match — recommend proceeding with top candidates immediately", recs[0])
}

func TestRecommendationsAccumulatePerWeakScore(t *testing.T) {
	s := NewAnalyzerService()

	recs := s.Recommendations(ComponentScores{
		Availability: 30,
		Skills:       40,
		Budget:       30,
		Timeline:     40,
		Compliance:   50,
	}, model.RatingNotFeasible)

	assert.Len(t, recs, 6)
	assert.Equal(t, "Cannot fulfill as specified — present alternatives to customer", recs[0])
	assert.Contains(t, recs, "Tight timeline — consider phased staffing approach")
}
