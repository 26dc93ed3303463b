package service

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/S-Borna/Intelliplan/internal/model"
)

// Skill taxonomy for extraction and categorization. Order matters: category
// score ties resolve to the earliest entry.
var skillCategories = []struct {
	Name   string
	Skills []string
}{
	{"backend", []string{"python", "java", "c#", ".net", "node.js", "go", "rust", "php", "ruby", "scala", "kotlin"}},
	{"frontend", []string{"react", "angular", "vue", "svelte", "typescript", "javascript", "html", "css", "next.js"}},
	{"data", []string{"sql", "python", "r", "spark", "hadoop", "etl", "power bi", "tableau", "pandas", "numpy"}},
	{"devops", []string{"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "ci/cd", "jenkins", "github actions"}},
	{"mobile", []string{"swift", "kotlin", "react native", "flutter", "ios", "android"}},
	{"ai_ml", []string{"machine learning", "deep learning", "nlp", "pytorch", "tensorflow", "llm", "computer vision"}},
	{"management", []string{"projektledning", "scrum", "agile", "pm", "product owner", "scrum master"}},
	{"design", []string{"ux", "ui", "figma", "sketch", "design system", "user research"}},
}

// Priority keywords, checked in this order; first hit wins.
var priorityKeywords = []struct {
	Priority model.RequestPriority
	Keywords []string
}{
	{model.PriorityUrgent, []string{"akut", "omedelbart", "brådskande", "critical", "urgent", "asap", "idag"}},
	{model.PriorityHigh, []string{"snabbt", "prioritet", "viktig", "snarast", "hög prioritet", "important"}},
	{model.PriorityMedium, []string{"planerad", "kommande", "nästa månad"}},
	{model.PriorityLow, []string{"framtida", "eventuellt", "utforska", "kanske"}},
}

var nicheSkills = map[string]bool{
	"rust":            true,
	"scala":           true,
	"computer vision": true,
	"deep learning":   true,
	"flutter":         true,
}

var (
	experienceRe = regexp.MustCompile(`(\d+)\+?\s*(?:års?|years?)\s*(?:erfarenhet|experience)`)
	headcountRe  = regexp.MustCompile(`(\d+)\s*(?:konsulter|consultants|personer|people|resources)`)
)

type AnalysisResult struct {
	Summary          string                `json:"summary"`
	Category         string                `json:"category"`
	ComplexityScore  float64               `json:"complexity_score"`
	ExtractedSkills  []string              `json:"extracted_skills"`
	DetectedPriority model.RequestPriority `json:"detected_priority"`
	Insights         []string              `json:"insights"`
}

// ComponentScores carries the five feasibility sub-scores (0-100 each).
type ComponentScores struct {
	Availability float64
	Skills       float64
	Budget       float64
	Timeline     float64
	Compliance   float64
}

type AnalyzerServiceInterface interface {
	Analyze(title, description string, skills []string) AnalysisResult
	Recommendations(scores ComponentScores, overall model.FeasibilityRating) []string
}

// AnalyzerService is the rule-based request analysis engine. It is pure:
// every method is a function of its inputs only.
type AnalyzerService struct{}

func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

func (s *AnalyzerService) Analyze(title, description string, skills []string) AnalysisResult {
	text := strings.ToLower(title + " " + description)

	detected := s.extractSkills(text, skills)
	category := s.categorize(detected, text)
	priority := s.detectPriority(text)
	complexity := s.calculateComplexity(text, detected)
	summary := s.generateSummary(title, detected, category)
	insights := s.generateInsights(text, detected, complexity)

	return AnalysisResult{
		Summary:          summary,
		Category:         category,
		ComplexityScore:  complexity,
		ExtractedSkills:  detected,
		DetectedPriority: priority,
		Insights:         insights,
	}
}

func (s *AnalyzerService) extractSkills(text string, provided []string) []string {
	found := map[string]bool{}
	for _, skill := range provided {
		if skill = strings.ToLower(strings.TrimSpace(skill)); skill != "" {
			found[skill] = true
		}
	}

	for _, category := range skillCategories {
		for _, skill := range category.Skills {
			if strings.Contains(text, skill) {
				found[skill] = true
			}
		}
	}

	// "5 years experience" / "5 års erfarenhet" becomes a synthetic skill
	if m := experienceRe.FindStringSubmatch(text); m != nil {
		found[fmt.Sprintf("%s+ years experience", m[1])] = true
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

func (s *AnalyzerService) categorize(skills []string, text string) string {
	bestCategory := ""
	bestScore := 0

	for _, category := range skillCategories {
		score := 0
		for _, skill := range skills {
			for _, catSkill := range category.Skills {
				if skill == catSkill {
					score++
					break
				}
			}
		}
		if score > bestScore {
			bestScore = score
			bestCategory = category.Name
		}
	}

	if bestScore == 0 {
		// Fallback: generic hints in the raw text
		if containsAny(text, "utvecklare", "developer", "programmera", "kod") {
			return "development"
		}
		if containsAny(text, "test", "qa", "quality") {
			return "testing"
		}
		if containsAny(text, "projekt", "project", "leda", "manage") {
			return "management"
		}
		return "general"
	}

	return bestCategory
}

func (s *AnalyzerService) detectPriority(text string) model.RequestPriority {
	for _, entry := range priorityKeywords {
		if containsAny(text, entry.Keywords...) {
			return entry.Priority
		}
	}
	return model.PriorityMedium
}

func (s *AnalyzerService) calculateComplexity(text string, skills []string) float64 {
	score := 0.3

	score += math.Min(float64(len(skills))*0.08, 0.3)

	wordCount := len(strings.Fields(text))
	if wordCount > 200 {
		score += 0.15
	} else if wordCount > 100 {
		score += 0.1
	}

	if m := headcountRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 2 {
			score += 0.15
		}
	}

	for _, skill := range skills {
		if nicheSkills[skill] {
			score += 0.1
			break
		}
	}

	return math.Min(math.Round(score*100)/100, 1.0)
}

func (s *AnalyzerService) generateSummary(title string, skills []string, category string) string {
	skillsStr := "general skills"
	if len(skills) > 0 {
		top := skills
		if len(top) > 5 {
			top = top[:5]
		}
		skillsStr = strings.Join(top, ", ")
	}

	clause := "Focused skill requirement."
	if len(skills) > 3 {
		clause = "Complex multi-skill requirement."
	}

	return fmt.Sprintf("Request for %s resources with focus on %s. %s. %s",
		category, skillsStr, strings.TrimRight(title, "."), clause)
}

func (s *AnalyzerService) generateInsights(text string, skills []string, complexity float64) []string {
	var insights []string

	if complexity > 0.7 {
		insights = append(insights, "High complexity — consider splitting into multiple assignments")
	}
	if complexity < 0.3 {
		insights = append(insights, "Straightforward request — quick matching likely possible")
	}

	if len(skills) > 5 {
		insights = append(insights, "Many required skills — a senior/lead profile may be needed")
	}

	var niche []string
	for _, skill := range skills {
		if nicheSkills[skill] {
			niche = append(niche, skill)
		}
	}
	if len(niche) > 0 {
		insights = append(insights, fmt.Sprintf("Niche skills detected (%s) — limited pool expected", strings.Join(niche, ", ")))
	}

	if containsAny(text, "remote", "distans") {
		insights = append(insights, "Remote work possible — expands candidate pool")
	}

	if containsAny(text, "akut", "urgent", "asap", "brådskande") {
		insights = append(insights, "Urgent request — prioritize immediate availability matching")
	}

	if len(insights) == 0 {
		insights = append(insights, "Standard request — proceed with normal matching workflow")
	}

	return insights
}

// Recommendations turns the five component scores and the overall rating
// into advisory strings via independent threshold checks.
func (s *AnalyzerService) Recommendations(scores ComponentScores, overall model.FeasibilityRating) []string {
	var recommendations []string

	if overall == model.RatingHigh {
		recommendations = append(recommendations, "Strong match — recommend proceeding with top candidates immediately")
	} else if overall == model.RatingNotFeasible {
		recommendations = append(recommendations, "Cannot fulfill as specified — present alternatives to customer")
	}

	if scores.Availability < 40 {
		recommendations = append(recommendations, "Low availability — suggest alternative start dates or part-time arrangements")
	}
	if scores.Skills < 50 {
		recommendations = append(recommendations, "Partial skills match — consider consultants with growth potential or training")
	}
	if scores.Budget < 40 {
		recommendations = append(recommendations, "Budget constraint — discuss rate adjustments or scope reduction with customer")
	}
	if scores.Compliance < 60 {
		recommendations = append(recommendations, "Compliance concerns — review contract terms and regulatory requirements")
	}
	if scores.Timeline < 50 {
		recommendations = append(recommendations, "Tight timeline — consider phased staffing approach")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Balanced assessment — proceed with standard matching process")
	}

	return recommendations
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
