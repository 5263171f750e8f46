package summary

import (
	"strings"
	"testing"

	"github.com/repofolio/repofolio/internal/model"
)

func TestBuildPrompt(t *testing.T) {
	analysis := &model.Analysis{
		Username: "devuser",
		Profile: model.Profile{
			Login: "devuser",
			Name:  "Dev User",
			Bio:   "Backend engineer",
		},
		Statistics: model.Statistics{
			YearsActive:     5,
			OriginalRepos:   12,
			TotalStars:      340,
			PrimaryLanguage: "Go",
			LanguageCount:   4,
		},
		Projects: []model.ScoredRepository{
			{
				Repository:           model.Repository{Name: "api-gateway", Language: "Go", Stars: 245},
				TotalScore:           82,
				ExtractedDescription: "High-performance API gateway.",
			},
		},
		Skills: []model.Skill{
			{Name: "Go", Category: "Backend Development"},
			{Name: "PostgreSQL", Category: "Databases"},
		},
	}

	prompt := BuildPrompt(analysis)

	for _, want := range []string{
		"Dev User",
		"Backend engineer",
		"Years active: 5",
		"api-gateway",
		"High-performance API gateway.",
		"Go, PostgreSQL",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptCapsProjects(t *testing.T) {
	analysis := &model.Analysis{Profile: model.Profile{Login: "devuser"}}
	for i := 0; i < 10; i++ {
		analysis.Projects = append(analysis.Projects, model.ScoredRepository{
			Repository: model.Repository{Name: "repo", Language: "Go"},
		})
	}

	prompt := BuildPrompt(analysis)
	if got := strings.Count(prompt, "- repo"); got != maxProjectsInPrompt {
		t.Errorf("expected %d project lines, got %d", maxProjectsInPrompt, got)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", "test-key", "")
	if c.model != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, c.model)
	}

	c = NewClient("https://example.com/v1/", "test-key", "gpt-4o")
	if c.model != "gpt-4o" {
		t.Errorf("expected gpt-4o, got %q", c.model)
	}
}
