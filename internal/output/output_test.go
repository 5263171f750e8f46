package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/repofolio/repofolio/internal/model"
)

func sampleAnalysis() *model.Analysis {
	return &model.Analysis{
		Username: "devuser",
		Profile: model.Profile{
			Login:     "devuser",
			Name:      "Dev User",
			Bio:       "Backend engineer",
			Location:  "Berlin",
			Followers: 120,
		},
		Projects: []model.ScoredRepository{
			{
				Repository: model.Repository{
					Name:     "api-gateway",
					FullName: "devuser/api-gateway",
					Language: "Go",
					Stars:    245,
					Forks:    18,
					Topics:   []string{"api", "gateway"},
					HTMLURL:  "https://github.com/devuser/api-gateway",
					PushedAt: time.Now().Add(-48 * time.Hour),
				},
				TotalScore:           82,
				ExtractedDescription: "High-performance API gateway with plugin support.",
			},
			{
				Repository: model.Repository{
					Name:     "dotviz",
					FullName: "devuser/dotviz",
					Language: "Python",
					Stars:    31,
					HTMLURL:  "https://github.com/devuser/dotviz",
					PushedAt: time.Now().Add(-30 * 24 * time.Hour),
				},
				TotalScore: 54,
			},
		},
		Languages: model.LanguageReport{
			Languages: []model.LanguageStat{
				{Name: "Go", TotalBytes: 600000, RepoCount: 5, Percentage: 75, Proficiency: model.ProficiencyExpert},
				{Name: "Python", TotalBytes: 200000, RepoCount: 2, Percentage: 25, Proficiency: model.ProficiencyAdvanced},
			},
			TotalBytes:      800000,
			PrimaryLanguage: "Go",
			LanguageCount:   2,
		},
		Skills: []model.Skill{
			{Name: "Go", Category: "Backend Development", Proficiency: model.ProficiencyExpert, Percentage: 75},
			{Name: "Express.js", Category: "Backend Frameworks"},
		},
		Statistics: model.Statistics{
			TotalRepos:      12,
			OriginalRepos:   10,
			ForkedRepos:     2,
			TotalStars:      340,
			YearsActive:     5,
			AvgStarsPerRepo: 34.0,
			PrimaryLanguage: "Go",
			LanguageCount:   2,
		},
		GeneratedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("expected JSONFormatter for json")
	}
	if _, ok := NewFormatter(FormatMarkdown).(*MarkdownFormatter); !ok {
		t.Error("expected MarkdownFormatter for markdown")
	}
	if _, ok := NewFormatter(FormatTable).(*TableFormatter); !ok {
		t.Error("expected TableFormatter for table")
	}
	if _, ok := NewFormatter("bogus").(*TableFormatter); !ok {
		t.Error("expected TableFormatter fallback for unknown format")
	}
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Pretty: true}
	if err := f.Format(sampleAnalysis(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded model.Analysis
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Username != "devuser" {
		t.Errorf("expected username devuser, got %q", decoded.Username)
	}
	if len(decoded.Projects) != 2 {
		t.Errorf("expected 2 projects, got %d", len(decoded.Projects))
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(sampleAnalysis(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Dev User",
		"api-gateway",
		"High-performance API gateway",
		"Skills",
		"Backend Development",
		"12 repositories (10 original, 2 forks)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatterEmptyProjects(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Projects = nil

	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(analysis, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No projects passed scoring") {
		t.Errorf("expected empty-result message, got:\n%s", buf.String())
	}
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &MarkdownFormatter{}
	if err := f.Format(sampleAnalysis(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Dev User",
		"## Selected Projects",
		"### [api-gateway](https://github.com/devuser/api-gateway)",
		"## Skills",
		"- **Backend Development:** Go",
		"## Languages",
		"| Go | 75.0% | Expert | 5 |",
		"## GitHub Activity",
		"*Generated 2026-06-01*",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownFormatterPrefersSummaryOverBio(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Summary = "Seasoned backend developer with strong Go expertise."

	var buf bytes.Buffer
	if err := (&MarkdownFormatter{}).Format(analysis, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, analysis.Summary) {
		t.Error("expected generated summary in output")
	}
	if strings.Contains(out, "Backend engineer\n\n## Selected") {
		t.Error("bio should not appear when a summary exists")
	}
}
