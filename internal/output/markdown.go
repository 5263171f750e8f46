package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/repofolio/repofolio/internal/model"
)

// MarkdownFormatter renders the analysis as a CV-style markdown document
type MarkdownFormatter struct{}

// Format outputs the analysis as markdown
func (f *MarkdownFormatter) Format(analysis *model.Analysis, w io.Writer) error {
	p := analysis.Profile

	fmt.Fprintf(w, "# %s\n\n", p.DisplayName())

	var contact []string
	if p.Location != "" {
		contact = append(contact, p.Location)
	}
	if p.Email != "" {
		contact = append(contact, p.Email)
	}
	if p.Blog != "" {
		contact = append(contact, p.Blog)
	}
	contact = append(contact, fmt.Sprintf("[github.com/%s](%s)", p.Login, p.ProfileURL))
	fmt.Fprintf(w, "%s\n\n", strings.Join(contact, " · "))

	if analysis.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", analysis.Summary)
	} else if p.Bio != "" {
		fmt.Fprintf(w, "%s\n\n", p.Bio)
	}

	f.writeProjects(analysis, w)
	f.writeSkills(analysis.Skills, w)
	f.writeLanguages(analysis.Languages, w)
	f.writeStatistics(analysis.Statistics, w)

	fmt.Fprintf(w, "*Generated %s*\n", analysis.GeneratedAt.Format("2006-01-02"))
	return nil
}

func (f *MarkdownFormatter) writeProjects(analysis *model.Analysis, w io.Writer) {
	if len(analysis.Projects) == 0 {
		return
	}

	fmt.Fprintln(w, "## Selected Projects")
	fmt.Fprintln(w)

	for _, p := range analysis.Projects {
		fmt.Fprintf(w, "### [%s](%s)\n\n", p.Name, p.HTMLURL)

		desc := p.ExtractedDescription
		if desc == "" {
			desc = p.Description
		}
		if desc != "" {
			fmt.Fprintf(w, "%s\n\n", desc)
		}

		var facts []string
		if p.Language != "" {
			facts = append(facts, p.Language)
		}
		if p.Stars > 0 {
			facts = append(facts, fmt.Sprintf("%d stars", p.Stars))
		}
		if p.Forks > 0 {
			facts = append(facts, fmt.Sprintf("%d forks", p.Forks))
		}
		if len(p.Topics) > 0 {
			facts = append(facts, strings.Join(p.Topics, ", "))
		}
		if len(facts) > 0 {
			fmt.Fprintf(w, "*%s*\n\n", strings.Join(facts, " · "))
		}
	}
}

func (f *MarkdownFormatter) writeSkills(skills []model.Skill, w io.Writer) {
	if len(skills) == 0 {
		return
	}

	fmt.Fprintln(w, "## Skills")
	fmt.Fprintln(w)

	byCategory := make(map[string][]string)
	var order []string
	for _, s := range skills {
		if _, ok := byCategory[s.Category]; !ok {
			order = append(order, s.Category)
		}
		byCategory[s.Category] = append(byCategory[s.Category], s.Name)
	}

	for _, category := range order {
		fmt.Fprintf(w, "- **%s:** %s\n", category, strings.Join(byCategory[category], ", "))
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeLanguages(report model.LanguageReport, w io.Writer) {
	if len(report.Languages) == 0 {
		return
	}

	fmt.Fprintln(w, "## Languages")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Language | Share | Proficiency | Repositories |")
	fmt.Fprintln(w, "|----------|-------|-------------|--------------|")
	for _, lang := range report.Languages {
		fmt.Fprintf(w, "| %s | %.1f%% | %s | %d |\n",
			lang.Name, lang.Percentage, lang.Proficiency, lang.RepoCount)
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeStatistics(stats model.Statistics, w io.Writer) {
	fmt.Fprintln(w, "## GitHub Activity")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- %d public repositories (%d original, %d forks)\n",
		stats.TotalRepos, stats.OriginalRepos, stats.ForkedRepos)
	fmt.Fprintf(w, "- %d stars earned, %.1f average per original repository\n",
		stats.TotalStars, stats.AvgStarsPerRepo)
	fmt.Fprintf(w, "- %d years active, %d repositories updated in the last year\n",
		stats.YearsActive, stats.RecentlyUpdated)
	fmt.Fprintf(w, "- %d followers\n", stats.Followers)
	fmt.Fprintln(w)
}
