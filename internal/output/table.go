package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/repofolio/repofolio/internal/format"
	"github.com/repofolio/repofolio/internal/model"
)

// TableFormatter formats the analysis as a terminal table
type TableFormatter struct{}

// hyperlink creates a clickable terminal hyperlink using OSC 8
// Format: \033]8;;URL\033\\TEXT\033]8;;\033\\
func hyperlink(text, url string) string {
	// Only use hyperlinks if stdout is a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// Format outputs the ranked projects as a table with a profile header and
// a statistics footer
func (f *TableFormatter) Format(analysis *model.Analysis, w io.Writer) error {
	f.printHeader(analysis, w)

	if len(analysis.Projects) == 0 {
		fmt.Fprintln(w, "No projects passed scoring. Try lowering min_score in the config.")
	} else {
		f.printProjects(analysis.Projects, w)
	}

	f.printSkills(analysis.Skills, w)
	f.printFooter(analysis, w)
	return nil
}

func (f *TableFormatter) printHeader(analysis *model.Analysis, w io.Writer) {
	p := analysis.Profile
	fmt.Fprintf(w, "%s (%s)\n", color.New(color.Bold).Sprint(p.DisplayName()), p.Login)
	if p.Bio != "" {
		fmt.Fprintln(w, p.Bio)
	}

	var facts []string
	if p.Company != "" {
		facts = append(facts, p.Company)
	}
	if p.Location != "" {
		facts = append(facts, p.Location)
	}
	facts = append(facts, fmt.Sprintf("%d followers", p.Followers))
	fmt.Fprintln(w, strings.Join(facts, " | "))

	if analysis.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", analysis.Summary)
	}
	fmt.Fprintln(w)
}

func (f *TableFormatter) printProjects(projects []model.ScoredRepository, w io.Writer) {
	// Column widths
	const (
		colRank     = 4
		colScore    = 5
		colName     = 24
		colLanguage = 12
		colStars    = 6
		colDesc     = 44
	)

	// Header
	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %-*s  %-*s  %s\n",
		colRank, "Rank",
		colScore, "Score",
		colName, "Project",
		colLanguage, "Language",
		colStars, "Stars",
		colDesc, "Description",
		"Pushed")
	fmt.Fprintln(w, strings.Repeat("-", colRank+colScore+colName+colLanguage+colStars+colDesc+18))

	for i, p := range projects {
		name, nameWidth := format.TruncateToWidth(p.Name, colName)
		linkedName := hyperlink(name, p.HTMLURL)
		linkedName = format.PadRight(linkedName, nameWidth, colName)

		lang := p.Language
		if lang == "" {
			lang = "-"
		}
		lang, langWidth := format.TruncateToWidth(lang, colLanguage)

		desc := p.ExtractedDescription
		if desc == "" {
			desc = p.Description
		}
		desc, descWidth := format.TruncateToWidth(desc, colDesc)

		scoreStr := format.PadRight(colorScore(p.TotalScore), len(fmt.Sprint(p.TotalScore)), colScore)

		fmt.Fprintf(w, "%-*d  %s  %s  %s  %-*d  %s  %s\n",
			colRank, i+1,
			scoreStr,
			linkedName,
			format.PadRight(lang, langWidth, colLanguage),
			colStars, p.Stars,
			format.PadRight(desc, descWidth, colDesc),
			format.FormatAge(time.Since(p.PushedAt)),
		)
	}
}

func (f *TableFormatter) printSkills(skills []model.Skill, w io.Writer) {
	if len(skills) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Skills"))

	// Preserve merge order within each category; categories appear in
	// first-seen order.
	byCategory := make(map[string][]string)
	var order []string
	for _, s := range skills {
		if _, ok := byCategory[s.Category]; !ok {
			order = append(order, s.Category)
		}
		name := s.Name
		if s.Proficiency != "" {
			name = fmt.Sprintf("%s (%s)", s.Name, s.Proficiency)
		}
		byCategory[s.Category] = append(byCategory[s.Category], name)
	}

	for _, category := range order {
		fmt.Fprintf(w, "  %-22s %s\n", category+":", strings.Join(byCategory[category], ", "))
	}
}

func (f *TableFormatter) printFooter(analysis *model.Analysis, w io.Writer) {
	stats := analysis.Statistics

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintf(w, "  %d repositories (%d original, %d forks) | %d stars | active %d years\n",
		stats.TotalRepos, stats.OriginalRepos, stats.ForkedRepos, stats.TotalStars, stats.YearsActive)
	if stats.PrimaryLanguage != "" {
		fmt.Fprintf(w, "  primary language %s of %d | avg %.1f stars per original repo\n",
			stats.PrimaryLanguage, stats.LanguageCount, stats.AvgStarsPerRepo)
	}

	if len(analysis.Errors) > 0 {
		fmt.Fprintf(w, "\n  %s %d warnings during analysis (run with -v for details)\n",
			color.YellowString("!"), len(analysis.Errors))
	}
}

func colorScore(score int) string {
	switch {
	case score >= 70:
		return color.GreenString("%d", score)
	case score >= 50:
		return color.CyanString("%d", score)
	case score >= 30:
		return color.YellowString("%d", score)
	default:
		return color.WhiteString("%d", score)
	}
}
