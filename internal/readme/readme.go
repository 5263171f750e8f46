// Package readme provides heuristic completeness scoring for README documents.
package readme

import (
	"regexp"
	"strings"

	"github.com/repofolio/repofolio/internal/model"
)

var (
	titleRe      = regexp.MustCompile(`(?m)^#\s+\S`)
	badgeRe      = regexp.MustCompile(`\[!\[[^\]]*\]\([^)]*\)\]|!\[[^\]]*\]\([^)]*(badge|shields\.io)[^)]*\)`)
	screenshotRe = regexp.MustCompile(`(?i)!\[[^\]]*\]\([^)]+\.(png|jpe?g|gif|svg|webp)[^)]*\)`)
)

// Score point values for the individual signals.
const (
	titlePoints        = 10
	descriptionPoints  = 15
	installationPoints = 15
	usagePoints        = 15
	codeBlockPoints    = 15
	badgePoints        = 5
	screenshotPoints   = 10
	licensePoints      = 5
	contributingPoints = 5
	lengthBonus        = 5

	descriptionMinWords = 20
	lengthBonusWords    = 200
	longBonusWords      = 500
)

// Analyze computes the quality signals and score for a README text.
// Empty input yields a zero-valued result with HasReadme false.
func Analyze(text string) model.ReadmeQuality {
	if strings.TrimSpace(text) == "" {
		return model.ReadmeQuality{}
	}

	lower := strings.ToLower(text)
	words := len(strings.Fields(text))
	lines := strings.Count(text, "\n") + 1

	q := model.ReadmeQuality{
		HasReadme:       true,
		HasTitle:        titleRe.MatchString(text),
		HasDescription:  words > descriptionMinWords,
		HasInstallation: containsAny(lower, "install", "setup", "getting started"),
		HasUsage:        containsAny(lower, "usage", "example", "how to use"),
		HasCodeBlocks:   strings.Contains(text, "```"),
		HasBadges:       badgeRe.MatchString(text),
		HasScreenshots:  screenshotRe.MatchString(text),
		HasLicense:      containsAny(lower, "license", "licence"),
		HasContributing: strings.Contains(lower, "contribut"),
		LineCount:       lines,
		WordCount:       words,
	}

	q.Score = score(q)
	return q
}

func score(q model.ReadmeQuality) int {
	s := 0
	if q.HasTitle {
		s += titlePoints
	}
	if q.HasDescription {
		s += descriptionPoints
	}
	if q.HasInstallation {
		s += installationPoints
	}
	if q.HasUsage {
		s += usagePoints
	}
	if q.HasCodeBlocks {
		s += codeBlockPoints
	}
	if q.HasBadges {
		s += badgePoints
	}
	if q.HasScreenshots {
		s += screenshotPoints
	}
	if q.HasLicense {
		s += licensePoints
	}
	if q.HasContributing {
		s += contributingPoints
	}
	if q.WordCount > lengthBonusWords {
		s += lengthBonus
	}
	if q.WordCount > longBonusWords {
		s += lengthBonus
	}
	return min(s, 100)
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
