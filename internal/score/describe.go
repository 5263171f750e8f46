package score

import (
	"strings"
	"unicode/utf8"
)

// maxDescriptionLen caps extracted descriptions for display.
const maxDescriptionLen = 500

// ExtractDescription pulls the first prose paragraph out of a README:
// the first non-empty paragraph following the first heading, skipping
// badge and image lines. Returns "" when the README has no heading or
// the paragraph is empty.
func ExtractDescription(readmeText string) string {
	if readmeText == "" {
		return ""
	}

	lines := strings.Split(readmeText, "\n")

	// Find the first heading, ignoring everything before it.
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	var paragraph []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if len(paragraph) > 0 {
				break
			}
			continue
		}
		if isBadgeOrImageLine(trimmed) {
			if len(paragraph) > 0 {
				break
			}
			continue
		}
		// A new structural element ends the paragraph search.
		if strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "- ") ||
			strings.HasPrefix(trimmed, "* ") ||
			strings.HasPrefix(trimmed, "```") ||
			strings.HasPrefix(trimmed, ">") {
			break
		}

		paragraph = append(paragraph, trimmed)
	}

	result := strings.Join(paragraph, " ")
	if len(result) > maxDescriptionLen {
		// Back up to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := maxDescriptionLen
		for cut > 0 && !utf8.RuneStart(result[cut]) {
			cut--
		}
		result = result[:cut]
	}
	return result
}

func isBadgeOrImageLine(line string) bool {
	return strings.HasPrefix(line, "[![") ||
		strings.HasPrefix(line, "![") ||
		strings.HasPrefix(line, "<")
}
