package resume

import (
	"math"
	"strings"
)

// ReferenceSkills is the fixed ordered keyword list resumes are scored
// against. Matched skills are reported in this order.
var ReferenceSkills = []string{
	"python", "java", "c", "html", "css", "javascript",
	"node", "express", "flask", "django", "mongodb",
	"mysql", "data analysis", "machine learning", "git", "github",
}

// Score scans the text for each reference skill as a case-insensitive
// substring (no tokenization: "java" matches inside "javascript") and
// returns the match percentage rounded to the nearest integer plus the
// matched skill names.
func Score(text string) (int, []string) {
	return ScoreAgainst(text, ReferenceSkills)
}

// ScoreAgainst scores text against an arbitrary reference list.
func ScoreAgainst(text string, skills []string) (int, []string) {
	if len(skills) == 0 {
		return 0, nil
	}

	lower := strings.ToLower(text)

	matched := make([]string, 0, len(skills))
	for _, skill := range skills {
		if strings.Contains(lower, skill) {
			matched = append(matched, skill)
		}
	}

	score := int(math.Round(100 * float64(len(matched)) / float64(len(skills))))
	return score, matched
}
