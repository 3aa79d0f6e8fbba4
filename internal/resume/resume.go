// Package resume estimates skill proficiency from free-form resume text
// with keyword matching against the catalog's skill aliases.
package resume

import (
	"regexp"
	"strings"

	"github.com/abhisek/skillforge/internal/catalog"
)

// boostWords near-match seniority markers anywhere in the text.
var boostWords = map[string]bool{
	"senior":     true,
	"lead":       true,
	"expert":     true,
	"advanced":   true,
	"extensive":  true,
	"proficient": true,
	"strong":     true,
}

var wordRe = regexp.MustCompile(`\b\w+\b`)

// Extract scans text for known skill keywords and estimates a 1-10
// proficiency per matched skill. Mentioning a skill at all is worth a
// base level of 4; each additional distinct alias adds 1 up to 8, and
// any seniority word in the text adds 1 more up to 9.
func Extract(text string) map[string]float64 {
	if text == "" {
		return map[string]float64{}
	}

	lower := strings.ToLower(text)

	hasBoost := false
	for _, w := range wordRe.FindAllString(lower, -1) {
		if boostWords[w] {
			hasBoost = true
			break
		}
	}

	found := make(map[string]float64)
	for skill, aliases := range catalog.Aliases() {
		matched := 0
		for _, a := range aliases {
			if strings.Contains(lower, a) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		level := min(8, 4+matched-1)
		if hasBoost {
			level = min(9, level+1)
		}
		found[skill] = float64(level)
	}
	return found
}
