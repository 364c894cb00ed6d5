package agents

import "strings"

// Keyword sets for routing. Matching is plain substring containment, not
// word-boundary matching: "express" contains "press" and routes to PRESS.
// That quirk is part of the routing contract and covered by tests.
var (
	pressKeywords = []string{
		"news", "article", "press", "media",
		"headline", "journalist", "report",
	}
	policeKeywords = []string{
		"fir", "complaint", "investigation",
		"arrest", "accused", "police",
	}
)

// Classify decides which agent should handle the message. PRESS keywords are
// checked first, POLICE second, and LAW is the fallback, so a message holding
// keywords from both sets always resolves to PRESS. Empty or whitespace-only
// input maps to LAW, the safe default.
func Classify(message string) Category {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return CategoryLaw
	}

	for _, kw := range pressKeywords {
		if strings.Contains(msg, kw) {
			return CategoryPress
		}
	}
	for _, kw := range policeKeywords {
		if strings.Contains(msg, kw) {
			return CategoryPolice
		}
	}
	return CategoryLaw
}
