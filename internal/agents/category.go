// Package agents implements the specialized persona agents, the keyword
// router, the judge and the reflection reviewer. Agents differ only in
// persona data (prompt template and retrieval corpus), not in control flow.
package agents

// Category identifies one of the specialized agents.
type Category string

const (
	CategoryLaw    Category = "LAW"
	CategoryPolice Category = "POLICE"
	CategoryPress  Category = "PRESS"
)

// Categories lists all agent categories. Routing priority lives in Classify,
// not in this ordering.
var Categories = []Category{CategoryLaw, CategoryPolice, CategoryPress}

// AgentKey is the external identifier used in voting verdicts and responses.
func (c Category) AgentKey() string {
	switch c {
	case CategoryPolice:
		return "police_agent"
	case CategoryPress:
		return "press_agent"
	default:
		return "law_agent"
	}
}

// CategoryFromAgentKey resolves a verdict winner key back to a category.
func CategoryFromAgentKey(key string) (Category, bool) {
	switch key {
	case "law_agent":
		return CategoryLaw, true
	case "police_agent":
		return CategoryPolice, true
	case "press_agent":
		return CategoryPress, true
	}
	return "", false
}
