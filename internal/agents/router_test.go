package agents

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Category
	}{
		{"law default", "what is section 420?", CategoryLaw},
		{"press keyword", "write a news article about the flood", CategoryPress},
		{"police keyword", "how do I file an FIR?", CategoryPolice},
		{"press beats police", "police report on fir", CategoryPress},
		{"case insensitive", "LATEST HEADLINE please", CategoryPress},
		{"substring match", "I want to express my view", CategoryPress},
		{"accused routes to police", "rights of the accused person", CategoryPolice},
		{"empty message", "", CategoryLaw},
		{"whitespace only", "   \t\n", CategoryLaw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.message))
		})
	}
}
