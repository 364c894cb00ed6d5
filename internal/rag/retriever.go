// Package rag provides retrieval of corpus passages used to ground agent
// prompts. Retrieval is a best-effort collaborator: any failure yields an
// empty context string, never an error.
package rag

import "context"

// Corpus ids known to the system, one per specialized agent.
const (
	CorpusLaw    = "law_db"
	CorpusPolice = "police_db"
	CorpusPress  = "press_db"
)

// Retriever returns the topK most relevant passages for a query from the named
// corpus, concatenated with blank lines. Implementations must not fail: no
// match, an unknown corpus and backend errors all produce "".
type Retriever interface {
	Retrieve(ctx context.Context, query, corpusID string, topK int) string
}
