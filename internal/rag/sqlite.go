package rag

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"

	_ "github.com/glebarez/go-sqlite"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/logger"
)

// SQLiteRetriever serves passages from a local SQLite database. The database
// is opened lazily on first use; if opening fails the retriever degrades to
// returning empty context for every query.
type SQLiteRetriever struct {
	path string

	once    sync.Once
	db      *sql.DB
	initErr error
}

// NewSQLiteRetriever creates a retriever backed by the database at path.
func NewSQLiteRetriever(path string) *SQLiteRetriever {
	return &SQLiteRetriever{path: path}
}

func (r *SQLiteRetriever) init() {
	r.db, r.initErr = sql.Open("sqlite", "file:"+r.path+"?_busy_timeout=10000")
	if r.initErr != nil {
		logger.L.Warn("sqlite open failed; retrieval disabled", "path", r.path, "error", r.initErr)
		return
	}
	if _, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS passages (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        corpus_id TEXT NOT NULL,
        content TEXT NOT NULL
    );`); err != nil {
		r.initErr = err
		logger.L.Warn("sqlite table creation failed; retrieval disabled", "error", err)
		return
	}
	logger.L.Info("corpus database ready", "path", r.path)
}

// Retrieve scores every passage in the corpus by keyword overlap with the
// query and returns the topK best matches joined with blank lines. Any failure
// or absence of matches yields "".
func (r *SQLiteRetriever) Retrieve(ctx context.Context, query, corpusID string, topK int) string {
	if strings.TrimSpace(query) == "" || corpusID == "" {
		return ""
	}
	if topK < 1 {
		topK = 1
	}

	r.once.Do(r.init)
	if r.initErr != nil {
		return ""
	}

	rows, err := r.db.QueryContext(ctx, `SELECT content FROM passages WHERE corpus_id = ?;`, corpusID)
	if err != nil {
		logger.L.Warn("passage query failed", "corpus", corpusID, "error", err)
		return ""
	}
	defer rows.Close()

	terms := queryTerms(query)
	type scored struct {
		content string
		score   int
	}
	var candidates []scored
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			continue
		}
		if s := overlap(terms, content); s > 0 {
			candidates = append(candidates, scored{content: content, score: s})
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > topK {
		candidates = candidates[:topK]
	}

	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = c.content
	}
	return strings.Join(parts, "\n\n")
}

// InsertPassages stores passages under a corpus id. Used by the ingest command.
func (r *SQLiteRetriever) InsertPassages(ctx context.Context, corpusID string, passages []string) (int, error) {
	r.once.Do(r.init)
	if r.initErr != nil {
		return 0, r.initErr
	}
	inserted := 0
	for _, p := range passages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx, `INSERT INTO passages (corpus_id, content) VALUES (?, ?);`, corpusID, p); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// queryTerms lowercases the query and splits it into distinct word tokens.
func queryTerms(query string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, t := range strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(t) > 2 {
			terms[t] = struct{}{}
		}
	}
	return terms
}

// overlap counts how many distinct query terms appear in the passage.
func overlap(terms map[string]struct{}, content string) int {
	lower := strings.ToLower(content)
	n := 0
	for t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}
