// Command ingest loads text documents into the retrieval corpus database.
// Files are split into paragraph passages and stored under a corpus id:
//
//	ingest -db corpus.db -corpus law_db docs/ipc.txt docs/crpc.txt
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/logger"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/rag"
)

func main() {
	dbPath := flag.String("db", "corpus.db", "path to the corpus database")
	corpusID := flag.String("corpus", "", "corpus id (law_db, police_db or press_db)")
	flag.Parse()

	switch *corpusID {
	case rag.CorpusLaw, rag.CorpusPolice, rag.CorpusPress:
	default:
		logger.L.Error("unknown corpus id", "corpus", *corpusID)
		os.Exit(1)
	}
	if flag.NArg() == 0 {
		logger.L.Error("no input files given")
		os.Exit(1)
	}

	retriever := rag.NewSQLiteRetriever(*dbPath)
	ctx := context.Background()

	total := 0
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.L.Error("failed to read file", "path", path, "error", err)
			os.Exit(1)
		}
		passages := splitPassages(string(data))
		n, err := retriever.InsertPassages(ctx, *corpusID, passages)
		if err != nil {
			logger.L.Error("failed to insert passages", "path", path, "error", err)
			os.Exit(1)
		}
		logger.L.Info("file ingested", "path", path, "passages", n)
		total += n
	}
	logger.L.Info("ingestion complete", "corpus", *corpusID, "passages", total)
}

// splitPassages breaks a document into paragraph-sized passages.
func splitPassages(doc string) []string {
	var out []string
	for _, block := range strings.Split(doc, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}
