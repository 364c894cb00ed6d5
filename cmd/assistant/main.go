package main

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/api"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/config"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/llm"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/logger"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/memory"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/orchestrator"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/rag"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		return
	}
	logger.SetLevel(cfg.Log.Level)

	client := llm.NewClient(cfg.LLM)
	completer := llm.NewCompleter(client, cfg.LLM)
	retriever := rag.NewSQLiteRetriever(cfg.RAG.DBPath)
	store := memory.NewStore()

	orch := orchestrator.New(store, completer, retriever, cfg.RAG.TopK)
	router := api.NewRouter(orch, store)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.L.Info("starting server", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.L.Error("failed to start server", "error", err)
	}
}
