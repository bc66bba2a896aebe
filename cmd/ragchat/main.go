package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"ragchat/internal/chat"
	"ragchat/internal/chunker"
	"ragchat/internal/config"
	"ragchat/internal/embedding"
	"ragchat/internal/embedding/hash"
	"ragchat/internal/embedding/openai"
	"ragchat/internal/service"
	"ragchat/internal/summarizer"
	"ragchat/internal/tui"
	"ragchat/internal/vectorstore"
	"ragchat/internal/vectorstore/memory"
	"ragchat/internal/vectorstore/qdrant"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/ragchat/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	setupLogging(cfg.LogFile)

	// Assemble components
	var emb embedding.Embedder
	switch cfg.Embedder.Type {
	case "hash", "":
		emb = hash.NewEmbedder(cfg.Embedder.Dimension)
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			log.Fatalf("openai embedder config missing")
		}
		client, err := openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
		emb = client
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	var idx vectorstore.Index
	switch cfg.VectorStore.Type {
	case "memory", "":
		idx = memory.NewIndex()
	case "qdrant":
		if cfg.VectorStore.Qdrant == nil {
			log.Fatalf("qdrant config missing")
		}
		idx = qdrant.NewIndex(qdrant.Config{
			URL:        cfg.VectorStore.Qdrant.URL,
			APIKey:     cfg.VectorStore.Qdrant.APIKey,
			Collection: cfg.VectorStore.Qdrant.Collection,
			Timeout:    time.Duration(cfg.VectorStore.Qdrant.TimeoutSecs) * time.Second,
		})
	default:
		log.Fatalf("unknown vector store: %s", cfg.VectorStore.Type)
	}

	svc := service.NewService(
		chunker.NewLineChunker(),
		emb,
		idx,
		summarizer.NewFrequencySummarizer(),
		service.Params{
			Dimension:           cfg.Embedder.Dimension,
			TopK:                cfg.Retrieval.TopK,
			MinScore:            cfg.Retrieval.MinScore,
			SummaryMaxSentences: cfg.Summary.MaxSentences,
		},
	)

	// A missing credential halts here, before the UI starts.
	gen, err := chat.NewClient(chat.ClientConfig{
		BaseURL:   cfg.Chat.BaseURL,
		APIKeyEnv: cfg.Chat.APIKeyEnv,
		Model:     cfg.Chat.Model,
		Timeout:   time.Duration(cfg.Chat.TimeoutSecs) * time.Second,
	})
	if err != nil {
		log.Fatalf("chat client init failed: %v (set %s in the environment or a .env file)", err, cfg.Chat.APIKeyEnv)
	}

	m := tui.New(svc, gen)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

// setupLogging sends slog output to the configured file, or discards it so
// log lines never corrupt the terminal UI.
func setupLogging(path string) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
