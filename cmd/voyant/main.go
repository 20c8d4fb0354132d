// Copyright 2025 Voyant Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	voyant "github.com/voyant-labs/voyant"
	"github.com/voyant-labs/voyant/ai"
	"github.com/voyant-labs/voyant/ai/openai"
	"github.com/voyant-labs/voyant/answer"
	"github.com/voyant-labs/voyant/catalog"
	"github.com/voyant-labs/voyant/chunk"
	"github.com/voyant-labs/voyant/flights"
	"github.com/voyant-labs/voyant/index"
	"github.com/voyant-labs/voyant/storage/badger"
)

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model name for answer generation",
			Value: "qwen2.5:3b",
		},
	}
}

func aiConfigFromFlags(c *cli.Context) *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatModel(c.String("chat-model")),
	)
}

func main() {
	app := &cli.App{
		Name:  "voyant",
		Usage: "Travel assistant with flight search and policy answering",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "index",
				Usage:     "Chunk and embed a policy document, replacing the stored index",
				Action:    indexCommand,
				ArgsUsage: "",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "policy",
						Aliases:  []string{"p"},
						Usage:    "Path to the policy document text file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "chunk-width",
						Usage: "Maximum chunk width in bytes",
						Value: chunk.DefaultWidth,
					},
					&cli.IntFlag{
						Name:  "chunk-overlap",
						Usage: "Overlap between consecutive chunks in bytes",
						Value: chunk.DefaultOverlap,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to embed per request",
						Value: index.DefaultBatchSize,
					},
				}, aiFlags()...),
			},
			{
				Name:      "flights",
				Usage:     "Search the flight catalog with a free-text query",
				Action:    flightsCommand,
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to the flight catalog JSON file",
						Required: true,
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Answer a policy question from the stored index",
				Action:    askCommand,
				ArgsUsage: "QUESTION",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of passages to retrieve",
						Value: voyant.DefaultTopK,
					},
				}, aiFlags()...),
			},
			{
				Name:      "query",
				Usage:     "Route a free-text query to flight search or policy answering",
				Action:    queryCommand,
				ArgsUsage: "QUERY",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to the flight catalog JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of passages to retrieve",
						Value: voyant.DefaultTopK,
					},
				}, aiFlags()...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	text, err := os.ReadFile(c.String("policy"))
	if err != nil {
		return fmt.Errorf("failed to read policy document: %w", err)
	}

	chunker, err := chunk.NewChunker(c.Int("chunk-width"), c.Int("chunk-overlap"))
	if err != nil {
		return err
	}
	chunks := chunker.Split(string(text))

	aiConfig := aiConfigFromFlags(c)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	builder, err := index.NewBuilder(embedder, index.WithBatchSize(c.Int("batch-size")))
	if err != nil {
		return err
	}
	defer builder.Release()

	idx, err := builder.Build(ctx, chunks)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewChunkRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	if err := repo.ReplaceChunks(ctx, idx.Chunks()); err != nil {
		return fmt.Errorf("failed to persist chunks: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d chunks from %s\n", idx.Len(), c.String("policy"))
	return nil
}

func flightsCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query text is required")
	}

	store, err := catalog.LoadFile(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	extractor, err := flights.NewExtractor(flights.WithKnownLocations(store.Locations()))
	if err != nil {
		return err
	}

	criteria := extractor.Extract(query)
	results := flights.Search(store.Records(), criteria)

	fmt.Println(formatFlightList(results))
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	question := strings.Join(c.Args().Slice(), " ")
	if question == "" {
		return fmt.Errorf("question text is required")
	}

	aiConfig := aiConfigFromFlags(c)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewChunkRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	chunks, err := repo.LoadChunks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load chunks: %w", err)
	}
	if len(chunks) == 0 {
		return fmt.Errorf("no indexed policy document; run the index command first")
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	idx, err := index.NewIndex(embedder, chunks)
	if err != nil {
		return err
	}

	matches, err := idx.Retrieve(ctx, question, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	generator, err := openai.NewGenerator(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	synthesizer, err := answer.NewSynthesizer(generator)
	if err != nil {
		return err
	}

	response, err := synthesizer.Synthesize(ctx, question, matches)
	if err != nil {
		return fmt.Errorf("answering failed: %w", err)
	}

	fmt.Println(response)
	return nil
}

func queryCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query text is required")
	}

	store, err := catalog.LoadFile(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	assistant, err := voyant.NewAssistant(store,
		voyant.WithAIConfig(aiConfigFromFlags(c)),
		voyant.WithStoragePath(c.String("db")),
		voyant.WithTopK(c.Int("top-k")),
	)
	if err != nil {
		return err
	}
	defer assistant.Close()

	switch route(query) {
	case CapabilityPolicy:
		if err := assistant.LoadPolicy(ctx); err != nil {
			return fmt.Errorf("failed to load policy index: %w", err)
		}

		response, err := assistant.PolicyAnswer(ctx, query)
		if err != nil {
			return fmt.Errorf("answering failed: %w", err)
		}
		fmt.Println(response)

	default:
		results := assistant.FlightSearch(query)
		fmt.Println(formatFlightList(results))
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
