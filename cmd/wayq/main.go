package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/Pranav-Patel-123/WaY-scrapping/internal/config"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/domain"
	logpkg "github.com/Pranav-Patel-123/WaY-scrapping/internal/logger"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/metrics"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/transport/gemini"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/transport/serpapi"
	ytTransport "github.com/Pranav-Patel-123/WaY-scrapping/internal/transport/youtube"
	routeuc "github.com/Pranav-Patel-123/WaY-scrapping/internal/usecase/route"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The REPL owns stdout, so the logger stays quiet unless asked.
	level := cfg.Logging.Level
	if level == "" {
		level = "error"
	}
	logger, err := logpkg.NewLogger(env, level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	metrics.RegisterRoutingMetrics()

	svc, err := buildService(cfg, logger)
	if err != nil {
		return err
	}

	return repl(svc)
}

func buildService(cfg config.Config, logger *zap.Logger) (*routeuc.Service, error) {
	classifier := gemini.NewClassifier(&gemini.Config{
		APIKey:  cfg.Classifier.APIKey,
		BaseURL: cfg.Classifier.BaseURL,
		Model:   cfg.Classifier.Model,
		Logger:  logger,
	})

	svc := routeuc.New(classifier, logger)

	if cfg.Providers.SerpAPI.APIKey != "" {
		svc.WithGeneral(serpapi.NewClient(&serpapi.Config{
			APIKey:  cfg.Providers.SerpAPI.APIKey,
			BaseURL: cfg.Providers.SerpAPI.BaseURL,
			Logger:  logger,
		}))
	}

	if cfg.Providers.YouTube.APIKey != "" {
		ytClient, err := ytTransport.NewClient(context.Background(), &ytTransport.Config{
			APIKey: cfg.Providers.YouTube.APIKey,
			Logger: logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create youtube client: %w", err)
		}
		svc.WithPlatform(ytClient)
	}

	return svc, nil
}

func repl(svc *routeuc.Service) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("Ask anything. Type 'exit' or 'quit' to leave.")

	for {
		input, err := line.Prompt("query> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		query := strings.TrimSpace(input)
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			return nil
		}
		line.AppendHistory(input)

		result, err := svc.Route(context.Background(), query)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}

		printResult(result)
	}
}

func printResult(result domain.SearchResult) {
	if result.IsAnswer() {
		fmt.Println(result.Answer)
		return
	}

	if len(result.Videos) == 0 {
		fmt.Println("No videos found.")
		return
	}

	fmt.Printf("Top results (%s):\n", result.Source)
	for i, v := range result.Videos {
		fmt.Printf("%d. %s\n   %s\n", i+1, v.Title, v.Link)
		if v.Channel != "" {
			fmt.Printf("   by %s", v.Channel)
			if v.Views != "" {
				fmt.Printf(" (%s)", v.Views)
			}
			fmt.Println()
		}
	}
}
