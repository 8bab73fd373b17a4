package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/honeycarbs/jobboard/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL"), logging.Console()).Named("assistant")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	endpoint := os.Getenv("MCP_URL")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}
	if !strings.HasSuffix(endpoint, "/mcp/stream") {
		endpoint = strings.TrimSuffix(endpoint, "/") + "/mcp/stream"
	}

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		logger.Error("GOOGLE_API_KEY or GEMINI_API_KEY must be set")
		os.Exit(1)
	}

	model := os.Getenv("GOOGLE_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	a, err := newAgent(ctx, endpoint, apiKey, model, os.Getenv("GOOGLE_SHEETS_ID"), logger)
	if err != nil {
		logger.Error("failed to start assistant", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close failed", "err", err)
		}
	}()

	logger.Info("tools loaded", "count", len(a.tools), "model", model)

	chat := a.model.StartChat()

	if len(os.Args) > 1 {
		answer, err := a.Ask(ctx, chat, strings.Join(os.Args[1:], " "))
		if err != nil {
			logger.Error("request failed", "err", err)
			return
		}
		fmt.Println(answer)
		return
	}

	fmt.Println("Job board assistant. Type 'quit' to exit.")

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		fmt.Print("\n> ")

		var input string
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			input = strings.TrimSpace(line)
		}

		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit", "q":
			return
		}

		answer, err := a.Ask(ctx, chat, input)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Warn("request failed", "err", err)
			continue
		}
		fmt.Println(answer)
	}
}
