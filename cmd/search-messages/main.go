package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/vladislavprovich/telegram-integration/pkg/client/telegram"
	pkglogger "github.com/vladislavprovich/telegram-integration/pkg/logger"
)

const searchLimit = 10

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: search-messages <chat_id> <query>")
		fmt.Fprintln(os.Stderr, "  chat_id: Numeric ID or @username")
		fmt.Fprintln(os.Stderr, "  query:   Text to search for")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg, loggerCfg := loadConfig(ctx)

	logger, err := pkglogger.New(ctx, loggerCfg)
	if err != nil {
		log.Fatal(err)
	}

	client := telegram.NewBasicClient(nil, cfg, logger.Logger)
	defer client.Close()

	chatID := telegram.ChatID(os.Args[1])
	query := os.Args[2]

	fmt.Printf("Searching for %q in chat %s...\n", query, chatID)
	result, err := client.SearchMessages(ctx, &telegram.SearchMessagesRequest{
		ChatID: chatID,
		Query:  query,
		Limit:  searchLimit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	messages, ok := result.([]any)
	if !ok || len(messages) == 0 {
		fmt.Println("No messages found.")
		return
	}

	fmt.Printf("\nFound %d message(s):\n\n", len(messages))
	for _, raw := range messages {
		msg, ok := raw.(map[string]any)
		if !ok {
			fmt.Printf("  %v\n", raw)
			continue
		}
		fmt.Printf("[%v] ID: %v\n", msg["date"], msg["id"])
		fmt.Printf("  %v\n\n", msg["text"])
	}
}

func loadConfig(ctx context.Context) (*telegram.Config, *pkglogger.Config) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or failed to load: %v\n", err)
	}

	var cfg struct {
		Client telegram.Config
		Logger *pkglogger.Config
	}
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("config load error %s", err)
	}
	if err := cfg.Client.ValidateWithContext(ctx); err != nil {
		log.Fatalf("config validation error %s", err)
	}

	return &cfg.Client, cfg.Logger
}
