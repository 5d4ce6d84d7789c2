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

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: send-message <chat_id> <message>")
		fmt.Fprintln(os.Stderr, "  chat_id: Numeric ID or @username")
		fmt.Fprintln(os.Stderr, "  message: The message to send")
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

	result, err := client.SendMessage(ctx, &telegram.SendMessageRequest{
		ChatID:  telegram.ChatID(os.Args[1]),
		Message: os.Args[2],
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Success: %v\n", result)
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
