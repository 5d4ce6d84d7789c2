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

const chatLimit = 5

func main() {
	ctx := context.Background()
	cfg, loggerCfg := loadConfig(ctx)

	logger, err := pkglogger.New(ctx, loggerCfg)
	if err != nil {
		log.Fatal(err)
	}

	client := telegram.NewBasicClient(nil, cfg, logger.Logger)
	defer client.Close()

	health, err := client.Health(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "API unreachable: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("API Health: %v\n", health)

	fmt.Println("\n--- Current User ---")
	me, err := client.GetMe(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("User: %v\n", me)

	fmt.Println("\n--- Chats with Metadata ---")
	chats, err := client.ListChats(ctx, &telegram.ListChatsRequest{Limit: chatLimit})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	printChats(chats)

	fmt.Println("\n--- Contacts ---")
	contacts, err := client.ListContacts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	printContacts(contacts)
}

func printChats(result any) {
	chats, ok := result.([]any)
	if !ok {
		fmt.Printf("%v\n", result)
		return
	}
	for _, raw := range chats {
		chat, ok := raw.(map[string]any)
		if !ok {
			fmt.Printf("  %v\n", raw)
			continue
		}
		unread := chat["unread_count"]
		if unread == nil {
			unread = 0
		}
		fmt.Printf("  - %v (ID: %v, Unread: %v)\n", chat["name"], chat["id"], unread)
	}
}

func printContacts(result any) {
	contacts, ok := result.([]any)
	if !ok {
		fmt.Printf("%v\n", result)
		return
	}
	for i, raw := range contacts {
		if i == chatLimit {
			break
		}
		contact, ok := raw.(map[string]any)
		if !ok {
			fmt.Printf("  %v\n", raw)
			continue
		}
		username := contact["username"]
		if username == nil {
			username = "no username"
		}
		fmt.Printf("  - %v (%v)\n", contact["name"], username)
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
