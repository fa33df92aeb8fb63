package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/algorecall/internal/bot"
	"github.com/example/algorecall/internal/database"
	"github.com/example/algorecall/internal/schedule"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// The engine is the single writer; everything mutating goes through it
	engine := schedule.NewEngine(database.NewStore())
	go engine.Run(ctx)

	b, err := bot.New(engine, bot.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	done := make(chan struct{})

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		cancel()
		b.Stop()

		// Give in-flight handlers a moment to finish
		time.Sleep(2 * time.Second)
		close(done)
	}()

	log.Println("AlgoRecall started. Press Ctrl+C to stop.")
	go func() {
		if err := b.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("Bot error: %v", err)
		}
	}()

	<-done
	log.Println("AlgoRecall stopped successfully")
}
