// Package main implements the terminal minesweeper game, its results
// ledger tooling and a read-only stats API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minesweeper/cmd/minesweeper/cli"
	viewcli "minesweeper/internal/cli"
	"minesweeper/internal/config"
	"minesweeper/internal/service"
	"minesweeper/internal/storage"
	clitransport "minesweeper/internal/transport/cli"
	"minesweeper/internal/transport/http"

	"github.com/chzyer/readline"
	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

const (
	gracefulShutdownTimeout = time.Second * 5
)

func main() {
	args := os.Args[1:]
	command := "play"
	if len(args) > 0 {
		switch args[0] {
		case "play", "serve", "db":
			command, args = args[0], args[1:]
		}
	}

	var err error
	switch command {
	case "db":
		err = cli.Run(args, os.Stdout)
	case "serve":
		err = serve(args)
	default:
		err = play(args)
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

// openStore opens the results ledger, or returns nil when no path is configured
func openStore(cfg config.Config) (*storage.Store, error) {
	if cfg.StoragePath == "" {
		return nil, nil
	}

	store, err := storage.NewStore(cfg.StoragePath, cfg.Dev)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	if err := store.InitDB(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to initialize schema: %w", err), store.Close())
	}
	return store, nil
}

func play(args []string) error {
	cfg, err := config.Load(flag.NewFlagSet("play", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	svc := service.New(store)
	defer func() {
		if err := svc.Close(); err != nil {
			log.Printf("Warning: failed to close storage cleanly: %v", err)
		}
	}()

	out := colorable.NewColorableStdout()
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          out,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize terminal input: %w", err)
	}
	defer rl.Close()

	view := viewcli.New(rl, out, cfg.UseColor(isTerminal))
	handler := clitransport.New(svc, view, cfg.NewGameRequest())

	view.ShowWelcome()
	handler.Run() // All game loop logic is in the handler
	return nil
}

func serve(args []string) error {
	cfg, err := config.Load(flag.NewFlagSet("serve", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	if cfg.StoragePath == "" {
		return errors.New("serve requires -storage-path")
	}

	// Manage PID file if requested
	if cfg.PIDPath != "" {
		pid, err := acquirePIDFile(cfg.PIDPath, cfg.PIDLock)
		if err != nil {
			return fmt.Errorf("failed to manage PID file: %w", err)
		}
		defer pid.Release()
		log.Printf("PID file created at: %s (lock: %v)", cfg.PIDPath, cfg.PIDLock)
	}

	log.Printf("Opening results ledger at: %s", cfg.StoragePath)
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Warning: failed to close storage cleanly: %v", err)
		}
	}()

	app := http.NewFiberApp(store, cfg.Dev)
	apiAddr := cfg.APIAddr()

	// Start API server in a goroutine
	go func() {
		log.Printf("Minesweeper Stats API starting...")
		log.Printf("API Listening on: http://%s", apiAddr)
		log.Printf("API Version: v1")
		if cfg.Dev {
			log.Printf("Rate Limit: 20 requests/second per IP (DEV MODE)")
		} else {
			log.Printf("Rate Limit: 10 requests/second per IP")
		}
		log.Printf("API Endpoints: http://%s/api/v1/[games|stats]", apiAddr)
		log.Printf("Health: http://%s/health", apiAddr)

		if err := app.Listen(apiAddr); err != nil {
			log.Printf("API server listen error: %v", err)
		}
	}()

	// Wait for an interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}
