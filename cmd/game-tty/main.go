// cmd/game-tty/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/logging"
	"go-space-shooter/internal/terminal"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("SHOOTER_CONFIG"))
	if err != nil {
		return err
	}

	logPath := os.Getenv("SHOOTER_LOG")
	if logPath == "" {
		logPath = "shooter-tty.log"
	}
	log, err := logging.NewFile(cfg.Logging, logPath)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	game, err := app.NewGame(cfg, log)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.EnableFocus()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("terminal host starting", zap.String("log", logPath))
	terminal.NewHost(screen, game, log).Run(ctx)
	return nil
}
