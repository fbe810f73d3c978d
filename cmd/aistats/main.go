package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phaseo/ai-stats-go/internal/app"
	"github.com/phaseo/ai-stats-go/internal/cli"
	"github.com/phaseo/ai-stats-go/internal/config"
	"github.com/phaseo/ai-stats-go/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "aistats: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sugar, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()
	log := logger.NewZap(sugar)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(&cli.GlobalOptions{
		Load: func(ctx context.Context) (*app.App, error) {
			a, err := app.New(ctx, cfg, log)
			if err != nil {
				logger.ErrorObj("failed to initialize runtime", "error", err.Error())
				return nil, err
			}
			return a, nil
		},
	})
	root.SilenceErrors = true
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
