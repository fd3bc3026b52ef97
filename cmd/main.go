package main

import (
	"log"
	"log/slog"
	"os"

	root "github.com/dinerozz/planzo-web/cmd/root"
	"github.com/dinerozz/planzo-web/config"
	"github.com/dinerozz/planzo-web/pkg/utils"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	config := config.LoadConfig()
	logger := setupLogger(config.Env)
	slog.SetDefault(logger)

	if err := utils.SetDisplayLocation(config.Server.Timezone); err != nil {
		logger.Warn("using UTC for event dates", slog.String("error", err.Error()))
	}

	cmd := root.GetRootCmd(config, logger)

	logger.Info("starting planzo web", slog.String("env", config.Env))

	if len(os.Args) == 1 {
		cmd.SetArgs([]string{"serve"})
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}
