package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/dznutri/dznutri/internal/adminapp"
	"github.com/dznutri/dznutri/internal/config"
	"github.com/dznutri/dznutri/internal/logging"
)

func main() {
	ctx := context.Background()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	cfg := config.LoadConfig()
	app, err := adminapp.NewApp(ctx, cfg, logging.NewZapLogger(zl))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
