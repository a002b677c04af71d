package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/dznutri/dznutri/internal/config"
	"github.com/dznutri/dznutri/internal/logging"
	"github.com/dznutri/dznutri/internal/scanapp"
)

func main() {
	ctx := context.Background()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	cfg := config.LoadConfig()
	app, err := scanapp.NewApp(ctx, cfg, logging.NewZapLogger(zl))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
