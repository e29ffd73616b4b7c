package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"confexport/pkg/config"
	"confexport/pkg/exportservice"
	"confexport/pkg/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Logging.Level)
	defer logger.Sync()

	service := exportservice.New(cfg, logger)

	start := time.Now()
	if err := service.Run(context.Background()); err != nil {
		logger.Fatal("export run failed", zap.Error(err))
	}
	logger.Info("export complete", zap.Duration("duration", time.Since(start)))
}
