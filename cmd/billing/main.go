package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"basera/config"
	"basera/di"
	"basera/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	worker := di.InitializeScheduler()
	if err := worker.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start billing scheduler")
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	worker.Stop()
}
