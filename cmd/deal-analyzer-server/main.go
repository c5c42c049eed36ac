package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/iwvelando/deal-analyzer/internal/server"
	"github.com/iwvelando/deal-analyzer/internal/store"
	"github.com/iwvelando/deal-analyzer/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	addressFlag := flag.String("address", "", "listen address override (e.g., :8080)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}
	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	logger, err := cfg.Logging.BuildLogger("")
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	handler := server.NewHandler(logger, cfg.UploadSizeBytes(), version, store.NewPropertyStore())

	logger.Info("starting server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
		zap.String("version", version),
	)

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server exited",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
