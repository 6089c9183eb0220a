package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/config"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/network/router"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/view"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/worker"
)

func Run(config config.Config) {

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Panic("can't parse templates:", err.Error())
	}

	client := gateway.NewClient(config.Backend, nil)

	prices := worker.NewPriceWorker(client)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	prices.Start(ctx)

	router := router.NewRouter(config, client, renderer, prices)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	prices.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
