package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connectfour/internal/config"
	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/cleanup"
	"github.com/iamasit07/connectfour/internal/service/game"
	transportHttp "github.com/iamasit07/connectfour/internal/transport/http"
	"github.com/iamasit07/connectfour/internal/transport/websocket"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	// 1. One shared table; every viewer sees the same board
	connManager := websocket.NewConnectionManager(cfg.WSWriteTimeout)
	table := game.NewTable(domain.NewEngine(), connManager)

	// 2. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if cfg.IdleResetAfter > 0 {
		go cleanup.NewWorker(table, cfg.IdleResetAfter, cfg.CleanupInterval).Start(workerCtx)
	}

	// 3. Transport
	wsHandler := websocket.NewHandler(connManager, table, cfg.AllowedOrigins, cfg.WSReadTimeout, cfg.WSPingInterval)
	router := transportHttp.NewRouter(cfg, table, wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
