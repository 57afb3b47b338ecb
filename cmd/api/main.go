package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/hugohenrick/armazem/docs"
	"github.com/hugohenrick/armazem/internal/config"
	"github.com/hugohenrick/armazem/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg := config.Load()
	appLogger := logger.NewLogger(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	// Criar aplicação
	app, err := NewApp(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Error("erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.GetRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("servidor iniciado", "port", cfg.Port, "ledger", cfg.LedgerEnabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("erro ao iniciar servidor", "error", err)
			os.Exit(1)
		}
	}()

	// Aguardar sinal para encerrar o servidor
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("encerrando servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("servidor encerrado à força", "error", err)
	}
}
