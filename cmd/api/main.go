package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barista-preorder/internal/config"
	"github.com/barista-preorder/internal/domain"
	genaiinfra "github.com/barista-preorder/internal/infrastructure/genai"
	"github.com/barista-preorder/internal/infrastructure/memory"
	"github.com/barista-preorder/internal/infrastructure/smtp"
	"github.com/barista-preorder/internal/pkg/id"
	"github.com/barista-preorder/internal/pkg/logging"
	transporthttp "github.com/barista-preorder/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	codes := memory.NewCodeStore(cfg.CodeTTL)
	board := memory.NewOrderBoard()
	catalog := memory.NewCatalog(memory.SeedProducts())

	if cfg.AppEnv == "development" {
		seedDemoOrders(board)
	}

	mailer := smtp.NewMailer(cfg)

	// Image generation is optional — without an API key the catalogue serves
	// placeholder images.
	var images genaiinfra.ImageGenerator
	if gen, err := genaiinfra.NewImageGenerator(context.Background(), cfg); err == nil {
		images = gen
	} else {
		log.Warn().Err(err).Msg("image generator not available")
	}

	deps := &transporthttp.Deps{
		Codes:   codes,
		Board:   board,
		Catalog: catalog,
		Mailer:  mailer,
		Images:  images,
		Log:     log,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.AppPort).Str("env", cfg.AppEnv).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

// seedDemoOrders fills the barista board with sample entries so the view is
// not empty on a fresh development run.
func seedDemoOrders(board *memory.OrderBoard) {
	for _, o := range []domain.Order{
		{CustomerName: "Employee", Total: 3.50, Status: domain.OrderStatusConfirmed},
		{CustomerName: "Employee", Total: 3.00, Status: domain.OrderStatusConfirmed},
		{CustomerName: "Leuni", Total: 6.50, Status: domain.OrderStatusConfirmed},
		{CustomerName: "Employee", Total: 13.00, Status: domain.OrderStatusConfirmed},
	} {
		o.ID = id.New()
		o.CreatedAt = time.Now().UTC()
		board.Prepend(o)
	}
}
