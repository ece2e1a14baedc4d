package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"invoice-escrow/config"
	_ "invoice-escrow/docs" // Swagger docs
	"invoice-escrow/internal/httpserver"
	"invoice-escrow/internal/invoice/repository/escrow"
	"invoice-escrow/internal/invoice/usecase"
	"invoice-escrow/pkg/deadline"
	"invoice-escrow/pkg/gcalendar"
	"invoice-escrow/pkg/log"
	"invoice-escrow/pkg/openai"
)

// @title       Invoice Escrow API
// @description AI-assisted invoice drafting with on-chain escrow settlement.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Invoice Escrow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Chain RPC: %s (chain id %d)", cfg.Chain.RPCURL, cfg.Chain.ChainID)

	// 3. Extraction client
	llm, err := openai.New(openai.Config{
		APIKey: cfg.OpenAI.APIKey,
		APIURL: cfg.OpenAI.BaseURL,
		Model:  cfg.OpenAI.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	// 4. Deadline parser
	dl, err := deadline.NewParser(cfg.Chain.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chain.Timezone, err)
		dl, _ = deadline.NewParser("UTC")
	}

	// 5. Ledger repository
	ledger, err := escrow.New(ctx, logger, escrow.Config{
		RPCURL:          cfg.Chain.RPCURL,
		ContractAddress: cfg.Chain.ContractAddress,
		PrivateKey:      cfg.Chain.PrivateKey,
		ChainID:         cfg.Chain.ChainID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize escrow ledger client: ", err)
		return
	}
	defer ledger.Close()

	// 6. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 7. Invoice UseCase
	invoiceUC := usecase.New(logger, llm, ledger, calendarClient, dl)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		InvoiceUC:   invoiceUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
