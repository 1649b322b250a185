package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Govind-619/OrderLadder/config"
	"github.com/Govind-619/OrderLadder/routes"
	"github.com/Govind-619/OrderLadder/services"
	"github.com/Govind-619/OrderLadder/utils"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := utils.InitLogger(cfg.LogDir, cfg.LogDebug); err != nil {
		return err
	}
	defer utils.SyncLogger()

	if err := cfg.Validate(); err != nil {
		utils.LogError("Invalid configuration: %v", err)
		return err
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		utils.LogError("Failed to open store: %v", err)
		return err
	}
	defer closeStore()

	notifier, closeNotifier := buildNotifier(cfg)
	defer closeNotifier()

	payments := services.NewPaymentService(store, services.NewRazorpayProvider(cfg.RazorpayKey, cfg.RazorpaySecret), notifier, services.PaymentConfig{
		UnitPrice: cfg.UnitPrice,
		Currency:  cfg.Currency,
		KeyID:     cfg.RazorpayKey,
		KeySecret: cfg.RazorpaySecret,
	})
	router := routes.SetupRouter(cfg, payments, store)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.LogInfo("Server starting on port %s (store: %s)", cfg.Port, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			utils.LogError("Error starting server: %v", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	utils.LogInfo("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(cfg *config.Config) (services.Store, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		utils.LogInfo("Using in-memory store; payments will not survive a restart")
		return services.NewMemoryStore(), func() {}, nil
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Migrate(db); err != nil {
		return nil, nil, err
	}

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return services.NewGormStore(db), closeDB, nil
}

func buildNotifier(cfg *config.Config) (services.Notifier, func()) {
	var notifiers services.Notifiers
	closers := []func(){}

	if cfg.Email().Enabled() && cfg.NotifyEmail != "" {
		email := services.NewEmailNotifier(cfg.Email(), cfg.NotifyEmail, cfg.Currency)
		notifiers = append(notifiers, email)
		closers = append(closers, email.Close)
		utils.LogInfo("Payment confirmations will be mailed to %s", cfg.NotifyEmail)
	}

	if cfg.NATSURL != "" {
		nc, err := services.ConnectNATS(cfg.NATSURL)
		if err != nil {
			utils.LogError("NATS unavailable, payment events disabled: %v", err)
		} else {
			notifiers = append(notifiers, services.NewNATSNotifier(nc, cfg.NATSSubject))
			closers = append(closers, func() { nc.Drain() })
			utils.LogInfo("Publishing payment events to %s", cfg.NATSSubject)
		}
	}

	return notifiers, func() {
		for _, c := range closers {
			c()
		}
	}
}
