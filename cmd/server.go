package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"walletsync/internal/config"
	"walletsync/internal/core"
	"walletsync/internal/db"
	"walletsync/internal/http/handler"
	"walletsync/internal/http/handler/middleware"
	"walletsync/internal/http/payload"
	"walletsync/internal/http/server"
	"walletsync/internal/repository"
	"walletsync/internal/scheduler"
	"walletsync/pkg/jwt"
	"walletsync/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("walletsync", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewLedgerRepository(dbConn, func() int64 {
		return time.Now().UnixMilli()
	})

	if err := repo.MigrateAndSeed(); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// sync engine
	walletSync := core.NewWalletSync(
		logger,
		repo,
		jwtService,
		config.ConfirmationDelay)

	// deferred confirmations
	sched := scheduler.NewScheduler(logger, repo, walletSync, config.SchedulerInterval)
	schedCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go sched.Run(schedCtx)

	// handler
	walletHlr := handler.NewWalletHandler(
		logger,
		payload.DecodeValidator{},
		walletSync,
		config)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Unlock, walletHlr.HandleUnlock)
	mux.HandleFunc(handler.SendTransfer, walletHlr.HandleSendTransfer)
	mux.HandleFunc(handler.ReceiveTransfer, walletHlr.HandleReceiveTransfer)
	mux.HandleFunc(handler.UpdateTransferStatus, walletHlr.HandleUpdateTransferStatus)
	mux.HandleFunc(handler.GetTransfers, walletHlr.HandleGetTransfers)
	mux.HandleFunc(handler.GetTransfersWith, walletHlr.HandleGetTransfersWith)
	mux.HandleFunc(handler.GetAnalytics, walletHlr.HandleGetAnalytics)
	mux.HandleFunc(handler.CreateContact, walletHlr.HandleCreateContact)
	mux.HandleFunc(handler.GetContacts, walletHlr.HandleGetContacts)
	mux.HandleFunc(handler.GetFrequentContacts, walletHlr.HandleGetFrequentContacts)
	mux.HandleFunc(handler.ModifyContact, walletHlr.HandleUpdateContact)
	mux.HandleFunc(handler.RemoveContact, walletHlr.HandleDeleteContact)
	mux.HandleFunc(handler.CreatePurchase, walletHlr.HandleCreatePurchase)
	mux.HandleFunc(handler.GetPurchases, walletHlr.HandleGetPurchases)
	mux.HandleFunc(handler.ModifyPurchase, walletHlr.HandleUpdatePurchase)
	mux.HandleFunc(handler.ProviderWebhook, walletHlr.HandleProviderWebhook)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
