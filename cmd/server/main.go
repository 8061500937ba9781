package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/bpnbank/bpn-bank/internal/accountstore"
	"github.com/bpnbank/bpn-bank/internal/background"
	"github.com/bpnbank/bpn-bank/internal/ledgerdelivery"
	"github.com/bpnbank/bpn-bank/internal/ledgerservice"
	"github.com/bpnbank/bpn-bank/internal/middleware"
	"github.com/bpnbank/bpn-bank/internal/paymentsched"
	"github.com/bpnbank/bpn-bank/internal/priceboard"
	"github.com/bpnbank/bpn-bank/internal/pricedelivery"
	"github.com/bpnbank/bpn-bank/internal/pricesim"
	"github.com/bpnbank/bpn-bank/internal/snapshotrepo"
	"github.com/bpnbank/bpn-bank/internal/userdelivery"
	"github.com/bpnbank/bpn-bank/internal/userservice"
	"github.com/bpnbank/bpn-bank/pkg/configpkg"
	"github.com/bpnbank/bpn-bank/pkg/dbpkg"
	"github.com/bpnbank/bpn-bank/pkg/tokenpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)
	ctx := logger.WithContext(context.Background())

	snapshots, err := newSnapshotter(ctx, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot set up snapshot storage")
	}

	store, err := accountstore.New(ctx, snapshots)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load account snapshot")
	}

	board := priceboard.New()

	ledgerService := ledgerservice.New(store, board, ledgerservice.Config{
		NudgePriceOnTrade: config.NudgePriceOnTrade,
		TradeNudgeBound:   config.TradeNudgeBound,
	})
	userService := userservice.New(store)

	simulator := pricesim.New(board, pricesim.Config{
		UpProbability: config.PriceUpProbability,
		MaxStep:       config.PriceMaxStep,
	})
	scheduler := paymentsched.New(ledgerService)

	runner := background.NewRunner(logger)

	if err := runner.AddEvery(config.PriceTickInterval, "price-simulator", simulator.Tick); err != nil {
		logger.Fatal().Err(err).Msg("cannot schedule price simulator")
	}

	if err := runner.AddEvery(config.PaymentTickInterval, "payment-scheduler", scheduler.Tick); err != nil {
		logger.Fatal().Err(err).Msg("cannot schedule payment scheduler")
	}

	server, err := createServer(logger, config, ledgerService, userService, board)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	runner.Start()

	httpServer := &http.Server{
		Addr:    config.ServerAddress,
		Handler: server,
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("cannot start server")
		}
	}()

	logger.Info().Str("address", config.ServerAddress).Msg("server started")

	quitCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-quitCtx.Done()

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}

	// Wait for in-flight background jobs so the last snapshot lands.
	<-runner.Stop().Done()

	logger.Info().Msg("server stopped")
}

func newSnapshotter(ctx context.Context, config configpkg.Config) (accountstore.Snapshotter, error) {
	switch config.SnapshotDriver {
	case "postgres":
		conn, err := dbpkg.Setup("postgres", config.SnapshotDBSource)
		if err != nil {
			return nil, err
		}

		repo := snapshotrepo.NewRepoPGS(conn)
		if err := repo.Init(ctx); err != nil {
			return nil, err
		}

		return repo, nil
	case "json", "":
		return snapshotrepo.NewRepoJSON(config.SnapshotFile), nil
	}

	return nil, errors.New("unknown snapshot driver " + config.SnapshotDriver)
}

func createServer(
	logger zerolog.Logger,
	config configpkg.Config,
	ledgerService *ledgerservice.Service,
	userService *userservice.Service,
	board *priceboard.Board,
) (*gin.Engine, error) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userHandler := userdelivery.NewHandler(userService, tokenMaker, config.AccessTokenDuration)
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	priceHandler := pricedelivery.NewHandler(board)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	server.POST("/login", userHandler.Login)
	server.GET("/prices", priceHandler.List)

	authRoutes := server.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.POST("/mint", ledgerHandler.Mint)
	authRoutes.POST("/transfers", ledgerHandler.Transfer)
	authRoutes.POST("/merchant-payments", ledgerHandler.PayMerchant)
	authRoutes.POST("/investments", ledgerHandler.Invest)
	authRoutes.POST("/divestments", ledgerHandler.Divest)
	authRoutes.POST("/recurring-payments", ledgerHandler.ScheduleRecurringPayment)
	authRoutes.GET("/me", ledgerHandler.Me)
	authRoutes.GET("/admin/accounts", ledgerHandler.Overview)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("instrument", ledgerdelivery.ValidInstrument); err != nil {
			return nil, errors.New("cannot register instrument validator")
		}

		if err := v.RegisterValidation("frequency", ledgerdelivery.ValidFrequency); err != nil {
			return nil, errors.New("cannot register frequency validator")
		}
	}

	return server, nil
}
