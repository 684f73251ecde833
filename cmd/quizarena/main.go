package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/quizarena/internal/pkg/config"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/health"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/middleware"
	natspkg "github.com/piresc/quizarena/internal/pkg/nats"
	nrpkg "github.com/piresc/quizarena/internal/pkg/newrelic"
	"github.com/piresc/quizarena/internal/pkg/retry"
	"github.com/piresc/quizarena/internal/pkg/server"
	wspkg "github.com/piresc/quizarena/internal/pkg/websocket"
	"github.com/piresc/quizarena/internal/utils"
	"github.com/piresc/quizarena/migrations"
	authHTTP "github.com/piresc/quizarena/services/auth/handler/http"
	authRepository "github.com/piresc/quizarena/services/auth/repository"
	authUsecase "github.com/piresc/quizarena/services/auth/usecase"
	quizGateway "github.com/piresc/quizarena/services/quiz/gateway"
	quizHTTP "github.com/piresc/quizarena/services/quiz/handler/http"
	quizNATS "github.com/piresc/quizarena/services/quiz/handler/nats"
	quizWS "github.com/piresc/quizarena/services/quiz/handler/websocket"
	quizRepository "github.com/piresc/quizarena/services/quiz/repository"
	quizUsecase "github.com/piresc/quizarena/services/quiz/usecase"
	walletGateway "github.com/piresc/quizarena/services/wallet/gateway"
	walletHTTP "github.com/piresc/quizarena/services/wallet/handler/http"
	walletRepository "github.com/piresc/quizarena/services/wallet/repository"
	walletUsecase "github.com/piresc/quizarena/services/wallet/usecase"
)

const bodyLimit = "1M"

func main() {
	configs := config.InitConfig(".env")
	if problems := config.Validate(configs); len(problems) > 0 {
		for _, p := range problems {
			log.Println("invalid configuration:", p)
		}
		log.Fatal("refusing to start with invalid configuration")
	}
	appName := configs.App.Name

	nrApp, err := nrpkg.InitNewRelic(configs)
	if err != nil {
		log.Printf("Warning: New Relic disabled: %v", err)
	}
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(appName, configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Dependencies may still be starting next to the service
	ctx := context.Background()
	retrier := retry.New(retry.DefaultConfig())

	var postgresClient *database.PostgresClient
	if err := retrier.Execute(ctx, "postgres", func(context.Context) (err error) {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	if err := migrations.Apply(ctx, postgresClient.GetDB()); err != nil {
		zapLogger.Fatal("Failed to apply migrations", logger.Err(err))
	}

	var redisClient *database.RedisClient
	if err := retrier.Execute(ctx, "redis", func(context.Context) (err error) {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	var natsClient *natspkg.Client
	if err := retrier.Execute(ctx, "nats", func(context.Context) (err error) {
		natsClient, err = natspkg.NewClient(configs.NATS.URL, appName)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	if !natsClient.Enabled() {
		zapLogger.Warn("NATS_URL not set, events will not be published")
	}

	txManager := database.NewTxManager(postgresClient.GetDB())
	wsManager := wspkg.NewManager(configs.JWT, configs.Websocket.AllowedOrigin)

	// Wallet
	walletRepo := walletRepository.NewWalletRepo(postgresClient.GetDB())
	walletGW := walletGateway.NewNATSGateway(natsClient, wsManager)
	walletUC := walletUsecase.NewWalletUC(walletRepo, walletGW, txManager)

	// Auth
	authRepo := authRepository.NewAuthRepo(postgresClient.GetDB())
	authUC := authUsecase.NewAuthUC(authRepo, walletUC, txManager, configs)

	// Quiz
	quizRepo := quizRepository.NewQuizRepo(postgresClient.GetDB())
	leaderboardRepo := quizRepository.NewLeaderboardRepo(redisClient)
	quizGW := quizGateway.NewQuizGateway(natsClient, wsManager)
	quizUC := quizUsecase.NewQuizUC(quizRepo, leaderboardRepo, quizGW, walletUC, txManager)

	quizConsumer := quizNATS.NewHandler(quizUC, natsClient)
	if err := quizConsumer.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{configs.App.ClientURL},
		AllowCredentials: true,
	}))
	e.Use(echomw.BodyLimit(bodyLimit))
	e.Use(echomw.Secure())

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, map[string]health.Checker{
		"postgres": health.CheckerFunc(postgresClient.Ping),
		"redis":    health.CheckerFunc(redisClient.Ping),
		"nats": health.CheckerFunc(func(context.Context) error {
			return natsClient.Ping()
		}),
	})

	registerRoutes(e, configs, routes{
		auth:         authHTTP.NewAuthHandler(authUC),
		wallet:       walletHTTP.NewWalletHandler(walletUC),
		quiz:         quizHTTP.NewQuizHandler(quizUC),
		quizSocket:   quizWS.NewHandler(quizUC, wsManager),
		rateLimitRDB: redisClient,
	})

	components := server.NewShutdownManager(zapLogger)
	components.Register("nats-consumers", func(context.Context) error {
		quizConsumer.Close()
		return nil
	})
	components.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	components.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})
	components.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})
	components.Register("logger", func(context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(5 * time.Second)
		}
		return zapLogger.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second, components)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.String("app", appName), logger.Err(err))
	}
}
