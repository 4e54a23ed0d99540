package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/givepool/donation-interceptor/audit"
	"github.com/givepool/donation-interceptor/auth"
	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
	donationHttpDelivery "github.com/givepool/donation-interceptor/donation/delivery/http"
	donationrepo "github.com/givepool/donation-interceptor/donation/repository"
	donationredisrepo "github.com/givepool/donation-interceptor/donation/repository/redis"
	donationUseCase "github.com/givepool/donation-interceptor/donation/usecase"
	"github.com/givepool/donation-interceptor/log"
	"github.com/givepool/donation-interceptor/middleware"
	systemhttpdelivery "github.com/givepool/donation-interceptor/system/delivery/http"
)

// DonationHookServer defines an interface for the donation hook server.
// It wires the donation config store, the swap interceptor and the
// governance API, and exposes the pieces the host engine embeds.
type DonationHookServer interface {
	GetConfigRepository() mvc.DonationConfigRepository
	GetDonationUsecase() mvc.DonationUsecase
	GetGovernanceUsecase() mvc.GovernanceUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type donationHookServer struct {
	configRepository  mvc.DonationConfigRepository
	donationUsecase   mvc.DonationUsecase
	governanceUsecase mvc.GovernanceUsecase
	e                 *echo.Echo
	serverAddress     string
	logger            log.Logger
}

// GetConfigRepository implements DonationHookServer.
func (s *donationHookServer) GetConfigRepository() mvc.DonationConfigRepository {
	return s.configRepository
}

// GetDonationUsecase implements DonationHookServer.
func (s *donationHookServer) GetDonationUsecase() mvc.DonationUsecase {
	return s.donationUsecase
}

// GetGovernanceUsecase implements DonationHookServer.
func (s *donationHookServer) GetGovernanceUsecase() mvc.GovernanceUsecase {
	return s.governanceUsecase
}

// GetLogger implements DonationHookServer.
func (s *donationHookServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements DonationHookServer.
func (s *donationHookServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// Start implements DonationHookServer.
func (s *donationHookServer) Start(context.Context) error {
	s.logger.Info("Starting donation hook server", zap.String("address", s.serverAddress))
	err := s.e.Start(s.serverAddress)
	if err != nil {
		return err
	}

	return nil
}

// NewDonationHookServer creates a new donation hook server.
func NewDonationHookServer(config domain.Config, bankKeeper domain.BankKeeper, logger log.Logger) (DonationHookServer, error) {
	donationConfig := config.Donation
	if donationConfig == nil {
		donationConfig = &domain.DonationConfig{}
	}

	corsConfig := config.CORS
	if corsConfig == nil {
		corsConfig = &domain.CORSConfig{
			AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time, Accept-Encoding, X-Caller-Address",
			AllowedMethods: "HEAD, GET, POST",
			AllowedOrigin:  "*",
		}
	}

	// Setup echo server
	e := echo.New()
	middleware := middleware.InitMiddleware(corsConfig)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	if config.OTEL != nil && config.OTEL.EnableTracing {
		e.Use(middleware.TraceWithParamsMiddleware("donation-hook"))
	}

	defaultPoolConfig := donationConfig.DefaultPoolConfig()
	if err := defaultPoolConfig.Validate(); err != nil {
		return nil, err
	}

	// Use context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	defer func() {
		cancel() // Trigger shutdown
	}()

	// Select the config store. A configured storage host selects the
	// redis-backed store; otherwise configs live in process memory.
	var (
		configRepository mvc.DonationConfigRepository
		redisAddress     string
	)
	if config.StorageHost != "" {
		// Create redis client and ensure that it is up.
		redisAddress = fmt.Sprintf("%s:%s", config.StorageHost, config.StoragePort)
		logger.Info("Pinging redis", zap.String("redis_address", redisAddress))
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddress,
			Password: "", // no password set
			DB:       0,  // use default DB
		})
		redisStatus := redisClient.Ping(ctx)
		_, err := redisStatus.Result()
		if err != nil {
			return nil, err
		}

		redisTxManager := donationredisrepo.NewTxManager(redisClient)
		configRepository = donationredisrepo.New(redisTxManager, defaultPoolConfig)
	} else {
		configRepository = donationrepo.New(defaultPoolConfig)
	}

	// Audit sink shared by the interceptor and the governance usecase.
	auditSink, err := audit.NewSink(logger)
	if err != nil {
		return nil, err
	}

	// Role membership is read once at startup.
	accessController := auth.NewAccessController(donationConfig.DonationManagers, donationConfig.Guardians)

	// Initialize usecases
	donationUsecase := donationUseCase.NewInterceptorUsecase(configRepository, bankKeeper, auditSink, logger)
	governanceUsecase := donationUseCase.NewGovernanceUsecase(configRepository, accessController, auditSink, logger)

	// HTTP handlers
	donationHttpDelivery.NewDonationHandler(e, governanceUsecase, logger)
	systemhttpdelivery.NewSystemHandler(e, redisAddress, config, logger)

	go func() {
		logger.Info("Starting profiling server")
		err := http.ListenAndServe("localhost:6062", nil)
		if err != nil {
			panic(err)
		}
	}()

	return &donationHookServer{
		configRepository:  configRepository,
		donationUsecase:   donationUsecase,
		governanceUsecase: governanceUsecase,
		logger:            logger,
		e:                 e,
		serverAddress:     config.ServerAddress,
	}, nil
}
