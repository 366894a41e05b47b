package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/smartzplatform/minter-service/internal/ethereum"
	journalClickhouse "github.com/smartzplatform/minter-service/internal/journal/clickhouse"
	"github.com/smartzplatform/minter-service/internal/metrics"
	"github.com/smartzplatform/minter-service/internal/minter"
	"github.com/smartzplatform/minter-service/internal/repository/postgres"
	"github.com/smartzplatform/minter-service/internal/transport"
)

var config struct {
	Addr                 string        `long:"addr" env:"MINT_GATEWAY_ADDR" description:"listen addr" default:":8000"`
	PostgresDSN          string        `long:"postgres-dsn" env:"MINT_GATEWAY_POSTGRES_DSN" description:"postgres dsn"`
	EthRPC               string        `long:"eth-rpc" env:"MINT_GATEWAY_ETH_RPC" description:"ethereum node rpc url"`
	MinterKey            string        `long:"minter-key" env:"MINT_GATEWAY_MINTER_KEY" description:"hex private key of the minting account"`
	ContractAddr         string        `long:"contract-addr" env:"MINT_GATEWAY_CONTRACT_ADDR" description:"minter contract address"`
	Network              string        `long:"network" env:"MINT_GATEWAY_NETWORK" description:"network label for metrics" default:"mainnet"`
	GasCap               uint64        `long:"gas-cap" env:"MINT_GATEWAY_GAS_CAP" description:"optional hard gas limit cap"`
	RequireConfirmations uint64        `long:"require-confirmations" env:"MINT_GATEWAY_REQUIRE_CONFIRMATIONS" description:"blocks before a mint counts as final" default:"12"`
	AuthToken            string        `long:"auth-token" env:"MINT_GATEWAY_AUTH_TOKEN" description:"bearer token for the mint route"`
	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"MINT_GATEWAY_CLICKHOUSE_DSN" description:"optional mint event journal dsn"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"MINT_GATEWAY_JOURNAL_FLUSH_SIZE" description:"journal batch size" default:"64"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"MINT_GATEWAY_JOURNAL_FLUSH_INTERVAL" description:"journal flush interval" default:"2s"`
	JournalFlushRPS      int           `long:"journal-flush-rps" env:"MINT_GATEWAY_JOURNAL_FLUSH_RPS" description:"journal flushes per second" default:"4"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	store, err := postgres.NewRepository(config.PostgresDSN, metrics.NewStore())
	if err != nil {
		logger.Fatal("Init idempotency store", zap.Error(err))
	}
	defer func() {
		_ = store.Close()
	}()

	ledger, err := ethereum.NewClient(ctx, config.EthRPC, config.MinterKey, config.ContractAddr,
		config.GasCap, metrics.NewLedgerClient(config.Network), logger)
	if err != nil {
		logger.Fatal("Init ledger client", zap.Error(err))
	}
	defer ledger.Close()
	logger.Info("Minting account ready", zap.String("address", ledger.From().Hex()))

	var journal minter.Journal
	if config.ClickhouseDSN != "" {
		repo, err := journalClickhouse.NewRepository(config.ClickhouseDSN)
		if err != nil {
			logger.Fatal("Init mint journal", zap.Error(err))
		}
		j := journalClickhouse.NewJournal(repo, metrics.NewJournal(), logger,
			config.JournalFlushSize, config.JournalFlushInterval, config.JournalFlushRPS)
		j.Start(ctx)
		defer j.Stop()
		journal = j
	}

	coordinator, err := minter.NewCoordinator(store, ledger, journal, metrics.NewCoordinator(), logger)
	if err != nil {
		logger.Fatal("Init coordinator", zap.Error(err))
	}
	resolver, err := minter.NewStatusResolver(store, ledger, journal, config.RequireConfirmations, logger)
	if err != nil {
		logger.Fatal("Init status resolver", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), transport.RequestLogger(logger))
	transport.NewHandler(coordinator, resolver, logger).Register(router, config.AuthToken)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
