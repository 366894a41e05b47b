package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/smartzplatform/minter-service/internal/ethereum"
	journalClickhouse "github.com/smartzplatform/minter-service/internal/journal/clickhouse"
	"github.com/smartzplatform/minter-service/internal/metrics"
	"github.com/smartzplatform/minter-service/internal/minter"
	"github.com/smartzplatform/minter-service/internal/repository/postgres"
)

var config struct {
	MetricsAddr          string        `long:"metrics-addr" env:"CONFIRMATION_WATCHER_METRICS_ADDR" description:"metrics listen addr" default:":8090"`
	PostgresDSN          string        `long:"postgres-dsn" env:"CONFIRMATION_WATCHER_POSTGRES_DSN" description:"postgres dsn"`
	EthRPC               string        `long:"eth-rpc" env:"CONFIRMATION_WATCHER_ETH_RPC" description:"ethereum node rpc url"`
	MinterKey            string        `long:"minter-key" env:"CONFIRMATION_WATCHER_MINTER_KEY" description:"hex private key of the minting account"`
	ContractAddr         string        `long:"contract-addr" env:"CONFIRMATION_WATCHER_CONTRACT_ADDR" description:"minter contract address"`
	Network              string        `long:"network" env:"CONFIRMATION_WATCHER_NETWORK" description:"network label for metrics" default:"mainnet"`
	RequireConfirmations uint64        `long:"require-confirmations" env:"CONFIRMATION_WATCHER_REQUIRE_CONFIRMATIONS" description:"blocks before a mint counts as final" default:"12"`
	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"CONFIRMATION_WATCHER_CLICKHOUSE_DSN" description:"optional mint event journal dsn"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"CONFIRMATION_WATCHER_JOURNAL_FLUSH_SIZE" description:"journal batch size" default:"64"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"CONFIRMATION_WATCHER_JOURNAL_FLUSH_INTERVAL" description:"journal flush interval" default:"2s"`
	JournalFlushRPS      int           `long:"journal-flush-rps" env:"CONFIRMATION_WATCHER_JOURNAL_FLUSH_RPS" description:"journal flushes per second" default:"4"`
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
		0, metrics.NewLedgerClient(config.Network), logger)
	if err != nil {
		logger.Fatal("Init ledger client", zap.Error(err))
	}
	defer ledger.Close()

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

	resolver, err := minter.NewStatusResolver(store, ledger, journal, config.RequireConfirmations, logger)
	if err != nil {
		logger.Fatal("Init status resolver", zap.Error(err))
	}
	watcher, err := minter.NewConfirmationWatcher(store, resolver, metrics.NewWatcher(), logger)
	if err != nil {
		logger.Fatal("Init confirmation watcher", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &http.Server{
		Addr:              config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve metrics", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("Starting confirmation watcher")
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Watcher stopped", zap.Error(err))
	}
}
