package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nochum/df23-data-loss-prevention/internal/auth"
	"github.com/nochum/df23-data-loss-prevention/internal/avrodec"
	"github.com/nochum/df23-data-loss-prevention/internal/composite"
	"github.com/nochum/df23-data-loss-prevention/internal/config"
	"github.com/nochum/df23-data-loss-prevention/internal/failure"
	"github.com/nochum/df23-data-loss-prevention/internal/graph"
	"github.com/nochum/df23-data-loss-prevention/internal/metrics"
	"github.com/nochum/df23-data-loss-prevention/internal/pipeline"
	"github.com/nochum/df23-data-loss-prevention/internal/pubsub"
	"github.com/nochum/df23-data-loss-prevention/internal/report"
)

func main() {
	configPath := flag.StringP("config", "c", os.Getenv("CONFIG_FILE"), "path to YAML config file (env CONFIG_FILE)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Observability.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("report stream stopped",
			zap.String("kind", failure.KindOf(err).String()),
			zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("report stream stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	zcfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting report stream",
		zap.String("endpoint", cfg.PubSub.Endpoint),
		zap.String("topic", cfg.PubSub.Topic),
		zap.Int("batch_size", cfg.PubSub.BatchSize),
		zap.String("schema_cache", cfg.PubSub.SchemaCache))

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	if cfg.Observability.HealthPort > 0 {
		srv := metrics.NewServer(cfg.Observability.HealthPort, m, reg, logger)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				logger.Warn("health server shutdown failed", zap.Error(err))
			}
		}()
	}

	session, err := auth.NewProvider(cfg.Auth, logger).Login(ctx)
	if err != nil {
		m.RecordError(err)
		return err
	}

	client, err := pubsub.Dial(cfg.PubSub.Endpoint, cfg.PubSub.Insecure, session, logger)
	if err != nil {
		return failure.New(failure.KindTransport, failure.Fatal, "dial", err)
	}
	defer client.Close()

	policy, err := avrodec.ParseCachePolicy(cfg.PubSub.SchemaCache)
	if err != nil {
		return failure.New(failure.KindConfig, failure.Fatal, "schema cache", err)
	}
	decoder := avrodec.NewDecoder(client, policy, logger)
	decoder.OnFetch = func(string) { m.SchemaFetched() }

	sink, closeSink, err := buildSink(ctx, cfg.Report, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	processor := pipeline.NewProcessor(
		decoder,
		graph.NewBuilder(cfg.Composite.APIVersion, cfg.Composite.MaxRows),
		composite.NewClient(nil, session, cfg.Composite.APIVersion, cfg.Composite.Timeout, logger),
		sink,
		m,
		logger,
	)

	sub := pubsub.NewSubscriber(client, processor, pubsub.OptionsFromConfig(cfg.PubSub), m, logger)
	err = sub.RunWithReconnect(ctx)
	m.RecordError(err)

	responses, events, heartbeats := sub.State().Counts()
	logger.Info("subscription ended",
		zap.Int64("responses", responses),
		zap.Int64("events", events),
		zap.Int64("heartbeats", heartbeats))
	return err
}

// buildSink assembles the configured report sinks. The returned func releases
// any held connections.
func buildSink(ctx context.Context, cfg config.Report, logger *zap.Logger) (report.Sink, func(), error) {
	var sinks report.MultiSink
	closeFn := func() {}

	if cfg.StdoutEnabled() {
		sinks = append(sinks, report.NewWriterSink(os.Stdout))
	}

	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, failure.New(failure.KindSink, failure.Fatal, "connect postgres", err)
		}
		pg := report.NewPostgresSink(pool, cfg.Table, logger)
		if err := pg.EnsureTable(ctx); err != nil {
			pool.Close()
			return nil, nil, failure.New(failure.KindSink, failure.Fatal, "ensure table", err)
		}
		logger.Info("writing report lines to postgres", zap.String("table", cfg.Table))
		sinks = append(sinks, pg)
		closeFn = pool.Close
	}

	if len(sinks) == 1 {
		return sinks[0], closeFn, nil
	}
	return sinks, closeFn, nil
}
