package di

import (
	"fmt"

	"TrendCast/internal/domain/repository"
	"TrendCast/internal/handler/api"
	internalrepo "TrendCast/internal/repository"
	"TrendCast/internal/source"
	"TrendCast/internal/usecase"
	"TrendCast/pkg/cache"
	pkgch "TrendCast/pkg/clickhouse"
	"TrendCast/pkg/config"
	pkgkafka "TrendCast/pkg/kafka"
	applogger "TrendCast/pkg/logger"
	"TrendCast/pkg/metrics"
	"TrendCast/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stdout",
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the response cache. Returns nil when caching is
// disabled; consumers treat a nil service as no cache.
func ProvideCache(cfg *config.Config, l *applogger.Logger) cache.Service {
	if !cfg.Cache.Enabled {
		return nil
	}

	memOpts := []cache.MemoryOption{cache.WithMemoryMaxSize(cfg.Cache.MaxSize)}
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(memOpts...)
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
	)
	if err != nil {
		l.Warn("redis unavailable, falling back to in-memory cache", applogger.Error(err))
		return cache.NewMemoryCache(memOpts...)
	}
	return cache.NewLayeredCache(redisCache, memOpts...)
}

// ProvideClickHouseClient creates a ClickHouse client when the clickhouse
// source is configured; otherwise no client is needed.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Source.Type != "clickhouse" {
		return nil, nil
	}
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return client, nil
}

// ProvideSource selects the configured series source.
func ProvideSource(cfg *config.Config, chClient *pkgch.Client, l *applogger.Logger) (repository.SeriesSource, error) {
	switch cfg.Source.Type {
	case "csv":
		return source.NewCSVFile(cfg.Source.Path), nil
	case "clickhouse":
		store := internalrepo.NewCHSeriesStore(chClient, cfg.ClickHouse.Database+"."+cfg.ClickHouse.Table)
		store.SetLogger(l)
		return store, nil
	case "synthetic":
		return source.NewSynthetic(cfg.Forecast.SyntheticLength), nil
	default:
		return nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
	}
}

// ProvidePublisher creates the Kafka result publisher when export is
// enabled; nil disables publishing.
func ProvidePublisher(cfg *config.Config) (repository.ResultPublisher, error) {
	if !cfg.Export.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Export.Kafka.Brokers),
		pkgkafka.WithRequiredAcks(cfg.Export.Kafka.RequiredAcks),
		pkgkafka.WithCompression(cfg.Export.Kafka.Compression),
		pkgkafka.WithWriteTimeout(cfg.Export.Kafka.WriteTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaResultPublisher(producer, cfg.Export.Kafka.Topic), nil
}

// ProvideRunner creates the forecast pipeline use case.
func ProvideRunner(
	src repository.SeriesSource,
	cacheSvc cache.Service,
	m repository.Metrics,
	pub repository.ResultPublisher,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.ForecastRunner {
	opts := []usecase.RunnerOption{
		usecase.WithMetrics(m),
		usecase.WithLogger(l),
	}
	if cacheSvc != nil {
		opts = append(opts, usecase.WithCache(cacheSvc, cfg.Cache.TTL))
	}
	if pub != nil {
		opts = append(opts, usecase.WithPublisher(pub))
	}
	return usecase.NewForecastRunner(src, opts...)
}

// ProvideHandler creates the Echo handler and registers alternate sources
// selectable via the "source" query parameter.
func ProvideHandler(
	l *applogger.Logger,
	runner *usecase.ForecastRunner,
	cfg *config.Config,
	chClient *pkgch.Client,
) *api.ForecastEchoHandler {
	h := api.NewForecastEchoHandler(l, runner)

	h.RegisterSource(source.NewSynthetic(cfg.Forecast.SyntheticLength))
	if cfg.Source.Path != "" {
		h.RegisterSource(source.NewCSVFile(cfg.Source.Path))
	}
	if chClient != nil {
		store := internalrepo.NewCHSeriesStore(chClient, cfg.ClickHouse.Database+"."+cfg.ClickHouse.Table)
		store.SetLogger(l)
		h.RegisterSource(store)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler *api.ForecastEchoHandler,
	cacheSvc cache.Service,
	chClient *pkgch.Client,
	pub repository.ResultPublisher,
) *server.App {
	app := server.New(cfg, l, handler)
	if cacheSvc != nil {
		app.SetCache(cacheSvc)
	}
	if chClient != nil {
		app.SetClickHouse(chClient)
	}
	if pub != nil {
		app.SetPublisher(pub)
	}
	return app
}
