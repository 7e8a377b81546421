package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	internalhttp "github.com/klwxsrx/project-manager/internal/pkg/http"
	"github.com/klwxsrx/project-manager/pkg/cmd"
	"github.com/klwxsrx/project-manager/pkg/env"
	"github.com/klwxsrx/project-manager/pkg/http"
	"github.com/klwxsrx/project-manager/pkg/lazy"
	"github.com/klwxsrx/project-manager/pkg/log"
	"github.com/klwxsrx/project-manager/pkg/message"
	"github.com/klwxsrx/project-manager/pkg/metric"
	"github.com/klwxsrx/project-manager/pkg/mongo"
	"github.com/klwxsrx/project-manager/pkg/observability"
	"github.com/klwxsrx/project-manager/pkg/pulsar"
	"github.com/klwxsrx/project-manager/pkg/sql"
	pkgtime "github.com/klwxsrx/project-manager/pkg/time"
)

const (
	StorageDriverMongo    StorageDriver = "mongo"
	StorageDriverPostgres StorageDriver = "postgres"

	defaultMongoDatabase = "project_manager"
)

type (
	StorageDriver string

	InfrastructureContainer struct {
		HTTPServer      lazy.Loader[http.Server]
		EventDispatcher lazy.Loader[message.EventDispatcher]
		StorageDriver   StorageDriver
		MongoDB         lazy.Loader[mongo.Database]
		DB              lazy.Loader[sql.Database]
		DBMigrations    lazy.Loader[SQLMigrations]
		Clock           lazy.Loader[pkgtime.Clock]
		Metrics         lazy.Loader[metric.Metrics]
		Logger          lazy.Loader[log.Logger]

		pulsarProducer lazy.Loader[*pulsar.Producer]
	}
)

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	prometheusMetrics := prometheusMetricsProvider()
	metrics := lazy.New(func() (metric.Metrics, error) { return prometheusMetrics.Load() })
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)
	pulsarProducer := pulsarProducerProvider(logger)

	return &InfrastructureContainer{
		HTTPServer:      httpServerProvider(observer, prometheusMetrics, logger),
		EventDispatcher: eventDispatcherProvider(pulsarProducer, logger),
		StorageDriver:   storageDriverProvider(),
		MongoDB:         mongoDatabaseProvider(ctx, logger),
		DB:              db,
		DBMigrations:    sqlMigrationsProvider(ctx, db, logger),
		Clock:           clockProvider(),
		Metrics:         metrics,
		Logger:          logger,
		pulsarProducer:  pulsarProducer,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.pulsarProducer.IfLoaded(func(producer *pulsar.Producer) { producer.Close() })
	i.MongoDB.IfLoaded(func(db mongo.Database) { db.Close(ctx) })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func storageDriverProvider() StorageDriver {
	driver := env.Must(env.ParseOptional[*string]("STORAGE_DRIVER"))
	if driver == nil {
		return StorageDriverMongo
	}

	switch d := StorageDriver(*driver); d {
	case StorageDriverMongo, StorageDriverPostgres:
		return d
	default:
		panic(fmt.Errorf("unknown storage driver %q", *driver))
	}
}

func prometheusMetricsProvider() lazy.Loader[*metric.PrometheusMetrics] {
	return lazy.New(func() (*metric.PrometheusMetrics, error) {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		return metric.NewPrometheusMetrics("", registry), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		return log.New(log.ParseLevel(logLevel)), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewAdjustableClock(), nil
	})
}

func mongoDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[mongo.Database] {
	return lazy.New(func() (mongo.Database, error) {
		config := &mongo.Config{
			URI:      env.Must(env.Parse[string]("MONGODB_URL")),
			Database: defaultMongoDatabase,
		}
		database := env.Must(env.ParseOptional[*string]("MONGODB_DATABASE"))
		if database != nil {
			config.Database = *database
		}
		connTimeout := env.Must(env.ParseOptional[*time.Duration]("MONGODB_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		db, err := mongo.NewDatabase(ctx, config, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open mongo connection: %w", err))
		}

		return db, nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
		}
		maxOpenConns := env.Must(env.ParseOptional[*int]("SQL_MAX_OPEN_CONNECTIONS"))
		if maxOpenConns != nil {
			sqlConfig.MaxOpenConnections = *maxOpenConns
		}
		maxIdleConns := env.Must(env.ParseOptional[*int]("SQL_MAX_IDLE_CONNECTIONS"))
		if maxIdleConns != nil {
			sqlConfig.MaxIdleConnections = *maxIdleConns
		}
		sqlConnTimeout := env.Must(env.ParseOptional[*time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[*metric.PrometheusMetrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := http.DefaultServerAddress
		customAddress := env.Must(env.ParseOptional[*string]("HTTP_ADDRESS"))
		if customAddress != nil {
			address = *customAddress
		}

		return http.NewServer(
			address,
			http.WithHealthCheck(nil),
			http.WithMetricsHandler(metrics.MustLoad().Handler()),
			http.WithErrorMapping(internalhttp.ErrorMapper),
			http.WithCORSHandler(),
			http.WithObservability(
				observer.MustLoad(),
				http.NewHTTPHeaderRequestIDExtractor(internalhttp.RequestIDHeader),
				http.NewRandomUUIDRequestIDExtractor(),
			),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}

func pulsarProducerProvider(logger lazy.Loader[log.Logger]) lazy.Loader[*pulsar.Producer] {
	return lazy.New(func() (*pulsar.Producer, error) {
		config := &pulsar.Config{
			Address: env.Must(env.Parse[string]("PULSAR_ADDRESS")),
		}
		connTimeout := env.Must(env.ParseOptional[*time.Duration]("PULSAR_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		producer, err := pulsar.NewProducer(config, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open pulsar connection: %w", err))
		}

		return producer, nil
	})
}

// eventDispatcherProvider publishes to pulsar when PULSAR_ADDRESS is set and logs events otherwise.
func eventDispatcherProvider(
	pulsarProducer lazy.Loader[*pulsar.Producer],
	logger lazy.Loader[log.Logger],
) lazy.Loader[message.EventDispatcher] {
	return lazy.New(func() (message.EventDispatcher, error) {
		address := env.Must(env.ParseOptional[*string]("PULSAR_ADDRESS"))
		if address == nil {
			return message.NewEventDispatcher(message.NewLogProducer(logger.MustLoad(), log.LevelInfo)), nil
		}

		return message.NewEventDispatcher(pulsarProducer.MustLoad()), nil
	})
}
