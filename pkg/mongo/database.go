package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/klwxsrx/project-manager/pkg/log"
)

const defaultConnectionTimeout = 20 * time.Second

type (
	Config struct {
		URI               string
		Database          string
		ConnectionTimeout time.Duration
	}

	Database interface {
		Collection(name string) *mongo.Collection
		Close(ctx context.Context)
	}

	database struct {
		client *mongo.Client
		db     *mongo.Database
		logger log.Logger
	}
)

func NewDatabase(ctx context.Context, config *Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(func() error {
		return client.Ping(ctx, readpref.Primary())
	}, backoff.WithContext(eb, ctx))
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &database{
		client: client,
		db:     client.Database(config.Database),
		logger: logger,
	}, nil
}

func (d *database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *database) Close(ctx context.Context) {
	err := d.client.Disconnect(ctx)
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to close mongo connection")
	}
}

func EnsureIndexes(ctx context.Context, coll *mongo.Collection, models ...mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}

	_, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("create indexes for %s: %w", coll.Name(), err)
	}

	return nil
}

func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
