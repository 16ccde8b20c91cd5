package db

import (
	"context"
	"fmt"
	"time"

	"github.com/CPU-commits/Intranet_BSubjects/settings"
	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const CONNECT_TIMEOUT = time.Second * 10
const MAX_CONNECT_ELAPSED = time.Minute

type MongoConnection struct {
	client *mongo.Client
	dbName string
}

// Build the connection string from settings.
// MONGO_CONNECTION is the scheme, mongodb or mongodb+srv.
func MongoURI() string {
	settingsData := settings.GetSettings()
	if settingsData.MONGO_ROOT_USERNAME == "" {
		return fmt.Sprintf(
			"%s://%s",
			settingsData.MONGO_CONNECTION,
			settingsData.MONGO_HOST,
		)
	}
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		settingsData.MONGO_CONNECTION,
		settingsData.MONGO_ROOT_USERNAME,
		settingsData.MONGO_ROOT_PASSWORD,
		settingsData.MONGO_HOST,
	)
}

// Client Connection
//
// Retries with exponential backoff until the server answers a ping
// or MAX_CONNECT_ELAPSED is reached.
func NewConnection(ctx context.Context, uri, dbName string, logger *zap.Logger) (*MongoConnection, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	connectCtx, cancel := context.WithTimeout(ctx, CONNECT_TIMEOUT)
	defer cancel()
	if err := client.Connect(connectCtx); err != nil {
		return nil, err
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = MAX_CONNECT_ELAPSED
	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, CONNECT_TIMEOUT)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	}
	notify := func(err error, next time.Duration) {
		logger.Warn(
			"mongo ping failed",
			zap.Error(err),
			zap.Duration("retry_in", next),
		)
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(retryBackoff, ctx), notify); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	logger.Info("mongo connected", zap.String("db", dbName))

	return &MongoConnection{
		client: client,
		dbName: dbName,
	}, nil
}

func (conn *MongoConnection) GetCollection(collection string) *mongo.Collection {
	return conn.client.Database(conn.dbName).Collection(collection)
}

func (conn *MongoConnection) Disconnect(ctx context.Context) error {
	return conn.client.Disconnect(ctx)
}
