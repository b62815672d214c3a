package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DEFRA/mpdp-admin-frontend/internal/config"
	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/database"
)

const keyPrefix = "mpdp-admin"

var _ database.Repository = (*redisConnector)(nil)

type redisConnector struct {
	logger logging.Logger
	rdb    redis.UniversalClient
}

func NewRedisConnector(conf config.DatabaseConfig, logger logging.Logger) database.Repository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddress,
		Password: conf.RedisPassword,
		DB:       conf.RedisDB,
	})
	return newWithClient(rdb, logger)
}

func newWithClient(rdb redis.UniversalClient, logger logging.Logger) *redisConnector {
	return &redisConnector{
		logger: logger,
		rdb:    rdb,
	}
}

// Migrate only checks the connection, redis has no schema.
func (r *redisConnector) Migrate() error {
	if err := r.rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}
	r.logger.Info("connected to redis session store")
	return nil
}

func (r *redisConnector) Close() error {
	return r.rdb.Close()
}

func (r *redisConnector) Get(ctx context.Context, segment string, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, storeKey(segment, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, database.ErrNotFound
		}
		r.logger.Error("redis GET failed for segment %s: %s", segment, err.Error())
		return nil, err
	}
	return value, nil
}

func (r *redisConnector) Set(ctx context.Context, segment string, key string, value []byte, ttl time.Duration) error {
	return r.rdb.Set(ctx, storeKey(segment, key), value, ttl).Err()
}

func (r *redisConnector) Drop(ctx context.Context, segment string, key string) error {
	return r.rdb.Del(ctx, storeKey(segment, key)).Err()
}

func storeKey(segment string, key string) string {
	return keyPrefix + ":" + segment + ":" + key
}
