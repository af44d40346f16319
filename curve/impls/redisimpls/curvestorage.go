package redisimpls

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcurves/curve"
)

// NewRedisCurveStorage returns a curve.Storage keeping the serialized
// curves in one redis hash.
func NewRedisCurveStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) curve.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "curveStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &curveStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type curveStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *curveStorageImpl) curvesRedisKey() string {
	if impl.preKey == "" {
		return "curves"
	}

	return impl.preKey + ":" + "curves"
}

func (impl *curveStorageImpl) Save(key string, data []byte) error {
	return impl.redisCli.HSet(context.Background(), impl.curvesRedisKey(), key, data).Err()
}

func (impl *curveStorageImpl) Load(key string) (data []byte, err error) {
	d, err := impl.redisCli.HGet(context.Background(), impl.curvesRedisKey(), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	data = []byte(d)

	return
}
