package cachedstorage

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/libcurves/curve"
)

// NewCachedStorage wraps a curve.Storage with a TTL read-through cache,
// so hot curves are not deserialized from the backing store on every
// lookup.
func NewCachedStorage(inner curve.Storage, expiration time.Duration) curve.Storage {
	if expiration <= 0 {
		expiration = time.Minute
	}

	return &cachedStorageImpl{
		inner: inner,
		cache: cache.New(expiration, expiration),
	}
}

type cachedStorageImpl struct {
	inner curve.Storage
	cache *cache.Cache
}

func (impl *cachedStorageImpl) Save(key string, data []byte) error {
	err := impl.inner.Save(key, data)
	if err != nil {
		return err
	}

	impl.cache.Set(key, data, cache.DefaultExpiration)

	return nil
}

func (impl *cachedStorageImpl) Load(key string) (data []byte, err error) {
	if d, ok := impl.cache.Get(key); ok {
		data, _ = d.([]byte)

		return
	}

	data, err = impl.inner.Load(key)
	if err != nil {
		return
	}

	impl.cache.Set(key, data, cache.DefaultExpiration)

	return
}
