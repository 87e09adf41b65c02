package repository

import (
	"bytes"
	"time"

	"golang.org/x/xerrors"

	"github.com/swaplens/goapi/base/ctx"
	hcdomain "github.com/swaplens/goapi/domain/healthcheck"
	"github.com/swaplens/goapi/domain/keys"
	"github.com/swaplens/goapi/service/cache/provider"
)

type impl struct {
	cache provider.Provider
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(cache provider.Provider) hcdomain.HealthCheckRepo {
	return &impl{
		cache: cache,
	}
}

func (im *impl) PingCache(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()

	key := keys.CacheKey(keys.PfxHealthCheck, "testset")
	if err := im.cache.Set(ctx, key, []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	if val, _, err := im.cache.Get(ctx, key); err != nil {
		context.WithField("err", err).Error("test cache get failed")
		return err
	} else if !bytes.Equal(val, []byte("1")) {
		err := xerrors.Errorf("unexpected cache value %q", val)
		context.WithField("err", err).Error("cache round trip mismatch")
		return err
	}
	return nil
}
