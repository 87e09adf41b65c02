package repository

import (
	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/chain"
)

type chainStaticRepo struct {
	cfgs []chain.Config
	byId map[domain.ChainId]chain.Config
}

// NewChainRepo serves chain configs from the built-in table.
func NewChainRepo(cfgs []chain.Config) chain.Repo {
	r := &chainStaticRepo{
		cfgs: cfgs,
		byId: map[domain.ChainId]chain.Config{},
	}
	for _, cfg := range cfgs {
		r.byId[cfg.ChainId] = cfg
	}
	return r
}

func (r *chainStaticRepo) FindOne(ctx bCtx.Ctx, chainId domain.ChainId) (*chain.Config, error) {
	cfg, ok := r.byId[chainId]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &cfg, nil
}

func (r *chainStaticRepo) FindAll(ctx bCtx.Ctx) ([]chain.Config, error) {
	cfgs := make([]chain.Config, len(r.cfgs))
	copy(cfgs, r.cfgs)
	return cfgs, nil
}
