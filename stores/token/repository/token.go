package repository

import (
	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/chain"
)

type tokenStaticRepo struct {
	tokens []domain.Token
	byAddr map[domain.Address]domain.Token
}

// NewTokenRepo builds the in-memory token table from chain configs,
// normalization token first. Lookups are keyed on lowercased addresses.
func NewTokenRepo(cfgs []chain.Config) domain.TokenRepo {
	r := &tokenStaticRepo{
		byAddr: map[domain.Address]domain.Token{},
	}
	for _, cfg := range cfgs {
		for _, t := range append([]domain.Token{cfg.NormalizationToken}, cfg.TradingTokens...) {
			addr := t.Address.ToLower()
			if _, ok := r.byAddr[addr]; ok {
				continue
			}
			r.byAddr[addr] = t
			r.tokens = append(r.tokens, t)
		}
	}
	return r
}

func (r *tokenStaticRepo) FindOne(ctx bCtx.Ctx, address domain.Address) (*domain.Token, error) {
	t, ok := r.byAddr[address.ToLower()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *tokenStaticRepo) FindAll(ctx bCtx.Ctx) ([]domain.Token, error) {
	tokens := make([]domain.Token, len(r.tokens))
	copy(tokens, r.tokens)
	return tokens, nil
}

func (r *tokenStaticRepo) FindDecimals(ctx bCtx.Ctx, address domain.Address) (int32, error) {
	t, ok := r.byAddr[address.ToLower()]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return t.Decimals, nil
}
