package usecase

import (
	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/chain"
)

type chainUseCase struct {
	repo chain.Repo
}

func NewChainUseCase(r chain.Repo) chain.Usecase {
	return &chainUseCase{repo: r}
}

func (u *chainUseCase) GetChain(ctx bCtx.Ctx, chainId domain.ChainId) (*chain.Config, error) {
	return u.repo.FindOne(ctx, chainId)
}

func (u *chainUseCase) GetChains(ctx bCtx.Ctx) ([]chain.Config, error) {
	return u.repo.FindAll(ctx)
}
