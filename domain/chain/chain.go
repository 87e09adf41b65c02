package chain

import (
	"github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
)

// Config describes a chain known to the quoting pipeline, along with the
// token sweep quotes are denominated in and the tokens quoted against it.
type Config struct {
	ChainId            domain.ChainId `json:"chainId"`
	Blockchain         string         `json:"blockchain"`
	NormalizationToken domain.Token   `json:"normalizationToken"`
	TradingTokens      []domain.Token `json:"tradingTokens"`
}

type Repo interface {
	FindOne(ctx.Ctx, domain.ChainId) (*Config, error)
	FindAll(ctx.Ctx) ([]Config, error)
}

type Usecase interface {
	GetChain(ctx.Ctx, domain.ChainId) (*Config, error)
	GetChains(ctx.Ctx) ([]Config, error)
}

var (
	chainIdToText = map[domain.ChainId]string{
		domain.ChainId(1):     "ethereum",
		domain.ChainId(10):    "optimism",
		domain.ChainId(56):    "binance-smart-chain",
		domain.ChainId(137):   "polygon",
		domain.ChainId(999):   "hyperevm",
		domain.ChainId(8453):  "base",
		domain.ChainId(9745):  "plasma",
		domain.ChainId(42161): "arbitrum",
		domain.ChainId(43114): "avalanche",
	}
)

func GetChainDisplayName(chainId domain.ChainId) (string, error) {
	if val, ok := chainIdToText[chainId]; !ok {
		return "", domain.ErrNotFound
	} else {
		return val, nil
	}
}
