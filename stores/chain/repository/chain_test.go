package repository

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/chain"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im chain.Repo
}

func (ts *testsuite) SetupTest() {
	ts.im = NewChainRepo(chain.DefaultConfigs())
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestFindOne() {
	cfg, err := ts.im.FindOne(mockCtx, 999)
	ts.NoError(err)
	ts.Equal("hyperevm", cfg.Blockchain)
	ts.Equal("USDe", cfg.NormalizationToken.Symbol)
	ts.NotEmpty(cfg.TradingTokens)

	cfg, err = ts.im.FindOne(mockCtx, 9745)
	ts.NoError(err)
	ts.Equal("plasma", cfg.Blockchain)
	ts.Equal("USDT0", cfg.NormalizationToken.Symbol)

	_, err = ts.im.FindOne(mockCtx, 1)
	ts.Equal(domain.ErrNotFound, err)
}

func (ts *testsuite) TestFindAll() {
	cfgs, err := ts.im.FindAll(mockCtx)
	ts.NoError(err)
	ts.Len(cfgs, 2)
	ts.Equal(domain.ChainId(999), cfgs[0].ChainId)
	ts.Equal(domain.ChainId(9745), cfgs[1].ChainId)
}
