package sweeper

import (
	"math/big"
	"strconv"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/base/goroutine"
	"github.com/swaplens/goapi/base/log"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/chain"
	"github.com/swaplens/goapi/domain/quote"
)

const defaultWorkers = 10

type QuoteSweeperCfg struct {
	Chains   []chain.Config
	Quote    quote.Usecase
	Interval time.Duration
	Workers  int
	ErrorCh  chan<- error
}

// QuoteSweeper periodically quotes one whole unit of each chain's
// normalization token against every trading token on that chain.
type QuoteSweeper struct {
	chains    []chain.Config
	quote     quote.Usecase
	interval  time.Duration
	workers   int
	errorCh   chan<- error
	stoppedCh chan interface{}
}

func NewQuoteSweeper(cfg *QuoteSweeperCfg) *QuoteSweeper {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &QuoteSweeper{
		chains:    cfg.Chains,
		quote:     cfg.Quote,
		interval:  cfg.Interval,
		workers:   workers,
		errorCh:   cfg.ErrorCh,
		stoppedCh: make(chan interface{}),
	}
}

func (s *QuoteSweeper) Start(ctx bCtx.Ctx) {
	goroutine.RecoverableGo(
		func() { s.loop(ctx) },
		goroutine.WithAfterRecovered(func(p interface{}, stack []byte) {
			s.errorCh <- xerrors.Errorf("sweeper panicked: %v", p)
			close(s.stoppedCh)
		}),
	)
}

func (s *QuoteSweeper) Wait() {
	<-s.stoppedCh
}

func (s *QuoteSweeper) loop(ctx bCtx.Ctx) {
	nextTick := time.Second * 0

	for {
		select {
		case <-ctx.Done():
			close(s.stoppedCh)
			return
		case <-time.After(nextTick):
			ctx.Info("sweeping quotes")
			for i := range s.chains {
				s.sweepChain(ctx, &s.chains[i])
			}
			nextTick = s.interval
		}
	}
}

type sweptQuote struct {
	token  domain.Token
	result *quote.Result
}

func (s *QuoteSweeper) sweepChain(ctx bCtx.Ctx, cfg *chain.Config) {
	chainName, err := chain.GetChainDisplayName(cfg.ChainId)
	if err != nil {
		chainName = strconv.Itoa(int(cfg.ChainId))
	}

	norm := cfg.NormalizationToken
	// one whole unit of the normalization token, in base units
	sellAmount := new(big.Int).Exp(domain.Big10, big.NewInt(int64(norm.Decimals)), nil).String()

	targets := make([]domain.Token, 0, len(cfg.TradingTokens))
	for _, token := range cfg.TradingTokens {
		if token.Address.Equals(norm.Address) {
			continue
		}
		targets = append(targets, token)
	}

	b := goroutines.NewBatch(s.workers, goroutines.WithBatchSize(len(targets)))
	defer b.Close()
	for i := 0; i < len(targets); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			res := s.quote.GetQuote(ctx, &quote.Request{
				ChainId:    cfg.ChainId,
				SellToken:  norm.Address,
				BuyToken:   targets[idx].Address,
				SellAmount: sellAmount,
			})
			return &sweptQuote{token: targets[idx], result: res}, nil
		})
	}
	b.QueueComplete()

	succeeded := 0
	failed := 0
	for ret := range b.Results() {
		if ret.Error() != nil {
			continue
		}
		swept := ret.Value().(*sweptQuote)
		if !swept.result.Ok() {
			failed++
			ctx.WithFields(log.Fields{
				"chain": chainName,
				"token": swept.token.Symbol,
				"err":   swept.result.Error,
			}).Warn("quote sweep failed")
			continue
		}
		succeeded++
		ctx.WithFields(log.Fields{
			"chain":        chainName,
			"token":        swept.token.Symbol,
			"outputAmount": swept.result.OutputAmount,
			"elapsedTime":  swept.result.ElapsedTime,
		}).Info("quote swept")
	}

	ctx.WithFields(log.Fields{
		"chain":     chainName,
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("chain sweep finished")
}
