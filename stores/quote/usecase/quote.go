package usecase

import (
	"encoding/json"
	"time"

	"github.com/swaplens/goapi/base/amountfmt"
	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/base/log"
	"github.com/swaplens/goapi/base/metrics"
	"github.com/swaplens/goapi/base/ptr"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/quote"
	"github.com/swaplens/goapi/service/zerox"
)

type QuoteUseCaseCfg struct {
	Zerox        zerox.Client
	Formatter    amountfmt.AmountFormatter
	DefaultTaker domain.Address
}

type quoteUseCase struct {
	zerox        zerox.Client
	formatter    amountfmt.AmountFormatter
	defaultTaker domain.Address
	met          metrics.Service
}

func NewQuoteUseCase(cfg *QuoteUseCaseCfg) quote.Usecase {
	return &quoteUseCase{
		zerox:        cfg.Zerox,
		formatter:    cfg.Formatter,
		defaultTaker: cfg.DefaultTaker,
		met:          metrics.New("quote"),
	}
}

// GetQuote fires a single provider call. The wall clock around the call
// lands in the result as seconds, a failed call is terminal, no retry.
func (u *quoteUseCase) GetQuote(ctx bCtx.Ctx, req *quote.Request) *quote.Result {
	name := u.zerox.Name()

	r := *req
	if r.Taker.IsEmpty() {
		r.Taker = u.defaultTaker
	}

	start := time.Now()
	resp, err := u.zerox.GetQuote(ctx, &r)
	elapsed := time.Since(start).Seconds()
	u.met.BumpHistogram("zerox.latency", elapsed*1000)

	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId":   r.ChainId,
			"sellToken": r.SellToken,
			"buyToken":  r.BuyToken,
			"err":       err,
		}).Error("zerox.GetQuote failed")
		u.met.BumpSum("get_quote.err", 1)
		var statusCode *int
		if resp != nil {
			statusCode = ptr.Int(resp.StatusCode)
		}
		return quote.NewFailure(name, err.Error(), elapsed, statusCode)
	}

	body := &zerox.QuoteBody{}
	if err := json.Unmarshal(resp.Body, body); err != nil {
		ctx.WithFields(log.Fields{
			"chainId":  r.ChainId,
			"buyToken": r.BuyToken,
			"err":      err,
		}).Error("json.Unmarshal failed")
		u.met.BumpSum("get_quote.err", 1)
		return quote.NewFailure(name, err.Error(), elapsed, ptr.Int(resp.StatusCode))
	}

	var outputAmount *string
	if body.BuyAmount != "" {
		outputAmount = ptr.String(u.formatter.FormatBaseUnits(ctx, r.BuyToken, body.BuyAmount))
	}

	return quote.NewSuccess(name, outputAmount, elapsed, resp.StatusCode, resp.Body)
}
