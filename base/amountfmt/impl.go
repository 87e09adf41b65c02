package amountfmt

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/base/log"
	"github.com/swaplens/goapi/domain"
)

type AmountFormatterCfg struct {
	Tokens domain.TokenRepo
}

type impl struct {
	tokens domain.TokenRepo
}

func NewAmountFormatter(cfg *AmountFormatterCfg) AmountFormatter {
	return &impl{
		tokens: cfg.Tokens,
	}
}

// FormatBaseUnits divides raw by 10^decimals of the given token and keeps
// at least one fractional digit. Unknown tokens and unparsable amounts
// degrade to the raw string untouched.
func (f *impl) FormatBaseUnits(ctx bCtx.Ctx, token domain.Address, raw string) string {
	decimals, err := f.tokens.FindDecimals(ctx, token)
	if err != nil {
		ctx.WithFields(log.Fields{
			"token": token,
			"err":   err,
		}).Warn("tokens.FindDecimals failed")
		return raw
	}
	val, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		ctx.WithFields(log.Fields{
			"token": token,
			"raw":   raw,
		}).Warn("amount is not a base-10 integer")
		return raw
	}
	formatted := decimal.NewFromBigInt(val, -decimals).String()
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}
