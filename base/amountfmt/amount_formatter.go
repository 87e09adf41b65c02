package amountfmt

import (
	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
)

// AmountFormatter renders raw base-unit token amounts as decimal display
// strings using the token decimals on record.
type AmountFormatter interface {
	FormatBaseUnits(ctx bCtx.Ctx, token domain.Address, raw string) string
}
