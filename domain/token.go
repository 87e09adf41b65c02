package domain

import (
	"github.com/swaplens/goapi/base/ctx"
)

type Token struct {
	Address  Address `json:"address"`
	Symbol   string  `json:"symbol"`
	Decimals int32   `json:"decimals"`
}

type TokenRepo interface {
	FindOne(ctx.Ctx, Address) (*Token, error)
	FindAll(ctx.Ctx) ([]Token, error)
	FindDecimals(ctx.Ctx, Address) (int32, error)
}
