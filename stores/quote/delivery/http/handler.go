package http

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/base/delivery"
	"github.com/swaplens/goapi/base/validator"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/quote"
)

type handler struct {
	quote quote.Usecase
}

func New(e *echo.Echo, quoteUseCase quote.Usecase) {
	h := &handler{
		quote: quoteUseCase,
	}

	g := e.Group("/quotes")
	g.GET("", h.getQuote)
}

// getQuote
//
//	@Summary		Fetch a swap quote
//	@Description	Fetch one indicative quote from the provider and normalize the buy amount to decimal units
//	@Tags			quotes
//	@Accept			json
//	@Produce		json
//	@Param			chainId		query		int		true	"chain id. e.g: `999` for hyperevm"	example(999)
//	@Param			sellToken	query		string	true	"sell token contract address"	example(0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34)
//	@Param			buyToken	query		string	true	"buy token contract address"	example(0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb)
//	@Param			sellAmount	query		string	true	"sell amount in the sell token's base units"	example(1000000000000000000)
//	@Param			taker		query		string	false	"taker address, defaults to the configured taker"
//	@Success		200	{object}	quote.Result
//	@Failure		400
//	@Router			/quotes [get]
func (h *handler) getQuote(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId    domain.ChainId `query:"chainId" validate:"required"`
		SellToken  domain.Address `query:"sellToken" validate:"required"`
		BuyToken   domain.Address `query:"buyToken" validate:"required"`
		SellAmount string         `query:"sellAmount" validate:"required"`
		Taker      domain.Address `query:"taker"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if !validator.IsValidAddress(string(p.SellToken)) || !validator.IsValidAddress(string(p.BuyToken)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	if !p.Taker.IsEmpty() && !validator.IsValidAddress(string(p.Taker)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	if _, ok := new(big.Int).SetString(p.SellAmount, 10); !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	res := h.quote.GetQuote(ctx, &quote.Request{
		ChainId:    p.ChainId,
		SellToken:  p.SellToken,
		BuyToken:   p.BuyToken,
		SellAmount: p.SellAmount,
		Taker:      p.Taker,
	})

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
