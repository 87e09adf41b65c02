package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/base/delivery"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/middleware"
)

type handler struct {
	tokens domain.TokenRepo
}

func New(e *echo.Echo, tokens domain.TokenRepo) {
	h := &handler{
		tokens: tokens,
	}

	g := e.Group("/tokens")
	g.GET("", h.getTokens, middleware.CacheHttp(10*time.Minute))
	g.GET("/:address", h.getToken, middleware.IsValidAddress("address"), middleware.CacheHttp(10*time.Minute))
	g.GET("/:address/decimals", h.getTokenDecimals, middleware.IsValidAddress("address"), middleware.CacheHttp(10*time.Minute))
}

// getTokens
//
//	@Summary		List tokens
//	@Description	List every token in the decimals table
//	@Tags			tokens
//	@Produce		json
//	@Success		200	{object}	[]domain.Token
//	@Router			/tokens [get]
func (h *handler) getTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.tokens.FindAll(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getToken
//
//	@Summary		Get token
//	@Description	Get one token by contract address, lookups are case insensitive
//	@Tags			tokens
//	@Produce		json
//	@Param			address	path		string	true	"token contract address"	example(0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb)
//	@Success		200		{object}	domain.Token
//	@Failure		400
//	@Failure		404
//	@Router			/tokens/{address} [get]
func (h *handler) getToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address domain.Address `param:"address" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.tokens.FindOne(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getTokenDecimals
//
//	@Summary		Get token decimals
//	@Description	Get the decimal count used to normalize raw base-unit amounts of the token
//	@Tags			tokens
//	@Produce		json
//	@Param			address	path		string	true	"token contract address"	example(0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb)
//	@Success		200		{object}	int32
//	@Failure		400
//	@Failure		404
//	@Router			/tokens/{address}/decimals [get]
func (h *handler) getTokenDecimals(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address domain.Address `param:"address" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.tokens.FindDecimals(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
