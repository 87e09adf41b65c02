package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/base/delivery"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/chain"
	"github.com/swaplens/goapi/middleware"
)

type handler struct {
	chain chain.Usecase
}

func New(e *echo.Echo, chainUseCase chain.Usecase) {
	h := &handler{
		chain: chainUseCase,
	}

	g := e.Group("/chains")
	g.GET("", h.getChains, middleware.CacheHttp(10*time.Minute))
	g.GET("/:chainId", h.getChain, middleware.CacheHttp(10*time.Minute))
	g.GET("/:chainId/tokens", h.getChainTokens, middleware.CacheHttp(10*time.Minute))
}

// getChains
//
//	@Summary		List chains
//	@Description	List the chain configs the quoting pipeline knows about
//	@Tags			chains
//	@Produce		json
//	@Success		200	{object}	[]chain.Config
//	@Router			/chains [get]
func (h *handler) getChains(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.chain.GetChains(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getChain
//
//	@Summary		Get chain
//	@Description	Get one chain config by chain id
//	@Tags			chains
//	@Produce		json
//	@Param			chainId	path		int	true	"chain id. e.g: `999` for hyperevm"	example(999)
//	@Success		200		{object}	chain.Config
//	@Failure		400
//	@Failure		404
//	@Router			/chains/{chainId} [get]
func (h *handler) getChain(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId domain.ChainId `param:"chainId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.chain.GetChain(ctx, p.ChainId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getChainTokens
//
//	@Summary		List chain tokens
//	@Description	List the tokens quoted against the chain's normalization token
//	@Tags			chains
//	@Produce		json
//	@Param			chainId	path		int	true	"chain id. e.g: `999` for hyperevm"	example(999)
//	@Success		200		{object}	[]domain.Token
//	@Failure		400
//	@Failure		404
//	@Router			/chains/{chainId}/tokens [get]
func (h *handler) getChainTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId domain.ChainId `param:"chainId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.chain.GetChain(ctx, p.ChainId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res.TradingTokens)
}
