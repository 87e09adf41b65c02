package usecase

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/swaplens/goapi/base/amountfmt"
	"github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/chain"
	"github.com/swaplens/goapi/domain/quote"
	"github.com/swaplens/goapi/service/zerox"
	mockZerox "github.com/swaplens/goapi/service/zerox/mocks"
	tokenRepo "github.com/swaplens/goapi/stores/token/repository"
)

var (
	mockCtx      = ctx.Background()
	defaultTaker = domain.Address("0x000000000000000000000000000000000000dead")
)

type testsuite struct {
	suite.Suite
	mockZerox *mockZerox.Client
	subject   quote.Usecase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockZerox = &mockZerox.Client{}
	t.mockZerox.On("Name").Return("0x")
	t.subject = NewQuoteUseCase(&QuoteUseCaseCfg{
		Zerox: t.mockZerox,
		Formatter: amountfmt.NewAmountFormatter(&amountfmt.AmountFormatterCfg{
			Tokens: tokenRepo.NewTokenRepo(chain.DefaultConfigs()),
		}),
		DefaultTaker: defaultTaker,
	})
}

func (t *testsuite) TestGetQuote() {
	body := json.RawMessage(`{"buyAmount":"2000000"}`)

	t.mockZerox.
		On("GetQuote", mockCtx, &quote.Request{
			ChainId:    999,
			SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
			BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
			SellAmount: "1000000000000000000",
			Taker:      defaultTaker,
		}).
		Return(&zerox.QuoteResp{StatusCode: http.StatusOK, Body: body}, nil)

	res := t.subject.GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
		BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
		SellAmount: "1000000000000000000",
	})

	t.True(res.Ok())
	t.Equal("0x", res.Name)
	t.Equal("2.0", *res.OutputAmount)
	t.Equal(http.StatusOK, *res.StatusCode)
	t.Equal(body, res.RawResponse)
	t.Nil(res.Error)
	t.GreaterOrEqual(res.ElapsedTime, float64(0))
}

func (t *testsuite) TestGetQuoteKeepsCallerTaker() {
	taker := domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952b")

	t.mockZerox.
		On("GetQuote", mockCtx, &quote.Request{
			ChainId:    999,
			SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
			BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
			SellAmount: "1000000000000000000",
			Taker:      taker,
		}).
		Return(&zerox.QuoteResp{StatusCode: http.StatusOK, Body: json.RawMessage(`{"buyAmount":"2000000"}`)}, nil)

	res := t.subject.GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
		BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
		SellAmount: "1000000000000000000",
		Taker:      taker,
	})

	t.True(res.Ok())
	t.mockZerox.AssertExpectations(t.T())
}

func (t *testsuite) TestGetQuoteUnknownBuyTokenKeepsRawAmount() {
	t.mockZerox.
		On("GetQuote", mockCtx, &quote.Request{
			ChainId:    999,
			SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
			BuyToken:   "0x1111111111111111111111111111111111111111",
			SellAmount: "1000000000000000000",
			Taker:      defaultTaker,
		}).
		Return(&zerox.QuoteResp{StatusCode: http.StatusOK, Body: json.RawMessage(`{"buyAmount":"123456"}`)}, nil)

	res := t.subject.GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
		BuyToken:   "0x1111111111111111111111111111111111111111",
		SellAmount: "1000000000000000000",
	})

	t.True(res.Ok())
	t.Equal("123456", *res.OutputAmount)
}

func (t *testsuite) TestGetQuoteWithoutBuyAmount() {
	t.mockZerox.
		On("GetQuote", mockCtx, &quote.Request{
			ChainId:    999,
			SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
			BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
			SellAmount: "1000000000000000000",
			Taker:      defaultTaker,
		}).
		Return(&zerox.QuoteResp{StatusCode: http.StatusOK, Body: json.RawMessage(`{"liquidityAvailable":false}`)}, nil)

	res := t.subject.GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
		BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
		SellAmount: "1000000000000000000",
	})

	t.True(res.Ok())
	t.Nil(res.OutputAmount)
	t.Equal(http.StatusOK, *res.StatusCode)
}

func (t *testsuite) TestGetQuoteStatusNotOk() {
	t.mockZerox.
		On("GetQuote", mockCtx, &quote.Request{
			ChainId:    999,
			SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
			BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
			SellAmount: "1000000000000000000",
			Taker:      defaultTaker,
		}).
		Return(&zerox.QuoteResp{StatusCode: http.StatusBadRequest, Body: json.RawMessage(`{"reason":"Validation Failed"}`)}, zerox.ErrStatusCodeNotOk)

	res := t.subject.GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
		BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
		SellAmount: "1000000000000000000",
	})

	t.False(res.Ok())
	t.Equal(zerox.ErrStatusCodeNotOk.Error(), *res.Error)
	t.Equal(http.StatusBadRequest, *res.StatusCode)
	t.Nil(res.OutputAmount)
	t.Nil(res.RawResponse)
}

func (t *testsuite) TestGetQuoteTransportError() {
	t.mockZerox.
		On("GetQuote", mockCtx, &quote.Request{
			ChainId:    999,
			SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
			BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
			SellAmount: "1000000000000000000",
			Taker:      defaultTaker,
		}).
		Return(nil, errors.New("context deadline exceeded"))

	res := t.subject.GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
		BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
		SellAmount: "1000000000000000000",
	})

	t.False(res.Ok())
	t.Equal("context deadline exceeded", *res.Error)
	t.Nil(res.StatusCode)
	t.Nil(res.OutputAmount)
}

func (t *testsuite) TestGetQuoteMalformedBody() {
	t.mockZerox.
		On("GetQuote", mockCtx, &quote.Request{
			ChainId:    999,
			SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
			BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
			SellAmount: "1000000000000000000",
			Taker:      defaultTaker,
		}).
		Return(&zerox.QuoteResp{StatusCode: http.StatusOK, Body: json.RawMessage(`not-json`)}, nil)

	res := t.subject.GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34",
		BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
		SellAmount: "1000000000000000000",
	})

	t.False(res.Ok())
	t.NotNil(res.Error)
	t.Equal(http.StatusOK, *res.StatusCode)
}
