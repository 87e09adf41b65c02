package zerox

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/quote"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status not in 2xx")
)

// Client talks to the 0x swap allowance-holder quote api
type Client interface {
	// GetQuote fetches one indicative swap quote. On non-2xx the response
	// is returned together with ErrStatusCodeNotOk so callers keep access
	// to the provider status and body.
	GetQuote(ctx bCtx.Ctx, req *quote.Request) (*QuoteResp, error)
	Name() string
	SupportedChains() []domain.ChainId
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Url        string
	Apikey     string
}

type QuoteResp struct {
	StatusCode int
	Body       json.RawMessage
}

// QuoteBody is the subset of the quote payload consumed downstream
type QuoteBody struct {
	BuyAmount string `json:"buyAmount"`
}
