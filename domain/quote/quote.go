package quote

import (
	"encoding/json"

	"github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
)

// Request carries a single swap quote lookup against one provider.
type Request struct {
	ChainId    domain.ChainId
	SellToken  domain.Address
	BuyToken   domain.Address
	SellAmount string
	Taker      domain.Address
}

// Result is the outcome of one provider quote. Error marks the failure
// arm, a result without Error is a success and carries the raw provider
// response. StatusCode is nil when the request never reached the
// provider.
type Result struct {
	Name         string          `json:"name"`
	OutputAmount *string         `json:"outputAmount,omitempty"`
	ElapsedTime  float64         `json:"elapsedTime"`
	StatusCode   *int            `json:"statusCode"`
	RawResponse  json.RawMessage `json:"rawResponse,omitempty"`
	Error        *string         `json:"error,omitempty"`
}

func NewSuccess(name string, outputAmount *string, elapsedTime float64, statusCode int, rawResponse json.RawMessage) *Result {
	return &Result{
		Name:         name,
		OutputAmount: outputAmount,
		ElapsedTime:  elapsedTime,
		StatusCode:   &statusCode,
		RawResponse:  rawResponse,
	}
}

func NewFailure(name string, errMessage string, elapsedTime float64, statusCode *int) *Result {
	return &Result{
		Name:        name,
		ElapsedTime: elapsedTime,
		StatusCode:  statusCode,
		Error:       &errMessage,
	}
}

// Ok reports whether the quote succeeded.
func (r *Result) Ok() bool {
	return r.Error == nil
}

type Usecase interface {
	// GetQuote always returns a result, provider and transport failures
	// are carried inside it instead of an error return.
	GetQuote(ctx.Ctx, *Request) *Result
}
