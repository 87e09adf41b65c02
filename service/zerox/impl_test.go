package zerox

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/quote"
)

var (
	mockCtx = bCtx.Background()
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) newClient(url string, timeout time.Duration) Client {
	return NewClient(&ClientCfg{
		Timeout: timeout,
		Url:     url,
		Apikey:  "test-key",
	})
}

func (t *testsuite) TestGetQuote() {
	var (
		gotQuery   url.Values
		gotHeaders http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotHeaders = r.Header.Clone()
		w.Write([]byte(`{"buyAmount":"2000000"}`))
	}))
	defer srv.Close()

	resp, err := t.newClient(srv.URL, time.Second).GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5555555555555555555555555555555555555555",
		BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
		SellAmount: "1000000000000000000",
		Taker:      "0x000000000000000000000000000000000000dead",
	})
	t.NoError(err)
	t.Equal(http.StatusOK, resp.StatusCode)
	t.Equal(`{"buyAmount":"2000000"}`, string(resp.Body))

	t.Equal("0x5555555555555555555555555555555555555555", gotQuery.Get("sellToken"))
	t.Equal("0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb", gotQuery.Get("buyToken"))
	t.Equal("1000000000000000000", gotQuery.Get("sellAmount"))
	t.Equal("0x000000000000000000000000000000000000dead", gotQuery.Get("taker"))
	t.Equal("999", gotQuery.Get("chainId"))

	t.Equal("*/*", gotHeaders.Get("accept"))
	t.Equal("application/json", gotHeaders.Get("content-type"))
	t.Equal("test-key", gotHeaders.Get(apiKeyHeader))
	t.Equal(version, gotHeaders.Get(versionHeader))
}

func (t *testsuite) TestGetQuoteStatusNotOk() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":100,"reason":"Validation Failed"}`))
	}))
	defer srv.Close()

	resp, err := t.newClient(srv.URL, time.Second).GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5555555555555555555555555555555555555555",
		BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
		SellAmount: "1000000000000000000",
	})
	t.Equal(ErrStatusCodeNotOk, err)
	t.Equal(http.StatusBadRequest, resp.StatusCode)
	t.Equal(`{"code":100,"reason":"Validation Failed"}`, string(resp.Body))
}

func (t *testsuite) TestGetQuoteTimeout() {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	resp, err := t.newClient(srv.URL, 50*time.Millisecond).GetQuote(mockCtx, &quote.Request{
		ChainId:    999,
		SellToken:  "0x5555555555555555555555555555555555555555",
		BuyToken:   "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb",
		SellAmount: "1000000000000000000",
	})
	t.Error(err)
	t.Nil(resp)
}

func (t *testsuite) TestName() {
	t.Equal("0x", t.newClient("http://localhost", time.Second).Name())
}

func (t *testsuite) TestSupportedChains() {
	t.Contains(t.newClient("http://localhost", time.Second).SupportedChains(), domain.ChainId(9745))
}
