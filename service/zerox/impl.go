package zerox

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/base/log"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/quote"
)

const (
	providerName  = "0x"
	apiKeyHeader  = "0x-api-key"
	versionHeader = "0x-version"
	version       = "v2"
)

var supportedChains = []domain.ChainId{1, 10, 56, 137, 42161, 8453, 43114, 9745}

type client struct {
	client  http.Client
	timeout time.Duration
	url     string
	apikey  string
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		url:     cfg.Url,
		apikey:  cfg.Apikey,
	}
}

func (c *client) Name() string {
	return providerName
}

func (c *client) SupportedChains() []domain.ChainId {
	return supportedChains
}

func (c *client) GetQuote(ctx bCtx.Ctx, req *quote.Request) (*QuoteResp, error) {
	params := url.Values{
		"sellToken":  {string(req.SellToken)},
		"buyToken":   {string(req.BuyToken)},
		"sellAmount": {req.SellAmount},
		"taker":      {string(req.Taker)},
		"chainId":    {strconv.Itoa(int(req.ChainId))},
	}
	url := fmt.Sprintf("%s?%s", c.url, params.Encode())
	return c.get(ctx, url)
}

func (c *client) get(ctx bCtx.Ctx, url string) (*QuoteResp, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("accept", "*/*")
	req.Header.Set("content-type", "application/json")
	req.Header.Set(apiKeyHeader, c.apikey)
	req.Header.Set(versionHeader, version)
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return &QuoteResp{StatusCode: resp.StatusCode}, err
	}
	if resp.StatusCode/100 != 2 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode not in 2xx")
		return &QuoteResp{StatusCode: resp.StatusCode, Body: body}, ErrStatusCodeNotOk
	}
	return &QuoteResp{StatusCode: resp.StatusCode, Body: body}, nil
}
