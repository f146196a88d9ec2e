package magiceden

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/magiceden-go/base/ctx"
	"github.com/x-xyz/magiceden-go/base/log"
	"github.com/x-xyz/magiceden-go/base/validator"
	"github.com/x-xyz/magiceden-go/domain"
	"golang.org/x/xerrors"
)

// NewClient builds a Client bound to cfg.Chain. The returned client keeps
// no mutable state after construction and is safe to share across
// goroutines.
func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		apikey:  cfg.Apikey,
		chain:   cfg.Chain,
		url:     newApiUrl(cfg.Chain, cfg.BaseUrl),
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	apikey  string
	chain   domain.Chain
	url     apiUrl
}

// RetrieveAsks decodes the body as AsksResponse whatever status code the
// api returned; an error body therefore surfaces as a *ResponseParseError
// carrying the actual status.
func (c *client) RetrieveAsks(ctx bCtx.Ctx, req *AsksRequest) (*AsksResponse, error) {
	url := c.url.retrieveAsks(c.chain, req.Values().Encode())
	body, statusCode, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.do failed")
		return nil, err
	}
	resp := &AsksResponse{}
	if err := json.Unmarshal(body, resp); err != nil {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": statusCode,
			"err":        err,
		}).Error("json.Unmarshal failed")
		return nil, &ResponseParseError{Body: string(body), StatusCode: statusCode, Reason: err.Error()}
	}
	return resp, nil
}

func (c *client) BuyTokens(ctx bCtx.Ctx, req *BuyTokensRequest) (*BuyTokensResponse, error) {
	if err := validator.Struct(req); err != nil {
		ctx.WithField("err", err).Error("invalid buy tokens request")
		return nil, xerrors.Errorf("validate buy tokens request: %w", domain.ErrBadParamInput)
	}
	if !validator.IsValidAddress(string(req.Taker)) {
		ctx.WithField("taker", req.Taker).Error("invalid taker address")
		return nil, domain.ErrInvalidAddress
	}

	payload, err := json.Marshal(req)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}

	url := c.url.buyTokens(c.chain)
	body, statusCode, err := c.do(ctx, http.MethodPost, url, payload)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.do failed")
		return nil, err
	}

	if statusCode == http.StatusBadRequest {
		buyErr := &BuyTokensErrorResponse{}
		if err := json.Unmarshal(body, buyErr); err != nil {
			return nil, &ResponseParseError{Body: string(body), StatusCode: statusCode, Reason: err.Error()}
		}
		return nil, buyErr
	} else if statusCode == http.StatusGone {
		filledErr := &OrderAlreadyFilledError{}
		if err := json.Unmarshal(body, filledErr); err != nil {
			return nil, &ResponseParseError{Body: string(body), StatusCode: statusCode, Reason: err.Error()}
		}
		return nil, filledErr
	}
	if statusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": statusCode,
		}).Error("unexpected status code")
		return nil, &ServerError{StatusCode: statusCode, Body: string(body)}
	}

	resp := &BuyTokensResponse{}
	if err := json.Unmarshal(body, resp); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("json.Unmarshal failed")
		return nil, &ResponseParseError{Body: string(body), StatusCode: statusCode, Reason: err.Error()}
	}
	return resp, nil
}

// do performs one round trip and hands back the raw status and body; the
// callers own status interpretation
func (c *client) do(ctx bCtx.Ctx, method, url string, payload []byte) ([]byte, int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = bCtx.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, 0, &TransportError{Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apikey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apikey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, 0, &TransportError{Err: err}
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, 0, &TransportError{Err: err}
	}
	return body, resp.StatusCode, nil
}
