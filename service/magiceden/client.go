package magiceden

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/magiceden-go/base/ctx"
	"github.com/x-xyz/magiceden-go/domain"
)

var (
	ErrParseRawAmount = errors.New("parse raw amount error")
)

// Client talks to the Magic Eden rtp api
type Client interface {
	// RetrieveAsks lists sell orders matching req. Pagination is
	// caller-driven: pass AsksResponse.Continuation back in on the next
	// request to fetch the following page.
	RetrieveAsks(ctx bCtx.Ctx, req *AsksRequest) (*AsksResponse, error)
	// BuyTokens resolves the listings in req into the sequence of steps
	// the taker has to execute to fill them. The client performs no
	// on-chain execution itself.
	BuyTokens(ctx bCtx.Ctx, req *BuyTokensRequest) (*BuyTokensResponse, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	Chain      domain.Chain
	// BaseUrl overrides the chain-selected api host when non-empty
	BaseUrl string
}
