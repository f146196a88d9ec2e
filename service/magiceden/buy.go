package magiceden

import (
	"encoding/json"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/magiceden-go/domain"
	"golang.org/x/xerrors"
)

// FillMethod picks how a collection listing is satisfied
type FillMethod string

const (
	FillMethodTrade      FillMethod = "trade"
	FillMethodMint       FillMethod = "mint"
	FillMethodPreferMint FillMethod = "preferMint"
)

type SwapProvider string

const (
	SwapProviderUniswap SwapProvider = "uniswap"
	SwapProviderOneInch SwapProvider = "1inch"
)

type ExecutionMethod string

const (
	ExecutionMethodSeaportV15Intent ExecutionMethod = "seaport-v1.5-intent"
)

// RawOrderKind tags the protocol of a raw order passed for filling
type RawOrderKind string

const (
	RawOrderKindOpenSea     RawOrderKind = "opensea"
	RawOrderKindBlurPartial RawOrderKind = "blur-partial"
	RawOrderKindLooksRare   RawOrderKind = "looks-rare"
	RawOrderKindZeroExV4    RawOrderKind = "zeroex-v4"
	RawOrderKindSeaport     RawOrderKind = "seaport"
	RawOrderKindSeaportV14  RawOrderKind = "seaport-v1.4"
	RawOrderKindSeaportV15  RawOrderKind = "seaport-v1.5"
	RawOrderKindSeaportV16  RawOrderKind = "seaport-v1.6"
	RawOrderKindX2Y2        RawOrderKind = "x2y2"
	RawOrderKindRarible     RawOrderKind = "rarible"
	RawOrderKindSudoswap    RawOrderKind = "sudoswap"
	RawOrderKindNFTX        RawOrderKind = "nftx"
	RawOrderKindAlienswap   RawOrderKind = "alienswap"
	RawOrderKindMint        RawOrderKind = "mint"
)

type RawOrder struct {
	Kind RawOrderKind      `json:"kind"`
	Data map[string]string `json:"data"`
}

type ExcludeItem struct {
	OrderId string `json:"orderId"`
	Price   string `json:"price"`
}

// Listing is one line-item of a buy: either a known order id (or raw
// order), or a collection/token plus criteria to match against
type Listing struct {
	// Collection to buy
	Collection *string `json:"collection,omitempty"`
	// Token to buy
	Token *string `json:"token,omitempty"`
	// Quantity of tokens to buy
	Quantity *uint16 `json:"quantity,omitempty"`
	// Optional order id to fill
	OrderId *string `json:"orderId,omitempty"`
	// Optional raw order to fill
	RawOrder *RawOrder `json:"rawOrder,omitempty"`
	// Only relevant when filling via collection. Default: preferMint
	FillMethod *FillMethod `json:"fillMethod,omitempty"`
	// If there are multiple listings with equal best price, prefer this
	// source over others. Filling a listing that is not the best priced
	// needs a specific order id or exactOrderSource.
	PreferredOrderSource *string `json:"preferredOrderSource,omitempty"`
	// Only consider orders from this source
	ExactOrderSource *string `json:"exactOrderSource,omitempty"`
	// Items to exclude
	Exclusions []ExcludeItem `json:"exclusions,omitempty"`
}

type BuyTokensRequest struct {
	// List of items to buy
	Items []Listing `json:"items" validate:"required,min=1"`
	// Address of wallet filling (receiver of the NFT)
	Taker domain.Address `json:"taker" validate:"required"`
	// Address of wallet relaying the fill transaction (paying for the NFT)
	Relayer *domain.Address `json:"relayer,omitempty"`
	// If true, only the path will be returned
	OnlyPath *bool `json:"onlyPath,omitempty"`
	// If true, all fills will be executed through the router (where possible)
	ForceRouter *bool `json:"forceRouter,omitempty"`
	// Currency to be used for purchases
	Currency *string `json:"currency,omitempty"`
	// The chain id of the purchase currency
	CurrencyChainId *uint16 `json:"currencyChainId,omitempty"`
	// Charge any missing royalties
	NormalizeRoyalties *bool `json:"normalizeRoyalties,omitempty"`
	// If true, inactive orders will not be skipped over (only relevant
	// when filling via a specific order id)
	AllowInactiveOrderIds *bool `json:"allowInactiveOrderIds,omitempty"`
	// Filling source used for attribution. Example: magiceden.io
	Source *string `json:"source,omitempty"`
	// List of fees (formatted as feeRecipient:feeAmount) to be taken when
	// filling. Example: 0xF296178d553C8Ec21A2fBD2c5dDa8CA9ac905A00:1000000000000000
	Fees []string `json:"fees,omitempty"`
	// If true, any off-chain or on-chain errors will be skipped
	Partial *bool `json:"partial,omitempty"`
	// If true, balance check will be skipped
	SkipBalanceCheck *bool `json:"skipBalanceCheck,omitempty"`
	// Exclude orders that can only be filled by EOAs. If marked true,
	// blur will be excluded.
	ExcludeEOA *bool `json:"excludeEOA,omitempty"`
	// Optional custom gas settings. Includes base fee & priority fee in
	// this limit.
	MaxFeePerGas *string `json:"maxFeePerGas,omitempty"`
	// Optional custom gas settings
	MaxPriorityFeePerGas *string `json:"maxPriorityFeePerGas,omitempty"`
	// When true, will use permit to avoid approvals
	Permit *bool `json:"permit,omitempty"`
	// Swapping provider when buying in a different currency. Default: uniswap
	SwapProvider *SwapProvider `json:"swapProvider,omitempty"`
	// Optional execution method to use for filling
	ExecutionMethod *ExecutionMethod `json:"executionMethod,omitempty"`
	// Referrer address (where supported)
	Referrer *domain.Address `json:"referrer,omitempty"`
	// Mint comment (where supported)
	Comment *string `json:"comment,omitempty"`
	// Optional X2Y2 api key used for filling
	X2y2ApiKey *string `json:"x2y2ApiKey,omitempty"`
	// Optional OpenSea api key used for filling; without one, fills are
	// more likely to be rate-limited
	OpenseaApiKey *string `json:"openseaApiKey,omitempty"`
	// Personal blurAuthToken; the api generates one if left empty
	BlurAuthToken *string `json:"blurAuthToken,omitempty"`
}

// StepKind separates off-chain signature steps from on-chain transactions
type StepKind string

const (
	StepKindSignature   StepKind = "signature"
	StepKindTransaction StepKind = "transaction"
)

type StepItemStatus string

const (
	StepItemStatusComplete   StepItemStatus = "complete"
	StepItemStatusIncomplete StepItemStatus = "incomplete"
)

type StepItemData struct {
	From  domain.Address `json:"from"`
	To    domain.Address `json:"to"`
	Data  string         `json:"data"`
	Value string         `json:"value"`
}

type CheckMethod string

const (
	CheckMethodPost CheckMethod = "POST"
)

type StepItemCheckBody struct {
	Kind StepKind `json:"kind"`
}

// StepItemCheck describes the endpoint for polling the status of a step
type StepItemCheck struct {
	Endpoint string            `json:"endpoint"`
	Method   CheckMethod       `json:"method"`
	Body     StepItemCheckBody `json:"body"`
}

type StepItem struct {
	Status   StepItemStatus `json:"status"`
	Tip      *string        `json:"tip"`
	OrderIds []string       `json:"orderIds"`
	Data     StepItemData   `json:"data"`
	// Approximation of gas used (only applies to transaction items)
	GasEstimate uint64        `json:"gasEstimate"`
	Check       StepItemCheck `json:"check"`
}

type MaxQuantity struct {
	ItemIndex   uint16 `json:"itemIndex"`
	MaxQuantity string `json:"maxQuantity"`
}

type BuyTokensStep struct {
	Id            string        `json:"id"`
	Action        string        `json:"action"`
	Description   string        `json:"description"`
	Kind          StepKind      `json:"kind"`
	Items         []StepItem    `json:"items"`
	MaxQuantities []MaxQuantity `json:"maxQuantities"`
}

// BuyTokenError is a per-order failure reported inside an otherwise
// successful buy response
type BuyTokenError struct {
	Message string `json:"message"`
	OrderId string `json:"orderId"`
}

type Fee struct {
	// Can be marketplace fee, royalty or referral fee
	Kind      string         `json:"kind"`
	Recipient domain.Address `json:"recipient"`
	Bps       uint64         `json:"bps"`
	Amount    float64        `json:"amount"`
	RawAmount string         `json:"rawAmount"`
}

// BuyTokenPath is the per-listing cost breakdown of a buy
type BuyTokenPath struct {
	OrderId               string         `json:"orderId"`
	Contract              domain.Address `json:"contract"`
	TokenId               domain.TokenId `json:"tokenId"`
	Quantity              uint16         `json:"quantity"`
	Source                string         `json:"source"`
	Currency              domain.Address `json:"currency"`
	CurrencySymbol        string         `json:"currencySymbol"`
	CurrencyDecimals      uint8          `json:"currencyDecimals"`
	Quote                 float64        `json:"quote"`
	RawQuote              string         `json:"rawQuote"`
	BuyInCurrency         *string        `json:"buyInCurrency"`
	BuyInCurrencySymbol   *string        `json:"buyInCurrencySymbol"`
	BuyInCurrencyDecimals *uint8         `json:"buyInCurrencyDecimals"`
	BuyInQuote            *float64       `json:"buyInQuote"`
	BuyInRawQuote         *string        `json:"buyInRawQuote"`
	TotalPrice            float64        `json:"totalPrice"`
	TotalRawPrice         string         `json:"totalRawPrice"`
	// Can be marketplace fees or royalties
	BuiltInFees []Fee `json:"builtInFees"`
	// Can be referral fees
	FeesOnTop   []Fee   `json:"feesOnTop"`
	FromChainId *uint16 `json:"fromChainId"`
}

// TotalRawPriceDecimal returns the raw total price scaled down by the
// currency decimals
func (p *BuyTokenPath) TotalRawPriceDecimal() (decimal.Decimal, error) {
	n, ok := new(big.Int).SetString(p.TotalRawPrice, 10)
	if !ok {
		return decimal.Zero, ErrParseRawAmount
	}
	return decimal.NewFromBigInt(n, -int32(p.CurrencyDecimals)), nil
}

// BuyTokensResponse groups execution steps by kind; Path has one entry per
// resolved listing, independent of how many steps they collapse into.
type BuyTokensResponse struct {
	RequestId string          `json:"requestId"`
	Steps     []BuyTokensStep `json:"steps"`
	Errors    []BuyTokenError `json:"errors"`
	Path      []BuyTokenPath  `json:"path"`
}

func (r *BuyTokensResponse) UnmarshalJSON(data []byte) error {
	var w struct {
		RequestId *string          `json:"requestId"`
		Steps     *[]BuyTokensStep `json:"steps"`
		Errors    []BuyTokenError  `json:"errors"`
		Path      *[]BuyTokenPath  `json:"path"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.RequestId == nil {
		return xerrors.New("missing field requestId")
	}
	if w.Steps == nil {
		return xerrors.New("missing field steps")
	}
	if w.Path == nil {
		return xerrors.New("missing field path")
	}
	r.RequestId = *w.RequestId
	r.Steps = *w.Steps
	r.Errors = w.Errors
	r.Path = *w.Path
	return nil
}
