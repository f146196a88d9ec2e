package magiceden

import (
	"encoding/json"
	"math/big"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/magiceden-go/domain"
	"golang.org/x/xerrors"
)

type SortBy string

const (
	SortByCreatedAt SortBy = "createdAt"
	SortByUpdatedAt SortBy = "updatedAt"
	SortByPrice     SortBy = "price"
)

// AsksRequest filters an ask query. Every field is optional; a zero
// request asks for an unfiltered page.
type AsksRequest struct {
	Ids []string
	// Filter to a particular token. Example: 0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63:123
	Token *string
	// Filter to a particular set, e.g. contract:0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63
	TokenSetId *string
	// Filter to a particular maker. Example: 0xF296178d553C8Ec21A2fBD2c5dDa8CA9ac905A00
	Maker *domain.Address
	// Filter to a particular community. Example: artblocks
	Community       *string
	CollectionSetId *string
	ContractSetId   *string
	Contracts       []domain.Address
	// active / inactive / expired / cancelled / filled / any; which values
	// are accepted depends on whether an id, maker or contract is passed
	Status  *string
	Sources []string
	// If true, results will filter only Reservoir orders
	Native *bool
	// If true, private orders are included in the response
	IncludePrivate *bool
	// If true, criteria metadata is included in the response
	IncludeCriteriaMetadata *bool
	// If true, raw data is included in the response
	IncludeRawData *bool
	// If true, dynamic pricing data will be returned in the response
	IncludeDynamicPricing *bool
	// Exclude orders that can only be filled by EOAs, to support filling with smart contracts
	ExcludeEOA     *bool
	ExcludeSources []string
	// Get orders after a particular unix timestamp (inclusive)
	StartTimestamp *uint64
	// Get orders before a particular unix timestamp (inclusive)
	EndTimestamp *uint64
	// If true, prices will include missing royalties to be added on-top
	NormalizeRoyalties *bool
	// Sorting by price is ascending order only
	SortBy        *SortBy
	SortDirection *string
	// Use continuation token to request next offset of items
	Continuation *string
	// Amount of items returned in response. Max limit is 1000
	Limit *uint16
	// Return result in given currency
	DisplayCurrency *string
}

// Values encodes the request as url query parameters. The rtp api expects
// array filters as a sequence of parameters with the same key
// (e.g. ?contracts=0x..&contracts=0x..), so every slice field repeats its
// key once per element, preserving element order.
func (r *AsksRequest) Values() url.Values {
	params := url.Values{}
	for _, id := range r.Ids {
		params.Add("ids", id)
	}
	if r.Token != nil {
		params.Add("token", *r.Token)
	}
	if r.TokenSetId != nil {
		params.Add("tokenSetId", *r.TokenSetId)
	}
	if r.Maker != nil {
		params.Add("maker", r.Maker.ToLowerStr())
	}
	if r.Community != nil {
		params.Add("community", *r.Community)
	}
	if r.CollectionSetId != nil {
		params.Add("collectionSetId", *r.CollectionSetId)
	}
	if r.ContractSetId != nil {
		params.Add("contractSetId", *r.ContractSetId)
	}
	for _, contract := range r.Contracts {
		params.Add("contracts", contract.ToLowerStr())
	}
	if r.Status != nil {
		params.Add("status", *r.Status)
	}
	for _, source := range r.Sources {
		params.Add("sources", source)
	}
	if r.Native != nil {
		params.Add("native", strconv.FormatBool(*r.Native))
	}
	if r.IncludePrivate != nil {
		params.Add("includePrivate", strconv.FormatBool(*r.IncludePrivate))
	}
	if r.IncludeCriteriaMetadata != nil {
		params.Add("includeCriteriaMetadata", strconv.FormatBool(*r.IncludeCriteriaMetadata))
	}
	if r.IncludeRawData != nil {
		params.Add("includeRawData", strconv.FormatBool(*r.IncludeRawData))
	}
	if r.IncludeDynamicPricing != nil {
		params.Add("includeDynamicPricing", strconv.FormatBool(*r.IncludeDynamicPricing))
	}
	if r.ExcludeEOA != nil {
		params.Add("excludeEOA", strconv.FormatBool(*r.ExcludeEOA))
	}
	for _, source := range r.ExcludeSources {
		params.Add("excludeSources", source)
	}
	if r.StartTimestamp != nil {
		params.Add("startTimestamp", strconv.FormatUint(*r.StartTimestamp, 10))
	}
	if r.EndTimestamp != nil {
		params.Add("endTimestamp", strconv.FormatUint(*r.EndTimestamp, 10))
	}
	if r.NormalizeRoyalties != nil {
		params.Add("normalizeRoyalties", strconv.FormatBool(*r.NormalizeRoyalties))
	}
	if r.SortBy != nil {
		params.Add("sortBy", string(*r.SortBy))
	}
	if r.SortDirection != nil {
		params.Add("sortDirection", *r.SortDirection)
	}
	if r.Continuation != nil {
		params.Add("continuation", *r.Continuation)
	}
	if r.Limit != nil {
		params.Add("limit", strconv.FormatUint(uint64(*r.Limit), 10))
	}
	if r.DisplayCurrency != nil {
		params.Add("displayCurrency", *r.DisplayCurrency)
	}
	return params
}

type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

type OrderStatus string

const (
	OrderStatusActive   OrderStatus = "active"
	OrderStatusInactive OrderStatus = "inactive"
	OrderStatusExpired  OrderStatus = "expired"
	OrderStatusCanceled OrderStatus = "canceled"
	OrderStatusFilled   OrderStatus = "filled"
)

// OrderKind tags the marketplace protocol an order settles through
type OrderKind string

const (
	OrderKindBlur               OrderKind = "blur"
	OrderKindSeaportV14         OrderKind = "seaport-v1.4"
	OrderKindSeaportV15         OrderKind = "seaport-v1.5"
	OrderKindSeaportV16         OrderKind = "seaport-v1.6"
	OrderKindX2Y2               OrderKind = "x2y2"
	OrderKindLooksRareV2        OrderKind = "looks-rare-v2"
	OrderKindSuperrare          OrderKind = "superrare"
	OrderKindPaymentProcessorV2 OrderKind = "payment-processor-v2"
	OrderKindElementErc721      OrderKind = "element-erc721"
	OrderKindFoundation         OrderKind = "foundation"
	OrderKindRarible            OrderKind = "rarible"
	OrderKindCaviarV1           OrderKind = "caviar-v1"
	OrderKindNFTX               OrderKind = "nftx"
	OrderKindSudoswap           OrderKind = "sudoswap"
	OrderKindSudoswapV2         OrderKind = "sudoswap-v2"
	OrderKindPaymentProcessor   OrderKind = "payment-processor"
	OrderKindAlienswap          OrderKind = "alienswap"
	OrderKindManifold           OrderKind = "manifold"
	OrderKindCryptopunks        OrderKind = "cryptopunks"
	OrderKindZeroExV4Erc721     OrderKind = "zeroex-v4-erc721"
	OrderKindZeroExV4Erc1155    OrderKind = "zeroex-v4-erc1155"
	OrderKindMintify            OrderKind = "mintify"
)

type Currency struct {
	Contract domain.Address `json:"contract"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
}

// Amount is one price figure in its raw on-chain, decimal, usd and
// native-coin views
type Amount struct {
	Raw     string  `json:"raw"`
	Decimal float64 `json:"decimal"`
	Usd     float64 `json:"usd"`
	Native  float64 `json:"native"`
}

type Price struct {
	Currency  Currency `json:"currency"`
	Amount    Amount   `json:"amount"`
	NetAmount Amount   `json:"netAmount"`
}

// DisplayAmount returns the raw on-chain amount scaled down by the
// currency decimals
func (p *Price) DisplayAmount() (decimal.Decimal, error) {
	n, ok := new(big.Int).SetString(p.Amount.Raw, 10)
	if !ok {
		return decimal.Zero, ErrParseRawAmount
	}
	return decimal.NewFromBigInt(n, -int32(p.Currency.Decimals)), nil
}

type Token struct {
	TokenId domain.TokenId `json:"tokenId"`
	Name    string         `json:"name"`
	Image   string         `json:"image"`
}

type Collection struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type CriteriaData struct {
	Token      *Token      `json:"token"`
	Collection *Collection `json:"collection"`
}

type Criteria struct {
	Kind string       `json:"kind"`
	Data CriteriaData `json:"data"`
}

type FeeBreakdown struct {
	// Can be marketplace or royalty
	Kind      string         `json:"kind"`
	Recipient domain.Address `json:"recipient"`
	Bps       uint64         `json:"bps"`
}

type Depth struct {
	Price    uint64 `json:"price"`
	Quantity uint64 `json:"quantity"`
}

// Order is a snapshot of a sell order as indexed by the marketplace; the
// client never mutates it
type Order struct {
	Id                 string            `json:"id"`
	Kind               OrderKind         `json:"kind"`
	Side               Side              `json:"side"`
	Status             OrderStatus       `json:"status"`
	TokenSetId         string            `json:"tokenSetId"`
	TokenSetSchemaHash string            `json:"tokenSetSchemaHash"`
	Contract           *domain.Address   `json:"contract"`
	ContractKind       *string           `json:"contractKind"`
	Maker              domain.Address    `json:"maker"`
	Taker              domain.Address    `json:"taker"`
	Price              *Price            `json:"price"`
	ValidFrom          uint64            `json:"validFrom"`
	ValidUntil         uint64            `json:"validUntil"`
	QuantityFilled     *uint64           `json:"quantityFilled"`
	QuantityRemaining  *uint64           `json:"quantityRemaining"`
	Criteria           *Criteria         `json:"criteria"`
	Source             map[string]string `json:"source"`
	FeeBps             *uint64           `json:"feeBps"`
	FeeBreakdown       []FeeBreakdown    `json:"feeBreakdown"`
	Expiration         uint64            `json:"expiration"`
	IsReservoir        *bool             `json:"isReservoir"`
	IsDynamic          *bool             `json:"isDynamic"`
	// Time when added to indexer
	CreatedAt time.Time `json:"createdAt"`
	// Time when updated in indexer
	UpdatedAt time.Time `json:"updatedAt"`
	// Time when created by maker
	OriginatedAt                *time.Time        `json:"originatedAt"`
	RawData                     map[string]string `json:"rawData"`
	IsNativeOffChainCancellable *bool             `json:"isNativeOffChainCancellable"`
	Depth                       []Depth           `json:"depth"`
}

// AsksResponse is one page of asks. Continuation is set iff more results
// exist.
type AsksResponse struct {
	Orders       []Order `json:"orders"`
	Continuation *string `json:"continuation"`
}

func (r *AsksResponse) UnmarshalJSON(data []byte) error {
	var w struct {
		Orders       *[]Order `json:"orders"`
		Continuation *string  `json:"continuation"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Orders == nil {
		return xerrors.New("missing field orders")
	}
	r.Orders = *w.Orders
	r.Continuation = w.Continuation
	return nil
}
