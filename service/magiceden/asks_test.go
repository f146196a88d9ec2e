package magiceden

import (
	"encoding/json"
	"io/ioutil"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/magiceden-go/base/ptr"
	"github.com/x-xyz/magiceden-go/domain"
)

func Test_AsksRequest_Values(t *testing.T) {
	req := require.New(t)
	maker := domain.Address("0xF296178d553C8Ec21A2fBD2c5dDa8CA9ac905A00")
	sortBy := SortByPrice
	r := &AsksRequest{
		Ids:   []string{"0xaaa", "0xbbb", "0xccc"},
		Maker: &maker,
		Contracts: []domain.Address{
			"0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63",
			"0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
		},
		Native:         ptr.Bool(true),
		ExcludeEOA:     ptr.Bool(false),
		StartTimestamp: ptr.Uint64(1716883200),
		SortBy:         &sortBy,
		Continuation:   ptr.String("MTcxNjg4MzIwMA"),
		Limit:          ptr.Uint16(50),
	}
	params := r.Values()

	// array fields repeat the key once per element, in order
	req.Equal([]string{"0xaaa", "0xbbb", "0xccc"}, params["ids"])
	req.Equal([]string{
		"0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63",
		"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
	}, params["contracts"])
	req.Contains(params.Encode(), "ids=0xaaa&ids=0xbbb&ids=0xccc")

	req.Equal("0xf296178d553c8ec21a2fbd2c5dda8ca9ac905a00", params.Get("maker"))
	req.Equal("true", params.Get("native"))
	req.Equal("false", params.Get("excludeEOA"))
	req.Equal("1716883200", params.Get("startTimestamp"))
	req.Equal("price", params.Get("sortBy"))
	req.Equal("MTcxNjg4MzIwMA", params.Get("continuation"))
	req.Equal("50", params.Get("limit"))
}

func Test_AsksRequest_Values_Empty(t *testing.T) {
	req := require.New(t)
	params := (&AsksRequest{}).Values()
	req.Empty(params)
	req.Equal("", params.Encode())
}

func Test_AsksResponse_Fixture(t *testing.T) {
	req := require.New(t)
	data, err := ioutil.ReadFile("testdata/response_asks.json")
	req.NoError(err)

	res := &AsksResponse{}
	req.NoError(json.Unmarshal(data, res))
	req.Len(res.Orders, 2)

	order := res.Orders[0]
	req.Equal("0x5844792a36ff5966a325d2180ebda80f8f63a7f3d4585e1c88615a111ce42942", order.Id)
	req.Equal(OrderKindPaymentProcessorV2, order.Kind)
	req.Equal(SideSell, order.Side)
	req.Equal(domain.Address("0xf296178d553c8ec21a2fbd2c5dda8ca9ac905a00"), order.Maker)
	req.Equal(2024, order.CreatedAt.Year())
	req.NotNil(order.Criteria)
	req.Equal(domain.TokenId("123"), order.Criteria.Data.Token.TokenId)
	req.Equal("magiceden.io", order.Source["domain"])

	req.NotNil(order.Price)
	display, err := order.Price.DisplayAmount()
	req.NoError(err)
	req.True(display.Equal(decimal.RequireFromString("1.5")))

	req.NotNil(res.Continuation)
}

func Test_AsksResponse_MissingOrders(t *testing.T) {
	req := require.New(t)
	res := &AsksResponse{}
	req.Error(json.Unmarshal([]byte(`{"continuation":null}`), res))
}

func Test_Price_DisplayAmount_BadRaw(t *testing.T) {
	req := require.New(t)
	p := &Price{
		Currency: Currency{Decimals: 18},
		Amount:   Amount{Raw: "not-a-number"},
	}
	_, err := p.DisplayAmount()
	req.ErrorIs(err, ErrParseRawAmount)
}
