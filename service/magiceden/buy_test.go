package magiceden

import (
	"encoding/json"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/magiceden-go/base/ptr"
)

func Test_BuyTokensRequest_Marshal(t *testing.T) {
	req := require.New(t)
	r := &BuyTokensRequest{
		Items: []Listing{
			{OrderId: ptr.String("0x260a17195de36319209a099f2f90527b7e40e99724e7f8426e947c8f7b325e8d")},
		},
		Taker: testTaker,
	}
	data, err := json.Marshal(r)
	req.NoError(err)
	// absent optional fields must not show up in the payload
	req.JSONEq(`{
		"items": [{"orderId": "0x260a17195de36319209a099f2f90527b7e40e99724e7f8426e947c8f7b325e8d"}],
		"taker": "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	}`, string(data))
}

func Test_BuyTokensRequest_MarshalCollectionFill(t *testing.T) {
	req := require.New(t)
	fillMethod := FillMethodPreferMint
	r := &BuyTokensRequest{
		Items: []Listing{
			{
				Collection: ptr.String("0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63"),
				Quantity:   ptr.Uint16(2),
				FillMethod: &fillMethod,
			},
		},
		Taker:   testTaker,
		Partial: ptr.Bool(true),
	}
	data, err := json.Marshal(r)
	req.NoError(err)
	req.JSONEq(`{
		"items": [{
			"collection": "0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63",
			"quantity": 2,
			"fillMethod": "preferMint"
		}],
		"taker": "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		"partial": true
	}`, string(data))
}

func Test_BuyTokensResponse_Fixture(t *testing.T) {
	req := require.New(t)
	data, err := ioutil.ReadFile("testdata/response_buy_magiceden.json")
	req.NoError(err)

	res := &BuyTokensResponse{}
	req.NoError(json.Unmarshal(data, res))
	req.Equal("6b70c917-1b7a-4b0b-a4e6-7f1c5f0b2d38", res.RequestId)
	req.Len(res.Steps, 2)
	req.Equal(StepKindSignature, res.Steps[0].Kind)
	req.Equal(StepKindTransaction, res.Steps[1].Kind)
	req.Equal(StepItemStatusIncomplete, res.Steps[1].Items[0].Status)
	req.Equal(uint64(193334), res.Steps[1].Items[0].GasEstimate)
	req.Equal(CheckMethodPost, res.Steps[1].Items[0].Check.Method)
	req.Empty(res.Errors)
	req.Len(res.Path, 1)
	req.Equal("837", res.Path[0].TokenId.String())
	req.Equal(uint16(1), res.Path[0].Quantity)
	req.Len(res.Path[0].BuiltInFees, 1)
	req.Equal(uint64(250), res.Path[0].BuiltInFees[0].Bps)
}

func Test_BuyTokensResponse_MissingFields(t *testing.T) {
	tests := []struct {
		desc string
		body string
	}{
		{"missing requestId", `{"steps":[],"errors":[],"path":[]}`},
		{"missing steps", `{"requestId":"x","errors":[],"path":[]}`},
		{"missing path", `{"requestId":"x","steps":[],"errors":[]}`},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			res := &BuyTokensResponse{}
			require.Error(t, json.Unmarshal([]byte(test.body), res))
		})
	}
}
