package magiceden

import (
	"fmt"

	"github.com/x-xyz/magiceden-go/domain"
)

const (
	apiBaseMainnet  = "https://api-mainnet.magiceden.dev"
	apiBaseTestnet  = "https://api-testnets.magiceden.dev"
	protocolVersion = "v3"
)

type apiUrl struct {
	base string
}

func newApiUrl(chain domain.Chain, override string) apiUrl {
	host := apiBaseMainnet
	if chain.IsTestChain() {
		host = apiBaseTestnet
	}
	if override != "" {
		host = override
	}
	return apiUrl{base: fmt.Sprintf("%s/%s", host, protocolVersion)}
}

func (u apiUrl) retrieveAsks(chain domain.Chain, query string) string {
	return fmt.Sprintf("%s/rtp/%s/orders/asks/v5?%s", u.base, chain, query)
}

func (u apiUrl) buyTokens(chain domain.Chain) string {
	return fmt.Sprintf("%s/rtp/%s/execute/buy/v7", u.base, chain)
}
