package domain

// Chain selects the network a client talks to. Its string form is used
// verbatim as the network segment of rtp api paths.
type Chain string

const (
	ChainEthereum Chain = "ethereum"
	ChainGoerli   Chain = "goerli"
)

func (c Chain) String() string {
	return string(c)
}

// IsTestChain reports whether c is served by the testnet api host
func (c Chain) IsTestChain() bool {
	return c == ChainGoerli
}

func (c Chain) IsLiveChain() bool {
	return !c.IsTestChain()
}
