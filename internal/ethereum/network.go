package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Network is the chain definition handed to wallet_addEthereumChain.
type Network struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
}

// Sepolia is the only network purchases are made on. 0xaa36a7 is 11155111.
var Sepolia = Network{
	ChainID:   "0xaa36a7",
	ChainName: "Sepolia Test Network",
	NativeCurrency: NativeCurrency{
		Name:     "Sepolia Ether",
		Symbol:   "SEP",
		Decimals: 18,
	},
	RPCURLs:           []string{"https://sepolia.infura.io/v3/"},
	BlockExplorerURLs: []string{"https://sepolia.etherscan.io"},
}

// Matches reports whether chainID identifies this network. Hex ids are compared by value so
// "0xAA36A7" and "0xaa36a7" are the same chain.
func (n Network) Matches(chainID string) bool {
	want, errWant := hexutil.DecodeBig(n.ChainID)
	got, errGot := hexutil.DecodeBig(strings.ToLower(chainID))
	if errWant != nil || errGot != nil {
		return strings.EqualFold(n.ChainID, chainID)
	}
	return want.Cmp(got) == 0
}

// TransactionURL builds the block explorer link for a transaction hash.
func (n Network) TransactionURL(txHash string) string {
	if len(n.BlockExplorerURLs) == 0 {
		return ""
	}
	return fmt.Sprintf("%s/tx/%s", strings.TrimRight(n.BlockExplorerURLs[0], "/"), txHash)
}
