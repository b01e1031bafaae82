package chains

type ChainData struct {
	ChainName     string
	ChainID       string
	AccountPrefix string
	CoinType      uint32

	RpcUrl string

	NativeToken         string
	NativeTokenDecimals int

	// Minimum gas price, as a decimal coin
	DefaultGasPrice string
}
