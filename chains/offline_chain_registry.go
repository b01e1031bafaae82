package chains

import (
	"fmt"
	"sort"
)

const publicRpcBase = "https://rpc.cosmos.directory/"

// Provides offline chain data, enough to seed a configuration file without network access.
type OfflineChainRegistry struct {
	ChainIDToData       map[string]*ChainData
	ChainNameToData     map[string]*ChainData
	AccountPrefixToData map[string]*ChainData
}

func NewOfflineChainRegistry() *OfflineChainRegistry {
	chainRegistry := &OfflineChainRegistry{
		ChainIDToData:       make(map[string]*ChainData),
		ChainNameToData:     make(map[string]*ChainData),
		AccountPrefixToData: make(map[string]*ChainData),
	}

	chainRegistry.addToRegistry("axelar", "axelar-dojo-1", "axelar", 118, "uaxl", 6, "0.007uaxl")
	chainRegistry.addToRegistry("cosmoshub", "cosmoshub-4", "cosmos", 118, "uatom", 6, "0.005uatom")
	chainRegistry.addToRegistry("gravitybridge", "gravity-bridge-3", "gravity", 118, "ugraviton", 6, "0ugraviton")
	chainRegistry.addToRegistry("juno", "juno-1", "juno", 118, "ujuno", 6, "0.075ujuno")
	chainRegistry.addToRegistry("mars", "mars-1", "mars", 118, "umars", 6, "0umars")
	chainRegistry.addToRegistry("neutron", "neutron-1", "neutron", 118, "untrn", 6, "0.0053untrn")
	chainRegistry.addToRegistry("osmosis", "osmosis-1", "osmo", 118, "uosmo", 6, "0.0025uosmo")
	chainRegistry.addToRegistry("sommelier", "sommelier-3", "somm", 118, "usomm", 6, "0usomm")
	chainRegistry.addToRegistry("stride", "stride-1", "stride", 118, "ustrd", 6, "0.0005ustrd")
	chainRegistry.addToRegistry("terra2", "phoenix-1", "terra", 330, "uluna", 6, "0.015uluna")

	return chainRegistry
}

// ChainByName looks up a chain by its registry name, for instance "cosmoshub".
func (cr *OfflineChainRegistry) ChainByName(chainName string) (*ChainData, error) {
	chainData, found := cr.ChainNameToData[chainName]
	if !found {
		return nil, fmt.Errorf("unknown chain %q, known chains are %v", chainName, cr.ChainNames())
	}
	return chainData, nil
}

// ChainNames returns every known chain name, sorted.
func (cr *OfflineChainRegistry) ChainNames() []string {
	names := make([]string, 0, len(cr.ChainNameToData))
	for name := range cr.ChainNameToData {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (cr *OfflineChainRegistry) addToRegistry(
	chainName string,
	chainID string,
	accountPrefix string,
	coinType uint32,
	nativeToken string,
	nativeTokenDecimals int,
	defaultGasPrice string,
) {
	chainData := &ChainData{
		ChainID:       chainID,
		ChainName:     chainName,
		AccountPrefix: accountPrefix,
		CoinType:      coinType,

		RpcUrl: publicRpcBase + chainName,

		NativeToken:         nativeToken,
		NativeTokenDecimals: nativeTokenDecimals,

		DefaultGasPrice: defaultGasPrice,
	}

	cr.ChainNameToData[chainName] = chainData
	cr.ChainIDToData[chainID] = chainData
	cr.AccountPrefixToData[accountPrefix] = chainData
}
