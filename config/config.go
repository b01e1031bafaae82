package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tessellated-io/txclient/chains"
	"github.com/tessellated-io/txclient/log"
)

const (
	DefaultDirectory  = "~/.txclient"
	DefaultConfigFile = DefaultDirectory + "/config.yaml"

	fileHeader = "txclient configuration"
)

// Config configures a transaction client for one chain and one signing key.
type Config struct {
	ChainID       string `yaml:"chain_id" comment:"Chain ID transactions are signed for. Leave empty to read it from the node."`
	AddressPrefix string `yaml:"address_prefix" comment:"Bech32 prefix of account addresses, for instance 'cosmos'"`
	CoinType      uint32 `yaml:"coin_type" comment:"SLIP-44 coin type used to derive the signing key"`
	MnemonicFile  string `yaml:"mnemonic_file" comment:"File containing the mnemonic of the signing key"`

	RpcEndpoint  string        `yaml:"rpc_endpoint" comment:"CometBFT RPC endpoint. Used when grpc_endpoint is empty."`
	GrpcEndpoint string        `yaml:"grpc_endpoint" comment:"Cosmos SDK gRPC endpoint. Takes precedence over rpc_endpoint. Endpoints on port 443 use TLS."`
	RpcTimeout   time.Duration `yaml:"rpc_timeout" comment:"Timeout for a single CometBFT RPC request"`

	GasPrice      string  `yaml:"gas_price" comment:"Price per unit of gas, as a decimal coin"`
	GasMultiplier float64 `yaml:"gas_multiplier" comment:"Multiplier applied to simulated gas usage. Must be at least 1."`
	MaxGas        uint64  `yaml:"max_gas" comment:"Gas ceiling. Used as the gas limit when simulation is disabled."`
	Simulate      bool    `yaml:"simulate" comment:"Whether to simulate transactions to estimate gas"`

	PollInterval        time.Duration `yaml:"poll_interval" comment:"How often to poll for new blocks while waiting for inclusion"`
	MaxInclusionRetries int           `yaml:"max_inclusion_retries" comment:"How many failed inclusion lookups to tolerate after a broadcast"`
	HeightWaitTimeout   time.Duration `yaml:"height_wait_timeout" comment:"Give up if a new block is not seen within this long. 0 waits forever."`

	TransportRetryAttempts uint          `yaml:"transport_retry_attempts" comment:"Attempts for idempotent node queries"`
	TransportRetryDelay    time.Duration `yaml:"transport_retry_delay" comment:"Initial delay between query attempts"`

	LogLevel string `yaml:"log_level" comment:"One of debug, info, warn or error"`
}

// Default returns a configuration with every tunable set and no chain selected.
func Default() *Config {
	return &Config{
		CoinType:     118,
		MnemonicFile: DefaultDirectory + "/mnemonic",

		RpcTimeout: 10 * time.Second,

		GasMultiplier: 1.2,
		MaxGas:        500_000,
		Simulate:      true,

		PollInterval:        time.Second,
		MaxInclusionRetries: 5,

		TransportRetryAttempts: 3,
		TransportRetryDelay:    500 * time.Millisecond,

		LogLevel: "info",
	}
}

// DefaultForChain seeds a configuration from the offline chain registry.
func DefaultForChain(chainName string) (*Config, error) {
	chainData, err := chains.NewOfflineChainRegistry().ChainByName(chainName)
	if err != nil {
		return nil, err
	}

	config := Default()
	config.ChainID = chainData.ChainID
	config.AddressPrefix = chainData.AccountPrefix
	config.CoinType = chainData.CoinType
	config.RpcEndpoint = chainData.RpcUrl
	config.GasPrice = chainData.DefaultGasPrice

	return config, nil
}

// Load reads a YAML config file on top of the defaults and validates it.
func Load(configFile string) (*Config, error) {
	path, err := ResolveFile(configFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Write renders the config with comments, without overwriting an existing file.
func (c *Config) Write(configFile string, logger *log.Logger) (bool, error) {
	return WriteYamlWithComments(c, fileHeader, configFile, logger)
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var err error

	if c.AddressPrefix == "" {
		err = multierr.Append(err, errors.New("address_prefix is required"))
	}
	if c.MnemonicFile == "" {
		err = multierr.Append(err, errors.New("mnemonic_file is required"))
	}
	if c.RpcEndpoint == "" && c.GrpcEndpoint == "" {
		err = multierr.Append(err, errors.New("one of rpc_endpoint or grpc_endpoint is required"))
	}
	if c.RpcTimeout <= 0 {
		err = multierr.Append(err, errors.New("rpc_timeout must be positive"))
	}

	if _, parseErr := sdk.ParseDecCoin(c.GasPrice); parseErr != nil {
		err = multierr.Append(err, fmt.Errorf("gas_price %q is not a decimal coin: %w", c.GasPrice, parseErr))
	}
	if c.GasMultiplier < 1 {
		err = multierr.Append(err, fmt.Errorf("gas_multiplier must be at least 1, got %f", c.GasMultiplier))
	}
	if c.MaxGas == 0 {
		err = multierr.Append(err, errors.New("max_gas must be positive"))
	}

	if c.PollInterval <= 0 {
		err = multierr.Append(err, errors.New("poll_interval must be positive"))
	}
	if c.MaxInclusionRetries < 0 {
		err = multierr.Append(err, errors.New("max_inclusion_retries must not be negative"))
	}
	if c.HeightWaitTimeout < 0 {
		err = multierr.Append(err, errors.New("height_wait_timeout must not be negative"))
	}
	if c.TransportRetryAttempts == 0 {
		err = multierr.Append(err, errors.New("transport_retry_attempts must be at least 1"))
	}

	if !log.IsValidLogLevel(c.LogLevel) {
		err = multierr.Append(err, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}

	return err
}

// ReadMnemonic loads the signing mnemonic from MnemonicFile.
func (c *Config) ReadMnemonic() (string, error) {
	path, err := ResolveFile(c.MnemonicFile)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mnemonic := strings.TrimSpace(string(data))
	if mnemonic == "" {
		return "", fmt.Errorf("mnemonic file %s is empty", c.MnemonicFile)
	}
	return mnemonic, nil
}
