package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/interchain-tools/solana-its/pkg/config"
	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/its"
)

// cli is the state shared by every command of one invocation.
type cli struct {
	v   *viper.Viper
	log *logrus.Entry

	configFile string
	output     string

	config  config.Config
	program *its.Program

	newClient func(endpoint string) solana.Client
}

func newRootCmd() *cobra.Command {
	c := &cli{
		v:         viper.New(),
		log:       logrus.StandardLogger().WithField("type", "cmd/solana-its"),
		newClient: solana.New,
	}

	root := &cobra.Command{
		Use:           "solana-its",
		Short:         "Interchain Token Service tooling for Solana",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (yaml, json or toml)")
	flags.StringVarP(&c.output, "output", "o", outputBase64, "transaction encoding: base64, base58 or json")
	flags.String("network", "", "devnet-amplifier, stagenet, testnet or mainnet")
	flags.String("rpc", "", "JSON-RPC endpoint or cluster moniker")
	flags.String("log-level", "", "logrus level")
	flags.String("chains-config", "", "axelar chains config to read program addresses from")
	flags.Uint64("compute-unit-price", 0, "priority fee in micro-lamports per compute unit")
	flags.Uint32("compute-unit-limit", 0, "compute unit limit")

	for key, flag := range map[string]string{
		config.NetworkKey:          "network",
		config.RPCURLKey:           "rpc",
		config.LogLevelKey:         "log-level",
		config.ChainsConfigKey:     "chains-config",
		config.ComputeUnitPriceKey: "compute-unit-price",
		config.ComputeUnitLimitKey: "compute-unit-limit",
	} {
		_ = c.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		c.newTokenIdCmd(),
		c.newAddressCmd(),
		c.newTxCmd(),
		c.newDecodePayloadCmd(),
		c.newQueryCmd(),
	)
	return root
}

func (c *cli) init() error {
	if c.configFile != "" {
		c.v.SetConfigFile(c.configFile)
		if err := c.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config %s", c.configFile)
		}
	}

	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	configureLogger(cfg.LogLevel)

	switch c.output {
	case outputBase64, outputBase58, outputJSON:
	default:
		return errors.Errorf("unknown output %q", c.output)
	}

	program, err := cfg.Program()
	if err != nil {
		return err
	}

	c.config = cfg
	c.program = program
	c.log = c.log.WithFields(logrus.Fields{
		"network": cfg.Network,
		"chain":   program.ChainName(),
	})
	c.log.WithField("program", solana.Base58(program.ProgramID())).Debug("program bound")
	return nil
}

func (c *cli) client() (solana.Client, error) {
	endpoint, err := c.config.RPCEndpoint()
	if err != nil {
		return nil, err
	}
	return c.newClient(endpoint), nil
}

func configureLogger(level string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", level).Warn("unknown log level, ignoring")
		return
	}
	logrus.SetLevel(parsed)
}
