package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "SOLID"

	cfgKeyFormat    = "format"
	cfgKeyVerbose   = "verbose"
	cfgKeyScenarios = "scenarios_dir"

	defaultScenariosDir = "testdata/scenarios"
)

// loadSettings resolves global settings. Precedence, highest first:
// explicit flags, SOLID_* environment variables, the --config file,
// flag defaults.
func loadSettings(cmd *cobra.Command, opts *RootOptions) error {
	v := viper.New()
	v.SetDefault(cfgKeyScenarios, defaultScenariosDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	flags := cmd.Flags()
	for _, key := range []string{cfgKeyFormat, cfgKeyVerbose} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	opts.Format = v.GetString(cfgKeyFormat)
	opts.Verbose = v.GetBool(cfgKeyVerbose)
	opts.ScenariosDir = v.GetString(cfgKeyScenarios)
	return nil
}
