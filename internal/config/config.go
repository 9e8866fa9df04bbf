package config

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sizelabel/internal/dirs"
)

const (
	KeyVerbose   = "verbose"
	KeyShowValue = "show_value"
	KeyLogLevel  = "log_level"
)

// Init wires v with the config path, env, defaults and flag bindings.
// A missing config file is not an error; a malformed one is.
func Init(v *viper.Viper, root *cobra.Command) error {
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		v.AddConfigPath(cfgDir)
	}
	v.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: SIZELABEL_*
	v.SetEnvPrefix("SIZELABEL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "warn")

	_ = v.BindPFlag(KeyVerbose, root.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag(KeyShowValue, root.PersistentFlags().Lookup("show-value"))
	_ = v.BindPFlag(KeyLogLevel, root.PersistentFlags().Lookup("log-level"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}
