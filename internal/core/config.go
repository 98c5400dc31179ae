package core

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all of the configuration options available to any cssvault
// subcommand.
type Config struct {
	KeyStore struct {
		// Driver selects the SQL backend for the key store. Only "sqlite" is
		// wired into this build; see DESIGN.md for why postgres is not.
		Driver string `mapstructure:"driver"`
		// DSN is a bare filename for sqlite or a full connection string for
		// any future driver.
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"key_store"`

	SessionCache struct {
		TTLSeconds int `mapstructure:"ttl_seconds"`
	} `mapstructure:"session_cache"`

	Logging struct {
		Level         string `mapstructure:"level"`
		FilePath      string `mapstructure:"file_path"`
		IncludeCaller bool   `mapstructure:"include_caller"`
	} `mapstructure:"logging"`

	Region struct {
		DefaultRPCMask byte `mapstructure:"default_rpc_mask"`
	} `mapstructure:"region"`
}

const envVarPrefix = "CSSVAULT"

// LoadConfig initializes Viper with the contents of the config file under
// configPath and binds every discovered key to a CSSVAULT_ prefixed
// environment variable.
func LoadConfig(configPath string) *Config {
	viper.AddConfigPath(configPath)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(envVarPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if errors.Is(err, viper.ConfigFileNotFoundError{}) {
			fmt.Printf("error reading config file: no config file in path %s\n", configPath)
		} else {
			fmt.Printf("error reading config file: %v\n", err)
		}
		os.Exit(1)
	}

	// Allows nested yaml options to be set through environment variables.
	// For example, key_store.dsn can be set using CSSVAULT_KEY_STORE_DSN.
	for _, k := range viper.AllKeys() {
		envVar := strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := viper.BindEnv(k, envVarPrefix+"_"+envVar); err != nil {
			fmt.Printf("error binding %s to %s\n", k, envVarPrefix+"_"+envVar)
			os.Exit(1)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		fmt.Printf("error unmarshaling config object: %v\n", err)
		os.Exit(1)
	}
	return config
}
