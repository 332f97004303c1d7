// Package config loads typed configuration structs from the environment,
// optionally seeded from a dotenv file given via the -env-file flag.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	envFile   string
	flagSetup sync.Once
)

// MustNew is New but panics on failure; intended for process startup.
func MustNew[T any](prefix string) *T {
	conf, err := New[T](prefix)
	if err != nil {
		panic(fmt.Sprintf("config %q: %v", prefix, err))
	}
	return conf
}

// New populates a fresh T from environment variables with the given
// prefix. When an env file is configured (or a .env exists in the working
// directory) its settings are exported into the environment first.
func New[T any](prefix string) (*T, error) {
	if err := seedEnvironment(); err != nil {
		return nil, err
	}

	var conf T
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func seedEnvironment() error {
	flagSetup.Do(func() {
		if flag.Lookup("env-file") == nil {
			flag.StringVar(&envFile, "env-file", "", "path to dotenv file")
		}
		if !flag.Parsed() {
			flag.Parse()
		}
	})

	path := strings.TrimSpace(envFile)
	if path != "" {
		if err := exportFile(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}

	info, err := os.Stat(".env")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	if err := exportFile(".env"); err != nil {
		return fmt.Errorf("load default env file: %w", err)
	}
	return nil
}

func exportFile(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	for key, value := range viper.AllSettings() {
		if err := os.Setenv(strings.ToUpper(key), fmt.Sprint(value)); err != nil {
			return err
		}
	}
	return nil
}
