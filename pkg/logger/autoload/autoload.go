// Package autoload initializes the global logger from the environment as
// a side effect of being imported. It reads envconfig directly instead of
// going through pkg/config so that importing it never parses flags before
// the host program has registered its own.
package autoload

import (
	"github.com/kelseyhightower/envconfig"

	logx "github.com/agrovaani/negotiation-agent/pkg/logger"
)

func init() {
	var cfg logx.Config
	if err := envconfig.Process("LOG", &cfg); err != nil {
		panic(err)
	}
	logx.Init(cfg)
}
