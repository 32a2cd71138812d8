package command

import (
	"github.com/muleops/exchange-cli/config"
	"github.com/muleops/exchange-cli/internal/exchange"
)

// newExchangeClient builds a registry client from the global flags.
func newExchangeClient(opts ...exchange.Option) *exchange.Client {
	base := []exchange.Option{}
	if config.Global.BaseURL != "" {
		base = append(base, exchange.WithBaseURL(config.Global.BaseURL))
	}
	if config.Global.WebURL != "" {
		base = append(base, exchange.WithWebURL(config.Global.WebURL))
	}
	return exchange.NewClient(append(base, opts...)...)
}
