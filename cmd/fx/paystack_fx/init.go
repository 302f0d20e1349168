package paystack_fx

import (
	"go.uber.org/fx"

	"skenk/internal/config"
	"skenk/internal/gateway"
	"skenk/internal/services"
)

var Module = fx.Provide(
	provideGatewayClient,
	func(client *gateway.Client) services.PaystackAPI { return client },
)

func provideGatewayClient(cfg config.Config) *gateway.Client {
	return gateway.NewClient(gateway.Config{
		SecretKey: cfg.PaystackSecretKey,
		BaseURL:   cfg.PaystackBaseURL,
	})
}
