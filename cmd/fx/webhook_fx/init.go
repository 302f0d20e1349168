package webhook_fx

import (
	"go.uber.org/fx"

	"skenk/internal/api/controllers"
	"skenk/internal/config"
	"skenk/internal/services"
)

var Module = fx.Provide(
	provideDispatcher,
	provideWebhookService,
	provideWebhookController,
)

func provideDispatcher() services.EventDispatcher {
	return &services.LogDispatcher{}
}

func provideWebhookService(cfg config.Config, dispatcher services.EventDispatcher) services.WebhookServiceInterface {
	return services.NewWebhookService(cfg, dispatcher)
}

func provideWebhookController(webhookService services.WebhookServiceInterface) *controllers.WebhookController {
	return controllers.NewWebhookController(webhookService)
}
