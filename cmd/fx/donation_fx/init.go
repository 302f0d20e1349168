package donation_fx

import (
	"go.uber.org/fx"

	"skenk/internal/api/controllers"
	"skenk/internal/config"
	"skenk/internal/repositories"
	"skenk/internal/services"
)

var Module = fx.Provide(
	provideDonationService,
	provideDonationController,
)

func provideDonationService(planRepo repositories.IPlanRepository, paystack services.PaystackAPI, cfg config.Config) services.DonationServiceInterface {
	return services.NewDonationService(planRepo, paystack, cfg)
}

func provideDonationController(donationService services.DonationServiceInterface) *controllers.DonationController {
	return controllers.NewDonationController(donationService)
}
