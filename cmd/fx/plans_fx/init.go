package plans_fx

import (
	"go.uber.org/fx"

	"skenk/internal/repositories"
)

var Module = fx.Provide(
	providePlanRepository,
)

func providePlanRepository() repositories.IPlanRepository {
	return repositories.NewPlanRepository()
}
