package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/middleware"
	"github.com/PettaPuang/nozzle.website-sub005/pkg/config"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svcs *services.Container) {
	registerCustomValidators()

	registerHomeRoutes(r)
	registerAuthRoutes(r, svcs.Auth)
	registerCronRoutes(r, svcs.Closing, cfg.CronSecret)

	setupAPIV1Routes(r, cfg, svcs)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to per-entity route registrations. Station-scoped routes additionally
// verify the actor's station assignment against the path parameter.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, svcs *services.Container) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerStationAdminRoutes(v1, svcs.GasStation)
	registerRepairRoutes(v1, svcs.Unload)

	station := v1.Group("/gas-stations/:gasStationId",
		middleware.CheckPermissionWithGasStation("gasStationId",
			domain.RoleOwner, domain.RoleManager, domain.RoleOperator, domain.RoleFinance, domain.RoleAdministrator))

	registerStationRoutes(station, svcs.GasStation)
	registerCOARoutes(station, svcs.COA)
	registerTransactionRoutes(station, svcs.Transaction, svcs.Unload)
	registerUnloadRoutes(station, svcs.Unload)
	registerClosingRoutes(station, svcs.Closing)
	registerTankRoutes(station, svcs.Tank)
	registerReportRoutes(station, svcs.Reporting)
}

// registerCustomValidators installs the request validation tags the DTOs use.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("coacategory", func(fl validator.FieldLevel) bool {
		return domain.COACategory(fl.Field().String()).IsValid()
	})
}
