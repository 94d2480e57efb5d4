package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
	"github.com/PettaPuang/nozzle.website-sub005/internal/middleware"
)

type tankHandler struct {
	tankService portssvc.TankSvcFacade
}

func newTankHandler(ts portssvc.TankSvcFacade) *tankHandler {
	return &tankHandler{tankService: ts}
}

// registerTankRoutes registers the tank registry routes.
func registerTankRoutes(rg *gin.RouterGroup, tankService portssvc.TankSvcFacade) {
	h := newTankHandler(tankService)

	tanks := rg.Group("/tanks")
	{
		tanks.GET("", h.listTanks)
		tanks.GET("/:tankId", h.getTank)
		tanks.POST("",
			middleware.CheckPermission(domain.RoleManager, domain.RoleAdministrator),
			h.createTank)
		tanks.POST("/:tankId/recompute-stock",
			middleware.CheckPermission(domain.RoleManager, domain.RoleAdministrator),
			h.recomputeStock)
	}
}

func (h *tankHandler) createTank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gasStationID := c.Param("gasStationId")

	var req dto.CreateTankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTank", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	tank, err := h.tankService.CreateTank(c.Request.Context(), gasStationID, req, actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Tangki berhasil dibuat", dto.ToTankResponse(tank)))
}

func (h *tankHandler) getTank(c *gin.Context) {
	tankID := c.Param("tankId")

	tank, err := h.tankService.GetTank(c.Request.Context(), tankID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTankResponse(tank)))
}

func (h *tankHandler) listTanks(c *gin.Context) {
	gasStationID := c.Param("gasStationId")

	tanks, err := h.tankService.ListTanks(c.Request.Context(), gasStationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTankResponses(tanks)))
}

func (h *tankHandler) recomputeStock(c *gin.Context) {
	tankID := c.Param("tankId")

	stock, err := h.tankService.RecomputeTankStock(c.Request.Context(), tankID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Stok tangki dihitung ulang", gin.H{"currentStock": stock}))
}
