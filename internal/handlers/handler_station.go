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

type stationHandler struct {
	stationService portssvc.GasStationSvcFacade
}

func newStationHandler(ss portssvc.GasStationSvcFacade) *stationHandler {
	return &stationHandler{stationService: ss}
}

// registerStationAdminRoutes registers platform-wide station administration.
func registerStationAdminRoutes(rg *gin.RouterGroup, stationService portssvc.GasStationSvcFacade) {
	h := newStationHandler(stationService)

	rg.POST("/gas-stations",
		middleware.CheckPermission(domain.RoleAdministrator),
		h.createStation)
	rg.GET("/gas-stations",
		middleware.CheckPermission(domain.RoleAdministrator, domain.RoleOwner),
		h.listStations)
}

// registerStationRoutes registers the station-scoped detail route.
func registerStationRoutes(rg *gin.RouterGroup, stationService portssvc.GasStationSvcFacade) {
	h := newStationHandler(stationService)

	rg.GET("", h.getStation)
}

func (h *stationHandler) createStation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateGasStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStation", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	station, err := h.stationService.CreateStation(c.Request.Context(), req, actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("SPBU berhasil didaftarkan", dto.ToGasStationResponse(station)))
}

func (h *stationHandler) getStation(c *gin.Context) {
	gasStationID := c.Param("gasStationId")

	station, err := h.stationService.GetStation(c.Request.Context(), gasStationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToGasStationResponse(station)))
}

func (h *stationHandler) listStations(c *gin.Context) {
	stations, err := h.stationService.ListStations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToGasStationResponses(stations)))
}
