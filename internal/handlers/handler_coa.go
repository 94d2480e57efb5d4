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

type coaHandler struct {
	coaService portssvc.COASvcFacade
}

func newCOAHandler(cs portssvc.COASvcFacade) *coaHandler {
	return &coaHandler{coaService: cs}
}

// registerCOARoutes registers the chart-of-accounts routes under a station
// group that already enforces authentication and station scoping.
func registerCOARoutes(rg *gin.RouterGroup, coaService portssvc.COASvcFacade) {
	h := newCOAHandler(coaService)

	coas := rg.Group("/coas")
	{
		coas.GET("", h.listCOAs)
		coas.GET("/:coaId", h.getCOA)
		coas.POST("",
			middleware.CheckPermission(domain.RoleFinance, domain.RoleManager, domain.RoleAdministrator),
			h.createCOA)
		coas.PATCH("/:coaId",
			middleware.CheckPermission(domain.RoleFinance, domain.RoleManager, domain.RoleAdministrator),
			h.updateCOA)
	}
}

func (h *coaHandler) createCOA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gasStationID := c.Param("gasStationId")

	var req dto.CreateCOARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCOA", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	coa, err := h.coaService.CreateCOA(c.Request.Context(), gasStationID, req, actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("COA berhasil dibuat", dto.ToCOAResponse(coa, 0)))
}

func (h *coaHandler) getCOA(c *gin.Context) {
	gasStationID := c.Param("gasStationId")
	coaID := c.Param("coaId")

	coa, balance, err := h.coaService.GetCOA(c.Request.Context(), gasStationID, coaID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCOAResponse(coa, balance)))
}

func (h *coaHandler) listCOAs(c *gin.Context) {
	gasStationID := c.Param("gasStationId")
	includeInactive := c.Query("includeInactive") == "true"

	coas, err := h.coaService.ListCOAs(c.Request.Context(), gasStationID, includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.COAResponse, len(coas))
	for i := range coas {
		balance, err := h.coaService.GetCOABalance(c.Request.Context(), coas[i].COAID)
		if err != nil {
			respondError(c, err)
			return
		}
		out[i] = dto.ToCOAResponse(&coas[i], balance)
	}
	c.JSON(http.StatusOK, dto.OK(out))
}

func (h *coaHandler) updateCOA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gasStationID := c.Param("gasStationId")
	coaID := c.Param("coaId")

	var req dto.UpdateCOARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCOA", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	coa, err := h.coaService.UpdateCOA(c.Request.Context(), gasStationID, coaID, req, actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	balance, err := h.coaService.GetCOABalance(c.Request.Context(), coa.COAID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("COA berhasil diperbarui", dto.ToCOAResponse(coa, balance)))
}
