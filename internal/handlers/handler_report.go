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

type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportHandler(rs portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// registerReportRoutes registers the read-only financial report routes.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportHandler(reportingService)

	reports := rg.Group("/reports",
		middleware.CheckPermission(domain.RoleOwner, domain.RoleManager, domain.RoleFinance, domain.RoleAdministrator))
	{
		reports.GET("/profit-loss", h.profitLoss)
		reports.GET("/trial-balance", h.trialBalance)
	}
}

func (h *reportHandler) profitLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gasStationID := c.Param("gasStationId")

	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for profit-loss report", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	summary, err := h.reportingService.ProfitLossSummary(c.Request.Context(), gasStationID, params.From, params.To)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(summary))
}

func (h *reportHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gasStationID := c.Param("gasStationId")

	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for trial-balance report", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), gasStationID, params.From, params.To)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(report))
}
